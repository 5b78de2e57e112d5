package dto

type PinSetupRequest struct {
	Pin string `json:"pin" validate:"required"`
}

type PinVerifyRequest struct {
	Pin string `json:"pin" validate:"required"`
}

type PinResetRequest struct {
	Password string `json:"password" validate:"required"`
	NewPin   string `json:"newPin" validate:"required"`
}

type PinStatusResponse struct {
	Configured bool   `json:"configured"`
	Unlocked   bool   `json:"unlocked"`
	ExpiresAt  *int64 `json:"expiresAt"`
}

type PinUnlockResponse struct {
	UnlockToken string `json:"unlockToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

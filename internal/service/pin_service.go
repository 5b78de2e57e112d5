package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"time"

	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/pkg/logger"
	"memory-vault-be/internal/repository/contract"
	"memory-vault-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// pinCost is deliberately above the account-password cost: the PIN
// space is tiny.
const pinCost = 12

var pinPattern = regexp.MustCompile(`^\d{4,6}$`)

type IPinService interface {
	Status(ctx context.Context, email, unlockToken string) (*dto.PinStatusResponse, error)
	Setup(ctx context.Context, email string, req *dto.PinSetupRequest) error
	Verify(ctx context.Context, email string, req *dto.PinVerifyRequest) (*dto.PinUnlockResponse, error)
	Reset(ctx context.Context, email string, req *dto.PinResetRequest) (*dto.PinUnlockResponse, error)
	Lock(ctx context.Context, email string)
	Unlocked(email, unlockToken string) bool
}

type pinService struct {
	userRepo contract.UserRepository
	unlocks  *memory.UnlockRepository
	logger   logger.ILogger
}

func NewPinService(userRepo contract.UserRepository, unlocks *memory.UnlockRepository, log logger.ILogger) IPinService {
	return &pinService{
		userRepo: userRepo,
		unlocks:  unlocks,
		logger:   log,
	}
}

func generateUnlockToken() (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

func (s *pinService) startSession(email string) (*dto.PinUnlockResponse, error) {
	token, err := generateUnlockToken()
	if err != nil {
		return nil, err
	}
	s.unlocks.Save(email, token)
	return &dto.PinUnlockResponse{
		UnlockToken: token,
		ExpiresAt:   time.Now().Add(memory.UnlockTTL).UnixMilli(),
	}, nil
}

func (s *pinService) Unlocked(email, unlockToken string) bool {
	return s.unlocks.Valid(email, unlockToken)
}

func (s *pinService) Status(ctx context.Context, email, unlockToken string) (*dto.PinStatusResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	res := &dto.PinStatusResponse{
		Configured: user != nil && user.HasPersonalPin(),
		Unlocked:   s.Unlocked(email, unlockToken),
	}
	if res.Unlocked {
		// The unlock repository does not track per-session deadlines
		// beyond the cache TTL, so report the conservative maximum.
		expiresAt := time.Now().Add(memory.UnlockTTL).UnixMilli()
		res.ExpiresAt = &expiresAt
	}
	return res, nil
}

func (s *pinService) Setup(ctx context.Context, email string, req *dto.PinSetupRequest) error {
	if !pinPattern.MatchString(req.Pin) {
		return NewServiceError(fiber.StatusBadRequest, "PIN must be 4 to 6 digits")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return NewServiceError(fiber.StatusNotFound, "User not found")
	}
	if user.HasPersonalPin() {
		return NewServiceError(fiber.StatusBadRequest, "PIN already configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Pin), pinCost)
	if err != nil {
		return err
	}
	hashStr := string(hash)
	user.PersonalPinHash = &hashStr

	return s.userRepo.Update(ctx, user)
}

func (s *pinService) Verify(ctx context.Context, email string, req *dto.PinVerifyRequest) (*dto.PinUnlockResponse, error) {
	if !pinPattern.MatchString(req.Pin) {
		return nil, NewServiceError(fiber.StatusBadRequest, "PIN must be 4 to 6 digits")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.HasPersonalPin() {
		return nil, NewServiceError(fiber.StatusBadRequest, "Personal PIN is not configured")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PersonalPinHash), []byte(req.Pin)); err != nil {
		s.logger.Warn("personal", "PIN verification failed", map[string]interface{}{"email": email})
		return nil, NewServiceError(fiber.StatusUnauthorized, "Invalid PIN")
	}

	return s.startSession(email)
}

func (s *pinService) Reset(ctx context.Context, email string, req *dto.PinResetRequest) (*dto.PinUnlockResponse, error) {
	if !pinPattern.MatchString(req.NewPin) {
		return nil, NewServiceError(fiber.StatusBadRequest, "New PIN must be 4 to 6 digits")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewServiceError(fiber.StatusNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("personal", "PIN reset rejected", map[string]interface{}{"email": email})
		return nil, NewServiceError(fiber.StatusUnauthorized, "Invalid account password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPin), pinCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)
	user.PersonalPinHash = &hashStr
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.startSession(email)
}

func (s *pinService) Lock(ctx context.Context, email string) {
	s.unlocks.Delete(email)
}

package dto

import (
	"time"
)

type CreateMemoryRequest struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	IsImportant bool   `json:"is_important"`
	VaultType   string `json:"vault_type" validate:"required,oneof=learning cultural future personal"`
}

// UpdateMemoryRequest carries a partial patch. Pointer fields
// distinguish "absent" from a zero value.
type UpdateMemoryRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	IsImportant *bool   `json:"is_important"`
	VaultType   *string `json:"vault_type" validate:"omitempty,oneof=learning cultural future personal"`
	IsFavorite  *bool   `json:"isFavorite"`
}

type MemoryResponse struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	IsImportant bool      `json:"is_important"`
	VaultType   string    `json:"vault_type"`
	Timestamp   time.Time `json:"timestamp"`
	UserEmail   string    `json:"user_email"`
	IsFavorite  bool      `json:"isFavorite"`
}

type MemoryListResponse struct {
	Memories       []MemoryResponse `json:"memories"`
	PersonalLocked bool             `json:"personalLocked"`
}

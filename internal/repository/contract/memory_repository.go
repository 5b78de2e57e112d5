package contract

import (
	"context"

	"memory-vault-be/internal/entity"
)

type MemoryRepository interface {
	Create(ctx context.Context, memory *entity.Memory) error
	Update(ctx context.Context, memory *entity.Memory) error
	Delete(ctx context.Context, userEmail, id string) error
	FindById(ctx context.Context, userEmail, id string) (*entity.Memory, error)
	// FindAllByUserEmail returns the user's memories ordered by
	// Timestamp descending.
	FindAllByUserEmail(ctx context.Context, userEmail string) ([]*entity.Memory, error)
	Count(ctx context.Context) (int64, error)
}

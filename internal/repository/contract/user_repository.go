package contract

import (
	"context"

	"memory-vault-be/internal/entity"
)

// UserRepository uses explicit finders instead of a query-specification
// layer so the same contract can be served by Postgres, Redis, and the
// flat-file backend.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// FindByIdentifier resolves a login identifier that may be either an
	// email address or a username.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}

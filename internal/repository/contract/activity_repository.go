package contract

import (
	"context"

	"memory-vault-be/internal/entity"
)

// ActivityCap bounds the admin activity log. Append must evict the
// oldest rows once the cap is exceeded.
const ActivityCap = 5000

type ActivityRepository interface {
	Append(ctx context.Context, activity *entity.AdminActivity) error
	// List returns the newest activities first, at most limit rows.
	// A non-positive limit returns everything up to the cap.
	List(ctx context.Context, limit int) ([]*entity.AdminActivity, error)
	Count(ctx context.Context) (int64, error)
}

package docstore

import (
	"context"
	"encoding/json"

	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// Activities are a capped list, newest at the head.
const activitiesKey = "mv:admin_activities"

type ActivityRepositoryRedis struct {
	rdb *redis.Client
}

func NewActivityRepository(rdb *redis.Client) contract.ActivityRepository {
	return &ActivityRepositoryRedis{rdb: rdb}
}

func (r *ActivityRepositoryRedis) Append(ctx context.Context, activity *entity.AdminActivity) error {
	payload, err := json.Marshal(activity)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.LPush(ctx, activitiesKey, payload)
	pipe.LTrim(ctx, activitiesKey, 0, contract.ActivityCap-1)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *ActivityRepositoryRedis) List(ctx context.Context, limit int) ([]*entity.AdminActivity, error) {
	if limit <= 0 || limit > contract.ActivityCap {
		limit = contract.ActivityCap
	}

	rows, err := r.rdb.LRange(ctx, activitiesKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	activities := make([]*entity.AdminActivity, 0, len(rows))
	for _, row := range rows {
		var activity entity.AdminActivity
		if err := json.Unmarshal([]byte(row), &activity); err != nil {
			continue
		}
		activities = append(activities, &activity)
	}
	return activities, nil
}

func (r *ActivityRepositoryRedis) Count(ctx context.Context) (int64, error) {
	return r.rdb.LLen(ctx, activitiesKey).Result()
}

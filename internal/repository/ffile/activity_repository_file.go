package ffile

import (
	"context"

	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/repository/contract"
)

const activitiesCollection = "admin_activities"

type ActivityRepositoryFile struct {
	store *Store
}

func NewActivityRepository(store *Store) contract.ActivityRepository {
	return &ActivityRepositoryFile{store: store}
}

func (r *ActivityRepositoryFile) Append(ctx context.Context, activity *entity.AdminActivity) error {
	return r.store.Update(func(read func(string, interface{}) error, write func(string, interface{}) error) error {
		var activities []*entity.AdminActivity
		if err := read(activitiesCollection, &activities); err != nil {
			return err
		}
		// Newest first, trimmed to the cap.
		activities = append([]*entity.AdminActivity{activity}, activities...)
		if len(activities) > contract.ActivityCap {
			activities = activities[:contract.ActivityCap]
		}
		return write(activitiesCollection, activities)
	})
}

func (r *ActivityRepositoryFile) List(ctx context.Context, limit int) ([]*entity.AdminActivity, error) {
	if limit <= 0 || limit > contract.ActivityCap {
		limit = contract.ActivityCap
	}

	var activities []*entity.AdminActivity
	err := r.store.View(func(read func(string, interface{}) error) error {
		return read(activitiesCollection, &activities)
	})
	if err != nil {
		return nil, err
	}
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func (r *ActivityRepositoryFile) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.store.View(func(read func(string, interface{}) error) error {
		var activities []*entity.AdminActivity
		if err := read(activitiesCollection, &activities); err != nil {
			return err
		}
		count = int64(len(activities))
		return nil
	})
	return count, err
}

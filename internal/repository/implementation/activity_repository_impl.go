package implementation

import (
	"context"

	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/mapper"
	"memory-vault-be/internal/model"
	"memory-vault-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityMapper
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	return &ActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityMapper(),
	}
}

func (r *ActivityRepositoryImpl) Append(ctx context.Context, activity *entity.AdminActivity) error {
	modelActivity := r.mapper.ToModel(activity)
	if err := r.db.WithContext(ctx).Create(modelActivity).Error; err != nil {
		return err
	}

	// Evict the oldest rows past the cap. Losing a trim on error is
	// acceptable, the next append retries it.
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.AdminActivity{}).Count(&count).Error; err != nil {
		return nil
	}
	if count > contract.ActivityCap {
		r.db.WithContext(ctx).
			Where("id IN (?)", r.db.Model(&model.AdminActivity{}).
				Select("id").
				Order("timestamp ASC").
				Limit(int(count-contract.ActivityCap))).
			Delete(&model.AdminActivity{})
	}
	return nil
}

func (r *ActivityRepositoryImpl) List(ctx context.Context, limit int) ([]*entity.AdminActivity, error) {
	if limit <= 0 || limit > contract.ActivityCap {
		limit = contract.ActivityCap
	}

	var modelActivities []*model.AdminActivity
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&modelActivities).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelActivities), nil
}

func (r *ActivityRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.AdminActivity{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

package implementation

import (
	"context"
	"errors"

	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/mapper"
	"memory-vault-be/internal/model"
	"memory-vault-be/internal/repository/contract"

	"gorm.io/gorm"
)

type MemoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MemoryMapper
}

func NewMemoryRepository(db *gorm.DB) contract.MemoryRepository {
	return &MemoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewMemoryMapper(),
	}
}

func (r *MemoryRepositoryImpl) Create(ctx context.Context, memory *entity.Memory) error {
	modelMemory := r.mapper.ToModel(memory)
	if err := r.db.WithContext(ctx).Create(modelMemory).Error; err != nil {
		return err
	}
	*memory = *r.mapper.ToEntity(modelMemory)
	return nil
}

func (r *MemoryRepositoryImpl) Update(ctx context.Context, memory *entity.Memory) error {
	modelMemory := r.mapper.ToModel(memory)
	if err := r.db.WithContext(ctx).Save(modelMemory).Error; err != nil {
		return err
	}
	*memory = *r.mapper.ToEntity(modelMemory)
	return nil
}

func (r *MemoryRepositoryImpl) Delete(ctx context.Context, userEmail, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_email = ?", id, userEmail).
		Delete(&model.Memory{}).Error
}

func (r *MemoryRepositoryImpl) FindById(ctx context.Context, userEmail, id string) (*entity.Memory, error) {
	var modelMemory model.Memory
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_email = ?", id, userEmail).
		First(&modelMemory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelMemory), nil
}

func (r *MemoryRepositoryImpl) FindAllByUserEmail(ctx context.Context, userEmail string) ([]*entity.Memory, error) {
	var modelMemories []*model.Memory
	err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("timestamp DESC").
		Find(&modelMemories).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelMemories), nil
}

func (r *MemoryRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Memory{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

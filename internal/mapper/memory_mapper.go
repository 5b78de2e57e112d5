package mapper

import (
	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/model"
)

type MemoryMapper struct{}

func NewMemoryMapper() *MemoryMapper {
	return &MemoryMapper{}
}

func (m *MemoryMapper) ToEntity(mm *model.Memory) *entity.Memory {
	if mm == nil {
		return nil
	}

	return &entity.Memory{
		Id:          mm.Id,
		UserEmail:   mm.UserEmail,
		Title:       mm.Title,
		Content:     mm.Content,
		IsImportant: mm.IsImportant,
		VaultType:   mm.VaultType,
		Timestamp:   mm.Timestamp,
		IsFavorite:  mm.IsFavorite,
	}
}

func (m *MemoryMapper) ToModel(mm *entity.Memory) *model.Memory {
	if mm == nil {
		return nil
	}

	return &model.Memory{
		Id:          mm.Id,
		UserEmail:   mm.UserEmail,
		Title:       mm.Title,
		Content:     mm.Content,
		IsImportant: mm.IsImportant,
		VaultType:   mm.VaultType,
		Timestamp:   mm.Timestamp,
		IsFavorite:  mm.IsFavorite,
	}
}

func (m *MemoryMapper) ToEntities(memories []*model.Memory) []*entity.Memory {
	entities := make([]*entity.Memory, len(memories))
	for i, mm := range memories {
		entities[i] = m.ToEntity(mm)
	}
	return entities
}

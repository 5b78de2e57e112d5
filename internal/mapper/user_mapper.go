package mapper

import (
	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:              u.Id,
		Email:           u.Email,
		Username:        u.Username,
		Name:            u.Name,
		PasswordHash:    u.PasswordHash,
		PersonalPinHash: u.PersonalPinHash,
		CreatedAt:       u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:              u.Id,
		Email:           u.Email,
		Username:        u.Username,
		Name:            u.Name,
		PasswordHash:    u.PasswordHash,
		PersonalPinHash: u.PersonalPinHash,
		CreatedAt:       u.CreatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

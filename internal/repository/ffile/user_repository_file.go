package ffile

import (
	"context"
	"fmt"
	"strings"

	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/repository/contract"
)

const usersCollection = "users"

type UserRepositoryFile struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &UserRepositoryFile{store: store}
}

func (r *UserRepositoryFile) Create(ctx context.Context, user *entity.User) error {
	return r.store.Update(func(read func(string, interface{}) error, write func(string, interface{}) error) error {
		var users []*entity.User
		if err := read(usersCollection, &users); err != nil {
			return err
		}
		for _, u := range users {
			if strings.EqualFold(u.Email, user.Email) {
				return fmt.Errorf("user %s already exists", user.Email)
			}
		}
		users = append(users, user)
		return write(usersCollection, users)
	})
}

func (r *UserRepositoryFile) Update(ctx context.Context, user *entity.User) error {
	return r.store.Update(func(read func(string, interface{}) error, write func(string, interface{}) error) error {
		var users []*entity.User
		if err := read(usersCollection, &users); err != nil {
			return err
		}
		for i, u := range users {
			if u.Id == user.Id {
				users[i] = user
				return write(usersCollection, users)
			}
		}
		return fmt.Errorf("user %s not found", user.Id)
	})
}

func (r *UserRepositoryFile) findOne(match func(*entity.User) bool) (*entity.User, error) {
	var found *entity.User
	err := r.store.View(func(read func(string, interface{}) error) error {
		var users []*entity.User
		if err := read(usersCollection, &users); err != nil {
			return err
		}
		for _, u := range users {
			if match(u) {
				found = u
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *UserRepositoryFile) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(func(u *entity.User) bool {
		return strings.EqualFold(u.Email, email)
	})
}

func (r *UserRepositoryFile) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(func(u *entity.User) bool {
		return strings.EqualFold(u.Username, username)
	})
}

func (r *UserRepositoryFile) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	return r.findOne(func(u *entity.User) bool {
		return strings.EqualFold(u.Email, identifier) || strings.EqualFold(u.Username, identifier)
	})
}

func (r *UserRepositoryFile) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.store.View(func(read func(string, interface{}) error) error {
		var users []*entity.User
		if err := read(usersCollection, &users); err != nil {
			return err
		}
		count = int64(len(users))
		return nil
	})
	return count, err
}

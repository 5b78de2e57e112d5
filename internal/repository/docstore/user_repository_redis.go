package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// Redis key layout:
//
//	mv:user:<email>           user document (JSON)
//	mv:username:<username>    email owning the username
//	mv:users                  set of all user emails
const (
	userKeyPrefix     = "mv:user:"
	usernameKeyPrefix = "mv:username:"
	usersSetKey       = "mv:users"
)

type UserRepositoryRedis struct {
	rdb *redis.Client
}

func NewUserRepository(rdb *redis.Client) contract.UserRepository {
	return &UserRepositoryRedis{rdb: rdb}
}

func (r *UserRepositoryRedis) save(ctx context.Context, user *entity.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, userKeyPrefix+user.Email, payload, 0)
	pipe.Set(ctx, usernameKeyPrefix+user.Username, user.Email, 0)
	pipe.SAdd(ctx, usersSetKey, user.Email)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *UserRepositoryRedis) Create(ctx context.Context, user *entity.User) error {
	exists, err := r.rdb.Exists(ctx, userKeyPrefix+user.Email).Result()
	if err != nil {
		return err
	}
	if exists > 0 {
		return fmt.Errorf("user %s already exists", user.Email)
	}
	return r.save(ctx, user)
}

func (r *UserRepositoryRedis) Update(ctx context.Context, user *entity.User) error {
	return r.save(ctx, user)
}

func (r *UserRepositoryRedis) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	payload, err := r.rdb.Get(ctx, userKeyPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var user entity.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryRedis) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	email, err := r.rdb.Get(ctx, usernameKeyPrefix+username).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return r.FindByEmail(ctx, email)
}

func (r *UserRepositoryRedis) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	user, err := r.FindByEmail(ctx, identifier)
	if err != nil || user != nil {
		return user, err
	}
	return r.FindByUsername(ctx, identifier)
}

func (r *UserRepositoryRedis) Count(ctx context.Context) (int64, error) {
	return r.rdb.SCard(ctx, usersSetKey).Result()
}

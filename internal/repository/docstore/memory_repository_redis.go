package docstore

import (
	"context"
	"encoding/json"
	"sort"

	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// Memories live in one hash per user, field = memory id. Ordering is
// applied on read since a hash has no intrinsic order.
const memoriesKeyPrefix = "mv:memories:"

type MemoryRepositoryRedis struct {
	rdb *redis.Client
}

func NewMemoryRepository(rdb *redis.Client) contract.MemoryRepository {
	return &MemoryRepositoryRedis{rdb: rdb}
}

func (r *MemoryRepositoryRedis) save(ctx context.Context, memory *entity.Memory) error {
	payload, err := json.Marshal(memory)
	if err != nil {
		return err
	}
	return r.rdb.HSet(ctx, memoriesKeyPrefix+memory.UserEmail, memory.Id, payload).Err()
}

func (r *MemoryRepositoryRedis) Create(ctx context.Context, memory *entity.Memory) error {
	return r.save(ctx, memory)
}

func (r *MemoryRepositoryRedis) Update(ctx context.Context, memory *entity.Memory) error {
	return r.save(ctx, memory)
}

func (r *MemoryRepositoryRedis) Delete(ctx context.Context, userEmail, id string) error {
	return r.rdb.HDel(ctx, memoriesKeyPrefix+userEmail, id).Err()
}

func (r *MemoryRepositoryRedis) FindById(ctx context.Context, userEmail, id string) (*entity.Memory, error) {
	payload, err := r.rdb.HGet(ctx, memoriesKeyPrefix+userEmail, id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var memory entity.Memory
	if err := json.Unmarshal(payload, &memory); err != nil {
		return nil, err
	}
	return &memory, nil
}

func (r *MemoryRepositoryRedis) FindAllByUserEmail(ctx context.Context, userEmail string) ([]*entity.Memory, error) {
	fields, err := r.rdb.HGetAll(ctx, memoriesKeyPrefix+userEmail).Result()
	if err != nil {
		return nil, err
	}

	memories := make([]*entity.Memory, 0, len(fields))
	for _, payload := range fields {
		var memory entity.Memory
		if err := json.Unmarshal([]byte(payload), &memory); err != nil {
			continue
		}
		memories = append(memories, &memory)
	}

	sort.SliceStable(memories, func(i, j int) bool {
		return memories[i].Timestamp.After(memories[j].Timestamp)
	})
	return memories, nil
}

func (r *MemoryRepositoryRedis) Count(ctx context.Context) (int64, error) {
	var total int64
	iter := r.rdb.Scan(ctx, 0, memoriesKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		n, err := r.rdb.HLen(ctx, iter.Val()).Result()
		if err != nil {
			return 0, err
		}
		total += n
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	return total, nil
}

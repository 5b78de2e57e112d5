package ffile

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/repository/contract"
)

const memoriesCollection = "memories"

type MemoryRepositoryFile struct {
	store *Store
}

func NewMemoryRepository(store *Store) contract.MemoryRepository {
	return &MemoryRepositoryFile{store: store}
}

func (r *MemoryRepositoryFile) Create(ctx context.Context, memory *entity.Memory) error {
	return r.store.Update(func(read func(string, interface{}) error, write func(string, interface{}) error) error {
		var memories []*entity.Memory
		if err := read(memoriesCollection, &memories); err != nil {
			return err
		}
		memories = append(memories, memory)
		return write(memoriesCollection, memories)
	})
}

func (r *MemoryRepositoryFile) Update(ctx context.Context, memory *entity.Memory) error {
	return r.store.Update(func(read func(string, interface{}) error, write func(string, interface{}) error) error {
		var memories []*entity.Memory
		if err := read(memoriesCollection, &memories); err != nil {
			return err
		}
		for i, m := range memories {
			if m.Id == memory.Id && strings.EqualFold(m.UserEmail, memory.UserEmail) {
				memories[i] = memory
				return write(memoriesCollection, memories)
			}
		}
		return fmt.Errorf("memory %s not found", memory.Id)
	})
}

func (r *MemoryRepositoryFile) Delete(ctx context.Context, userEmail, id string) error {
	return r.store.Update(func(read func(string, interface{}) error, write func(string, interface{}) error) error {
		var memories []*entity.Memory
		if err := read(memoriesCollection, &memories); err != nil {
			return err
		}
		kept := memories[:0]
		for _, m := range memories {
			if m.Id == id && strings.EqualFold(m.UserEmail, userEmail) {
				continue
			}
			kept = append(kept, m)
		}
		return write(memoriesCollection, kept)
	})
}

func (r *MemoryRepositoryFile) FindById(ctx context.Context, userEmail, id string) (*entity.Memory, error) {
	var found *entity.Memory
	err := r.store.View(func(read func(string, interface{}) error) error {
		var memories []*entity.Memory
		if err := read(memoriesCollection, &memories); err != nil {
			return err
		}
		for _, m := range memories {
			if m.Id == id && strings.EqualFold(m.UserEmail, userEmail) {
				found = m
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *MemoryRepositoryFile) FindAllByUserEmail(ctx context.Context, userEmail string) ([]*entity.Memory, error) {
	var owned []*entity.Memory
	err := r.store.View(func(read func(string, interface{}) error) error {
		var memories []*entity.Memory
		if err := read(memoriesCollection, &memories); err != nil {
			return err
		}
		for _, m := range memories {
			if strings.EqualFold(m.UserEmail, userEmail) {
				owned = append(owned, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].Timestamp.After(owned[j].Timestamp)
	})
	return owned, nil
}

func (r *MemoryRepositoryFile) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.store.View(func(read func(string, interface{}) error) error {
		var memories []*entity.Memory
		if err := read(memoriesCollection, &memories); err != nil {
			return err
		}
		count = int64(len(memories))
		return nil
	})
	return count, err
}

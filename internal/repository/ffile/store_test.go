package ffile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStoreReadMissingCollection(t *testing.T) {
	store := newTestStore(t)

	var users []*entity.User
	err := store.View(func(read func(string, interface{}) error) error {
		return read("users", &users)
	})
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestStoreWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	err = store.Update(func(read func(string, interface{}) error, write func(string, interface{}) error) error {
		return write("users", []string{"a"})
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "users.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "users.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestUserRepositoryRoundtrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := &entity.User{
		Id:           "1",
		Email:        "alex@example.com",
		Username:     "alex",
		Name:         "Alex",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, user))

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := &entity.User{Id: "2", Email: "ALEX@example.com", Username: "other"}
		assert.Error(t, repo.Create(ctx, dup))
	})

	t.Run("finders", func(t *testing.T) {
		byEmail, err := repo.FindByEmail(ctx, "Alex@Example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, "1", byEmail.Id)

		byUsername, err := repo.FindByUsername(ctx, "ALEX")
		require.NoError(t, err)
		require.NotNil(t, byUsername)

		byIdentifier, err := repo.FindByIdentifier(ctx, "alex")
		require.NoError(t, err)
		require.NotNil(t, byIdentifier)

		missing, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("update persists pin hash", func(t *testing.T) {
		pin := "pin-hash"
		user.PersonalPinHash = &pin
		require.NoError(t, repo.Update(ctx, user))

		reloaded, err := repo.FindByEmail(ctx, "alex@example.com")
		require.NoError(t, err)
		require.NotNil(t, reloaded.PersonalPinHash)
		assert.Equal(t, "pin-hash", *reloaded.PersonalPinHash)
	})

	t.Run("update unknown user fails", func(t *testing.T) {
		assert.Error(t, repo.Update(ctx, &entity.User{Id: "404"}))
	})

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryRepositoryOrderingAndScope(t *testing.T) {
	store := newTestStore(t)
	repo := NewMemoryRepository(store)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Memory{
			Id:        fmt.Sprintf("m%d", i),
			UserEmail: "alex@example.com",
			Title:     fmt.Sprintf("note %d", i),
			VaultType: entity.VaultTypeLearning,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Memory{
		Id:        "other",
		UserEmail: "sam@example.com",
		VaultType: entity.VaultTypeCultural,
		Timestamp: base,
	}))

	memories, err := repo.FindAllByUserEmail(ctx, "ALEX@example.com")
	require.NoError(t, err)
	require.Len(t, memories, 3)
	// Newest first.
	assert.Equal(t, "m2", memories[0].Id)
	assert.Equal(t, "m0", memories[2].Id)

	t.Run("find and update scoped to owner", func(t *testing.T) {
		found, err := repo.FindById(ctx, "alex@example.com", "m1")
		require.NoError(t, err)
		require.NotNil(t, found)

		foreign, err := repo.FindById(ctx, "sam@example.com", "m1")
		require.NoError(t, err)
		assert.Nil(t, foreign)

		found.Title = "edited"
		require.NoError(t, repo.Update(ctx, found))
		reloaded, err := repo.FindById(ctx, "alex@example.com", "m1")
		require.NoError(t, err)
		assert.Equal(t, "edited", reloaded.Title)
	})

	t.Run("delete removes only the owner's row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "alex@example.com", "m1"))
		gone, err := repo.FindById(ctx, "alex@example.com", "m1")
		require.NoError(t, err)
		assert.Nil(t, gone)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestActivityRepositoryNewestFirstAndCap(t *testing.T) {
	store := newTestStore(t)
	repo := NewActivityRepository(store)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, &entity.AdminActivity{
			Id:        fmt.Sprintf("a%d", i),
			Timestamp: time.Now(),
			Action:    "ai_chat",
		}))
	}

	listed, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "a4", listed[0].Id)
	assert.Equal(t, "a3", listed[1].Id)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.LessOrEqual(t, len(all), contract.ActivityCap)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

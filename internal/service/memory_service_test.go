package service

import (
	"context"
	"testing"

	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryService(t *testing.T) IMemoryService {
	_, memories, _ := newTestRepos(t)
	return NewMemoryService(memories)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestMemoryCreateAndList(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()
	email := "alex@example.com"

	created, err := svc.Create(ctx, email, &dto.CreateMemoryRequest{
		Title:       "Trip to Rome",
		Content:     "Visited the Colosseum",
		IsImportant: true,
		VaultType:   entity.VaultTypeCultural,
	}, false)
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, email, created.UserEmail)
	assert.False(t, created.Timestamp.IsZero())

	list, err := svc.List(ctx, email, false)
	require.NoError(t, err)
	require.Len(t, list.Memories, 1)
	assert.True(t, list.PersonalLocked)

	// Another user sees nothing.
	other, err := svc.List(ctx, "other@example.com", false)
	require.NoError(t, err)
	assert.Empty(t, other.Memories)
}

func TestPersonalVaultGating(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()
	email := "alex@example.com"

	// Creating a personal memory while locked is refused.
	_, err := svc.Create(ctx, email, &dto.CreateMemoryRequest{
		Title: "Diary", Content: "private", VaultType: entity.VaultTypePersonal,
	}, false)
	require.Error(t, err)
	assert.Equal(t, 403, err.(*ServiceError).Code)

	created, err := svc.Create(ctx, email, &dto.CreateMemoryRequest{
		Title: "Diary", Content: "private", VaultType: entity.VaultTypePersonal,
	}, true)
	require.NoError(t, err)

	// Locked listings hide it but still flag the lock.
	locked, err := svc.List(ctx, email, false)
	require.NoError(t, err)
	assert.Empty(t, locked.Memories)
	assert.True(t, locked.PersonalLocked)

	unlocked, err := svc.List(ctx, email, true)
	require.NoError(t, err)
	assert.Len(t, unlocked.Memories, 1)
	assert.False(t, unlocked.PersonalLocked)

	// Updating or deleting a personal memory requires unlock.
	_, err = svc.Update(ctx, email, created.Id, &dto.UpdateMemoryRequest{Title: strPtr("x")}, false)
	require.Error(t, err)
	assert.Equal(t, 403, err.(*ServiceError).Code)

	_, err = svc.Delete(ctx, email, created.Id, false)
	require.Error(t, err)
	assert.Equal(t, 403, err.(*ServiceError).Code)

	_, err = svc.Delete(ctx, email, created.Id, true)
	assert.NoError(t, err)
}

func TestMovingIntoPersonalVaultRequiresUnlock(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()
	email := "alex@example.com"

	created, err := svc.Create(ctx, email, &dto.CreateMemoryRequest{
		Title: "Note", Content: "text", VaultType: entity.VaultTypeLearning,
	}, false)
	require.NoError(t, err)

	_, err = svc.Update(ctx, email, created.Id, &dto.UpdateMemoryRequest{
		VaultType: strPtr(entity.VaultTypePersonal),
	}, false)
	require.Error(t, err)
	assert.Equal(t, 403, err.(*ServiceError).Code)

	updated, err := svc.Update(ctx, email, created.Id, &dto.UpdateMemoryRequest{
		VaultType: strPtr(entity.VaultTypePersonal),
	}, true)
	require.NoError(t, err)
	assert.Equal(t, entity.VaultTypePersonal, updated.VaultType)
}

func TestPartialUpdateTouchesOnlyProvidedFields(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()
	email := "alex@example.com"

	created, err := svc.Create(ctx, email, &dto.CreateMemoryRequest{
		Title: "Original", Content: "body", IsImportant: true, VaultType: entity.VaultTypeLearning,
	}, false)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, email, created.Id, &dto.UpdateMemoryRequest{
		IsFavorite: boolPtr(true),
	}, false)
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.True(t, updated.IsImportant)
	assert.True(t, updated.IsFavorite)
	assert.True(t, created.Timestamp.Equal(updated.Timestamp))
}

func TestUpdateUnknownMemory(t *testing.T) {
	svc := newMemoryService(t)

	_, err := svc.Update(context.Background(), "alex@example.com", "missing", &dto.UpdateMemoryRequest{}, false)
	require.Error(t, err)
	assert.Equal(t, 404, err.(*ServiceError).Code)
}

package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/models"
)

func TestSaveAndGetConflict(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	conflict := &models.ConflictRecord{
		OperationID:   "op-1",
		ServerVersion: []byte(`{"title":"server"}`),
		ClientVersion: []byte(`{"title":"client"}`),
	}

	require.NoError(t, store.SaveConflict(ctx, conflict))

	got, err := store.GetConflict(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, conflict, got)
}

func TestSaveConflict_OverwritesExisting(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first := &models.ConflictRecord{OperationID: "op-1", ServerVersion: []byte(`{"v":1}`)}
	require.NoError(t, store.SaveConflict(ctx, first))

	// Повторный конфликт той же операции заменяет снимок:
	// не более одного ConflictRecord на operation id
	second := &models.ConflictRecord{OperationID: "op-1", ServerVersion: []byte(`{"v":2}`)}
	require.NoError(t, store.SaveConflict(ctx, second))

	got, err := store.GetConflict(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), got.ServerVersion)

	conflicts, err := store.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestGetConflict_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetConflict(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestDeleteConflict_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	conflict := &models.ConflictRecord{OperationID: "op-1"}
	require.NoError(t, store.SaveConflict(ctx, conflict))

	require.NoError(t, store.DeleteConflict(ctx, "op-1"))

	_, err := store.GetConflict(ctx, "op-1")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)

	// Повторное удаление - не ошибка
	assert.NoError(t, store.DeleteConflict(ctx, "op-1"))
}

func TestListConflicts(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	conflicts, err := store.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	require.NoError(t, store.SaveConflict(ctx, &models.ConflictRecord{OperationID: "op-1"}))
	require.NoError(t, store.SaveConflict(ctx, &models.ConflictRecord{OperationID: "op-2"}))

	conflicts, err = store.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Len(t, conflicts, 2)
}

package boltdb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/models"
)

func TestPutAndGetRecord(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	record := &models.Record{
		Collection: models.CollectionStories,
		ID:         "s1",
		Payload:    json.RawMessage(`{"id":"s1","title":"T"}`),
		Version:    1,
	}

	require.NoError(t, store.PutRecord(ctx, record))

	got, err := store.GetRecord(ctx, models.CollectionStories, "s1")
	require.NoError(t, err)
	assert.Equal(t, record.Collection, got.Collection)
	assert.Equal(t, record.ID, got.ID)
	assert.JSONEq(t, string(record.Payload), string(got.Payload))
	assert.Equal(t, int64(1), got.Version)
}

func TestPutRecord_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	record := &models.Record{
		Collection: models.CollectionStories,
		ID:         "s1",
		Payload:    json.RawMessage(`{"title":"old"}`),
		Version:    1,
	}
	require.NoError(t, store.PutRecord(ctx, record))

	record.Payload = json.RawMessage(`{"title":"new"}`)
	record.Version = 2
	require.NoError(t, store.PutRecord(ctx, record))

	got, err := store.GetRecord(ctx, models.CollectionStories, "s1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"new"}`, string(got.Payload))
	assert.Equal(t, int64(2), got.Version)
}

func TestGetRecord_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetRecord(ctx, models.CollectionStories, "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestDeleteRecord_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	record := &models.Record{
		Collection: models.CollectionStories,
		ID:         "s1",
		Payload:    json.RawMessage(`{}`),
	}
	require.NoError(t, store.PutRecord(ctx, record))

	require.NoError(t, store.DeleteRecord(ctx, models.CollectionStories, "s1"))

	_, err := store.GetRecord(ctx, models.CollectionStories, "s1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	// Повторное удаление отсутствующей записи - не ошибка
	assert.NoError(t, store.DeleteRecord(ctx, models.CollectionStories, "s1"))
}

func TestListRecords_FiltersByCollection(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	records := []*models.Record{
		{Collection: models.CollectionStories, ID: "s1", Payload: json.RawMessage(`{}`)},
		{Collection: models.CollectionStories, ID: "s2", Payload: json.RawMessage(`{}`)},
		{Collection: models.CollectionTopics, ID: "t1", Payload: json.RawMessage(`{}`)},
	}
	for _, r := range records {
		require.NoError(t, store.PutRecord(ctx, r))
	}

	stories, err := store.ListRecords(ctx, models.CollectionStories)
	require.NoError(t, err)
	assert.Len(t, stories, 2)

	topics, err := store.ListRecords(ctx, models.CollectionTopics)
	require.NoError(t, err)
	assert.Len(t, topics, 1)

	feedback, err := store.ListRecords(ctx, models.CollectionFeedback)
	require.NoError(t, err)
	assert.Empty(t, feedback)
}

func TestRecords_ClosedStorage(t *testing.T) {
	ctx := context.Background()
	store := &Storage{}

	err := store.PutRecord(ctx, &models.Record{Collection: "stories", ID: "s1"})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.GetRecord(ctx, "stories", "s1")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.ListRecords(ctx, "stories")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

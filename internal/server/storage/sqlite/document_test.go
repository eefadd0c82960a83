package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadtripai/tripsync/internal/models"
	"github.com/roadtripai/tripsync/internal/server/storage"
)

func newDocStorage(t *testing.T) *Storage {
	t.Helper()

	s := newTestStorage(t)
	require.NoError(t, s.CreateDevice(context.Background(), testDevice("device-1")))

	return s
}

func testDocument(id string, version int64) *models.Document {
	return &models.Document{
		DeviceID:   "device-1",
		Collection: "stories",
		ID:         id,
		OriginID:   "device-1",
		Payload:    json.RawMessage(`{"title":"Route 66"}`),
		Version:    version,
		Timestamp:  time.Now().UnixMilli(),
		UpdatedAt:  time.Now(),
	}
}

func TestInsertDocument(t *testing.T) {
	s := newDocStorage(t)
	ctx := context.Background()

	require.NoError(t, s.InsertDocument(ctx, testDocument("doc-1", 1)))

	got, err := s.GetDocument(ctx, "device-1", "stories", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.ID)
	assert.Equal(t, "stories", got.Collection)
	assert.Equal(t, int64(1), got.Version)
	assert.JSONEq(t, `{"title":"Route 66"}`, string(got.Payload))
}

func TestInsertDocument_Duplicate(t *testing.T) {
	s := newDocStorage(t)
	ctx := context.Background()

	require.NoError(t, s.InsertDocument(ctx, testDocument("doc-1", 1)))

	err := s.InsertDocument(ctx, testDocument("doc-1", 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrDocumentAlreadyExists)
}

func TestGetDocument_NotFound(t *testing.T) {
	s := newDocStorage(t)

	_, err := s.GetDocument(context.Background(), "device-1", "stories", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestGetDocument_OtherDeviceInvisible(t *testing.T) {
	s := newDocStorage(t)
	ctx := context.Background()

	require.NoError(t, s.InsertDocument(ctx, testDocument("doc-1", 1)))

	// Документы изолированы по устройству-владельцу
	_, err := s.GetDocument(ctx, "device-2", "stories", "doc-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestUpdateDocument(t *testing.T) {
	s := newDocStorage(t)
	ctx := context.Background()

	require.NoError(t, s.InsertDocument(ctx, testDocument("doc-1", 1)))

	updated := testDocument("doc-1", 2)
	updated.Payload = json.RawMessage(`{"title":"Route 66, revised"}`)
	require.NoError(t, s.UpdateDocument(ctx, updated, 1))

	got, err := s.GetDocument(ctx, "device-1", "stories", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.JSONEq(t, `{"title":"Route 66, revised"}`, string(got.Payload))
}

func TestUpdateDocument_VersionMismatch(t *testing.T) {
	s := newDocStorage(t)
	ctx := context.Background()

	require.NoError(t, s.InsertDocument(ctx, testDocument("doc-1", 5)))

	err := s.UpdateDocument(ctx, testDocument("doc-1", 3), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrVersionMismatch)

	// Документ не изменился
	got, err := s.GetDocument(ctx, "device-1", "stories", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Version)
}

func TestUpdateDocument_NotFound(t *testing.T) {
	s := newDocStorage(t)

	err := s.UpdateDocument(context.Background(), testDocument("missing", 2), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestReplaceDocument(t *testing.T) {
	s := newDocStorage(t)
	ctx := context.Background()

	// Replace создает отсутствующий документ
	require.NoError(t, s.ReplaceDocument(ctx, testDocument("doc-1", 1)))

	// И безусловно перезаписывает существующий, игнорируя версию
	forced := testDocument("doc-1", 7)
	forced.Payload = json.RawMessage(`{"title":"forced"}`)
	require.NoError(t, s.ReplaceDocument(ctx, forced))

	got, err := s.GetDocument(ctx, "device-1", "stories", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Version)
	assert.JSONEq(t, `{"title":"forced"}`, string(got.Payload))
}

func TestDeleteDocument(t *testing.T) {
	s := newDocStorage(t)
	ctx := context.Background()

	require.NoError(t, s.InsertDocument(ctx, testDocument("doc-1", 1)))
	require.NoError(t, s.DeleteDocument(ctx, "device-1", "stories", "doc-1"))

	_, err := s.GetDocument(ctx, "device-1", "stories", "doc-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	// Повторное удаление идемпотентно
	require.NoError(t, s.DeleteDocument(ctx, "device-1", "stories", "doc-1"))
}

func TestListDocuments(t *testing.T) {
	s := newDocStorage(t)
	ctx := context.Background()

	require.NoError(t, s.InsertDocument(ctx, testDocument("doc-1", 1)))
	require.NoError(t, s.InsertDocument(ctx, testDocument("doc-2", 1)))

	other := testDocument("topic-1", 1)
	other.Collection = "topics"
	require.NoError(t, s.InsertDocument(ctx, other))

	docs, err := s.ListDocuments(ctx, "device-1", "stories")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	for _, doc := range docs {
		assert.Equal(t, "stories", doc.Collection)
	}

	empty, err := s.ListDocuments(ctx, "device-1", "feedback")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

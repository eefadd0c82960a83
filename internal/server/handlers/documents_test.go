package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadtripai/tripsync/internal/models"
	"github.com/roadtripai/tripsync/internal/server/storage"
	"github.com/roadtripai/tripsync/pkg/api"
)

func newDocumentStoreMock() (*storage.DocumentStorageMock, map[string]*models.Document) {
	docs := make(map[string]*models.Document)
	key := func(deviceID, collection, id string) string {
		return deviceID + "/" + collection + "/" + id
	}

	mock := &storage.DocumentStorageMock{
		GetDocumentFunc: func(ctx context.Context, deviceID, collection, id string) (*models.Document, error) {
			doc, ok := docs[key(deviceID, collection, id)]
			if !ok {
				return nil, storage.ErrDocumentNotFound
			}
			return doc.Clone(), nil
		},
		InsertDocumentFunc: func(ctx context.Context, doc *models.Document) error {
			k := key(doc.DeviceID, doc.Collection, doc.ID)
			if _, ok := docs[k]; ok {
				return storage.ErrDocumentAlreadyExists
			}
			docs[k] = doc.Clone()
			return nil
		},
		UpdateDocumentFunc: func(ctx context.Context, doc *models.Document, expectedVersion int64) error {
			k := key(doc.DeviceID, doc.Collection, doc.ID)
			existing, ok := docs[k]
			if !ok {
				return storage.ErrDocumentNotFound
			}
			if existing.Version != expectedVersion {
				return storage.ErrVersionMismatch
			}
			docs[k] = doc.Clone()
			return nil
		},
		ReplaceDocumentFunc: func(ctx context.Context, doc *models.Document) error {
			docs[key(doc.DeviceID, doc.Collection, doc.ID)] = doc.Clone()
			return nil
		},
		DeleteDocumentFunc: func(ctx context.Context, deviceID, collection, id string) error {
			delete(docs, key(deviceID, collection, id))
			return nil
		},
		ListDocumentsFunc: func(ctx context.Context, deviceID, collection string) ([]*models.Document, error) {
			var result []*models.Document
			for _, doc := range docs {
				if doc.DeviceID == deviceID && doc.Collection == collection {
					result = append(result, doc.Clone())
				}
			}
			return result, nil
		},
	}

	return mock, docs
}

// docRequest строит аутентифицированный запрос с path parameters
func docRequest(method, collection, id string, body any, force bool) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	path := "/api/v1/" + url.PathEscape(collection)
	if id != "" {
		path += "/" + url.PathEscape(id)
	}

	req := httptest.NewRequest(method, path, reader)
	req.SetPathValue("collection", collection)
	if id != "" {
		req.SetPathValue("id", id)
	}
	if force {
		req.Header.Set(api.HeaderForceUpdate, "true")
	}

	ctx := context.WithValue(req.Context(), DeviceIDKey, "device-1")
	return req.WithContext(ctx)
}

func storedDoc(version int64) *models.Document {
	return &models.Document{
		DeviceID:   "device-1",
		Collection: "stories",
		ID:         "doc-1",
		OriginID:   "device-1",
		Payload:    json.RawMessage(`{"title":"old"}`),
		Version:    version,
		UpdatedAt:  time.Now(),
	}
}

func TestDocumentCreate(t *testing.T) {
	store, docs := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	rec := httptest.NewRecorder()
	h.Create(rec, docRequest(http.MethodPost, "stories", "", api.Document{
		ID:       "doc-1",
		OriginID: "device-1",
		Payload:  json.RawMessage(`{"title":"Route 66"}`),
	}, false))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Version)
	assert.Equal(t, "stories", resp.Collection)

	stored := docs["device-1/stories/doc-1"]
	require.NotNil(t, stored)
	assert.Equal(t, int64(1), stored.Version)
}

func TestDocumentCreate_AlreadyExists(t *testing.T) {
	store, docs := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	docs["device-1/stories/doc-1"] = storedDoc(4)

	rec := httptest.NewRecorder()
	h.Create(rec, docRequest(http.MethodPost, "stories", "", api.Document{
		ID:      "doc-1",
		Payload: json.RawMessage(`{"title":"new"}`),
	}, false))

	require.Equal(t, http.StatusConflict, rec.Code)

	// 409 несет текущий серверный документ
	var resp api.ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.Document.Version)
	assert.JSONEq(t, `{"title":"old"}`, string(resp.Document.Payload))
	assert.NotEmpty(t, resp.Error)
}

func TestDocumentCreate_InvalidCollection(t *testing.T) {
	store, _ := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	rec := httptest.NewRecorder()
	h.Create(rec, docRequest(http.MethodPost, "Invalid Collection!", "", api.Document{ID: "doc-1"}, false))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.InsertDocumentCalls())
}

func TestDocumentUpdate(t *testing.T) {
	store, docs := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	docs["device-1/stories/doc-1"] = storedDoc(3)

	rec := httptest.NewRecorder()
	h.Update(rec, docRequest(http.MethodPut, "stories", "doc-1", api.Document{
		ID:      "doc-1",
		Payload: json.RawMessage(`{"title":"new"}`),
		Version: 3,
	}, false))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.Version)

	stored := docs["device-1/stories/doc-1"]
	assert.Equal(t, int64(4), stored.Version)
	assert.JSONEq(t, `{"title":"new"}`, string(stored.Payload))
}

func TestDocumentUpdate_VersionConflict(t *testing.T) {
	store, docs := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	docs["device-1/stories/doc-1"] = storedDoc(7)

	rec := httptest.NewRecorder()
	h.Update(rec, docRequest(http.MethodPut, "stories", "doc-1", api.Document{
		ID:      "doc-1",
		Payload: json.RawMessage(`{"title":"stale"}`),
		Version: 3,
	}, false))

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp api.ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Document.Version)

	// Документ не перезаписан
	assert.JSONEq(t, `{"title":"old"}`, string(docs["device-1/stories/doc-1"].Payload))
}

func TestDocumentUpdate_Force(t *testing.T) {
	store, docs := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	docs["device-1/stories/doc-1"] = storedDoc(7)

	// Заведомо устаревшая базовая версия, но force пропускает проверку
	rec := httptest.NewRecorder()
	h.Update(rec, docRequest(http.MethodPut, "stories", "doc-1", api.Document{
		ID:      "doc-1",
		Payload: json.RawMessage(`{"title":"forced"}`),
		Version: 3,
	}, true))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(8), resp.Version)

	stored := docs["device-1/stories/doc-1"]
	assert.JSONEq(t, `{"title":"forced"}`, string(stored.Payload))
	require.Len(t, store.ReplaceDocumentCalls(), 1)
}

func TestDocumentUpdate_ForceUpsertsMissing(t *testing.T) {
	store, docs := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	rec := httptest.NewRecorder()
	h.Update(rec, docRequest(http.MethodPut, "stories", "doc-1", api.Document{
		ID:      "doc-1",
		Payload: json.RawMessage(`{"title":"resurrected"}`),
		Version: 2,
	}, true))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, docs["device-1/stories/doc-1"])
	assert.Equal(t, int64(1), docs["device-1/stories/doc-1"].Version)
}

func TestDocumentUpdate_NotFound(t *testing.T) {
	store, _ := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	rec := httptest.NewRecorder()
	h.Update(rec, docRequest(http.MethodPut, "stories", "missing", api.Document{
		ID:      "missing",
		Version: 1,
	}, false))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentGet(t *testing.T) {
	store, docs := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	docs["device-1/stories/doc-1"] = storedDoc(2)

	rec := httptest.NewRecorder()
	h.Get(rec, docRequest(http.MethodGet, "stories", "doc-1", nil, false))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Version)
}

func TestDocumentGet_NotFound(t *testing.T) {
	store, _ := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	rec := httptest.NewRecorder()
	h.Get(rec, docRequest(http.MethodGet, "stories", "missing", nil, false))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentList(t *testing.T) {
	store, docs := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	docs["device-1/stories/doc-1"] = storedDoc(1)
	second := storedDoc(1)
	second.ID = "doc-2"
	docs["device-1/stories/doc-2"] = second

	rec := httptest.NewRecorder()
	h.List(rec, docRequest(http.MethodGet, "stories", "", nil, false))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []api.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestDocumentDelete(t *testing.T) {
	store, docs := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	docs["device-1/stories/doc-1"] = storedDoc(1)

	rec := httptest.NewRecorder()
	h.Delete(rec, docRequest(http.MethodDelete, "stories", "doc-1", nil, false))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, docs)

	// Повторное удаление идемпотентно
	rec = httptest.NewRecorder()
	h.Delete(rec, docRequest(http.MethodDelete, "stories", "doc-1", nil, false))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDocument_Unauthenticated(t *testing.T) {
	store, _ := newDocumentStoreMock()
	h := NewDocumentHandler(testLogger(), store)

	// Запрос без device_id в контексте
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stories/doc-1", nil)
	req.SetPathValue("collection", "stories")
	req.SetPathValue("id", "doc-1")

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

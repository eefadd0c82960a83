package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadtripai/tripsync/pkg/api"
)

func TestRegisterDevice(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/devices/register", r.URL.Path)

		var req api.RegisterDeviceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pixel-8-pro", req.DeviceName)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.RegisterDeviceResponse{
			DeviceID: "device-abc",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})

	resp, err := client.RegisterDevice(ctx, api.RegisterDeviceRequest{
		DeviceName: "pixel-8-pro",
		Secret:     "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "device-abc", resp.DeviceID)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/devices/login", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken: "jwt-token",
			ExpiresIn:   int64(24 * time.Hour / time.Second),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})

	resp, err := client.Login(ctx, api.LoginRequest{DeviceID: "device-abc", Secret: "correct-horse-battery"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.AccessToken)
}

func TestCreateDocument(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/stories", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var doc api.Document
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		doc.Version = 1

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(doc)
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})

	doc := &api.Document{
		Collection: "stories",
		ID:         "story-1",
		Payload:    json.RawMessage(`{"title":"Route 66"}`),
	}

	created, err := client.CreateDocument(ctx, "test-token", doc)
	require.NoError(t, err)
	assert.Equal(t, "story-1", created.ID)
	assert.Equal(t, int64(1), created.Version)
}

func TestUpdateDocument_ForceHeader(t *testing.T) {
	ctx := context.Background()

	var gotForce atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/stories/story-1", r.URL.Path)
		gotForce.Store(r.Header.Get(api.HeaderForceUpdate))

		var doc api.Document
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		doc.Version++

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})

	doc := &api.Document{Collection: "stories", ID: "story-1", Version: 2}

	// Без force заголовок отсутствует
	_, err := client.UpdateDocument(ctx, "test-token", doc, false)
	require.NoError(t, err)
	assert.Equal(t, "", gotForce.Load())

	// С force заголовок выставлен
	updated, err := client.UpdateDocument(ctx, "test-token", doc, true)
	require.NoError(t, err)
	assert.Equal(t, "true", gotForce.Load())
	assert.Equal(t, int64(3), updated.Version)
}

func TestUpdateDocument_Conflict(t *testing.T) {
	ctx := context.Background()

	serverDoc := api.Document{
		Collection: "stories",
		ID:         "story-1",
		Payload:    json.RawMessage(`{"title":"Server version"}`),
		Version:    5,
	}

	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(api.ConflictResponse{
			Document: serverDoc,
			Error:    "version mismatch: client 2, server 5",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})

	doc := &api.Document{Collection: "stories", ID: "story-1", Version: 2}

	_, err := client.UpdateDocument(ctx, "test-token", doc, false)
	require.Error(t, err)

	conflictErr, ok := IsConflict(err)
	require.True(t, ok)
	assert.Equal(t, int64(5), conflictErr.Document.Version)
	assert.JSONEq(t, `{"title":"Server version"}`, string(conflictErr.Document.Payload))

	// 409 не повторяется
	assert.Equal(t, int32(1), requests.Load())
}

func TestDoRequest_RetriesTransientErrors(t *testing.T) {
	ctx := context.Background()

	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.Document{Collection: "stories", ID: "story-1", Version: 1})
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{MaxRetries: 2})

	doc, err := client.GetDocument(ctx, "test-token", "stories", "story-1")
	require.NoError(t, err)
	assert.Equal(t, "story-1", doc.ID)
	assert.Equal(t, int32(2), requests.Load())
}

func TestDoRequest_AttemptsCappedByMaxRetries(t *testing.T) {
	ctx := context.Background()

	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{MaxRetries: 2})

	_, err := client.GetDocument(ctx, "test-token", "stories", "story-1")
	require.Error(t, err)

	// MaxRetries ограничивает общее число запросов, включая первый
	assert.Equal(t, int32(2), requests.Load())
}

func TestDoRequest_NoRetryOnPermanentError(t *testing.T) {
	ctx := context.Background()

	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "document not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{MaxRetries: 3})

	_, err := client.GetDocument(ctx, "test-token", "stories", "missing")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "document not found", apiErr.Message)
	assert.False(t, apiErr.Transient())

	assert.Equal(t, int32(1), requests.Load())
}

func TestDeleteDocument(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/stories/story-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})

	err := client.DeleteDocument(ctx, "test-token", "stories", "story-1")
	assert.NoError(t, err)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})
	assert.NoError(t, client.Ping(context.Background()))
}

func TestPing_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})

	err := client.Ping(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestErrorTransientClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		transient  bool
	}{
		{"request timeout", http.StatusRequestTimeout, true},
		{"too many requests", http.StatusTooManyRequests, true},
		{"internal server error", http.StatusInternalServerError, true},
		{"bad gateway", http.StatusBadGateway, true},
		{"service unavailable", http.StatusServiceUnavailable, true},
		{"gateway timeout", http.StatusGatewayTimeout, true},
		{"bad request", http.StatusBadRequest, false},
		{"unauthorized", http.StatusUnauthorized, false},
		{"not found", http.StatusNotFound, false},
		{"conflict", http.StatusConflict, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &Error{StatusCode: tt.statusCode}
			assert.Equal(t, tt.transient, err.Transient())
		})
	}
}

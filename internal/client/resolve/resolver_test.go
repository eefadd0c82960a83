package resolve

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadtripai/tripsync/internal/client/queue"
	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/models"
	"github.com/roadtripai/tripsync/pkg/api"
)

type testEnv struct {
	resolver  *Resolver
	queue     *queue.Queue
	records   map[string]*models.Record
	conflicts map[string]*models.ConflictRecord
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var persistedQueue []*models.SyncOperation
	queueStore := &storage.QueueStorageMock{
		LoadQueueFunc: func(ctx context.Context) ([]*models.SyncOperation, error) {
			return persistedQueue, nil
		},
		PersistQueueFunc: func(ctx context.Context, ops []*models.SyncOperation) error {
			persistedQueue = ops
			return nil
		},
	}
	q := queue.New(queueStore, logger)

	records := make(map[string]*models.Record)
	recordStore := &storage.RecordStorageMock{
		PutRecordFunc: func(ctx context.Context, record *models.Record) error {
			records[record.Collection+"/"+record.ID] = record.Clone()
			return nil
		},
		GetRecordFunc: func(ctx context.Context, collection, id string) (*models.Record, error) {
			if rec, ok := records[collection+"/"+id]; ok {
				return rec.Clone(), nil
			}
			return nil, storage.ErrRecordNotFound
		},
		DeleteRecordFunc: func(ctx context.Context, collection, id string) error {
			delete(records, collection+"/"+id)
			return nil
		},
	}

	conflicts := make(map[string]*models.ConflictRecord)
	conflictStore := &storage.ConflictStorageMock{
		SaveConflictFunc: func(ctx context.Context, conflict *models.ConflictRecord) error {
			conflicts[conflict.OperationID] = conflict
			return nil
		},
		GetConflictFunc: func(ctx context.Context, operationID string) (*models.ConflictRecord, error) {
			if c, ok := conflicts[operationID]; ok {
				return c, nil
			}
			return nil, storage.ErrConflictNotFound
		},
		DeleteConflictFunc: func(ctx context.Context, operationID string) error {
			delete(conflicts, operationID)
			return nil
		},
		ListConflictsFunc: func(ctx context.Context) ([]*models.ConflictRecord, error) {
			result := make([]*models.ConflictRecord, 0, len(conflicts))
			for _, c := range conflicts {
				result = append(result, c)
			}
			return result, nil
		},
	}

	return &testEnv{
		resolver:  NewResolver(q, recordStore, conflictStore, logger),
		queue:     q,
		records:   records,
		conflicts: conflicts,
	}
}

func enqueueConflicted(t *testing.T, env *testEnv) *models.SyncOperation {
	t.Helper()

	op := &models.SyncOperation{
		ID:         "op-1",
		Type:       models.OpUpdate,
		Collection: models.CollectionStories,
		DocumentID: "story-1",
		OriginID:   "device-test",
		Payload:    json.RawMessage(`{"title":"Local edit"}`),
		Version:    2,
	}
	require.NoError(t, env.queue.Enqueue(context.Background(), op))
	return op
}

func serverDocument() *api.Document {
	return &api.Document{
		Collection: models.CollectionStories,
		ID:         "story-1",
		Payload:    json.RawMessage(`{"title":"Server edit"}`),
		Version:    5,
	}
}

func TestResolve_ServerWins(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	op := enqueueConflicted(t, env)

	err := env.resolver.Resolve(ctx, op, serverDocument(), models.PolicyServerWins)
	require.NoError(t, err)

	// Локальная запись заменена серверной версией
	record := env.records["stories/story-1"]
	require.NotNil(t, record)
	assert.JSONEq(t, `{"title":"Server edit"}`, string(record.Payload))
	assert.Equal(t, int64(5), record.Version)

	// Операция удалена из очереди
	assert.Equal(t, 0, env.queue.Len())
}

func TestResolve_ServerWins_Idempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	op := enqueueConflicted(t, env)

	require.NoError(t, env.resolver.Resolve(ctx, op, serverDocument(), models.PolicyServerWins))

	// Повторное применение того же серверного документа не меняет
	// итоговое состояние записи
	before := env.records["stories/story-1"].Clone()
	err := env.resolver.Resolve(ctx, op, serverDocument(), models.PolicyServerWins)
	require.Error(t, err) // операции уже нет в очереди
	assert.Equal(t, before.Payload, env.records["stories/story-1"].Payload)
	assert.Equal(t, before.Version, env.records["stories/story-1"].Version)
}

func TestResolve_ClientWins(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	op := enqueueConflicted(t, env)

	err := env.resolver.Resolve(ctx, op, serverDocument(), models.PolicyClientWins)
	require.NoError(t, err)

	// Операция осталась в очереди и будет отправлена с force
	got, err := env.queue.Get(op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.True(t, got.Force)

	// Локальная запись не тронута
	assert.Empty(t, env.records)
}

func TestResolve_Manual_StoresSnapshot(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	op := enqueueConflicted(t, env)

	err := env.resolver.Resolve(ctx, op, serverDocument(), models.PolicyManual)
	require.NoError(t, err)

	// Операция помечена конфликтной и не отправляется автоматически
	got, err := env.queue.Get(op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConflict, got.Status)

	_, ok := env.queue.NextAttemptable()
	assert.False(t, ok)

	// Снимок содержит обе версии
	snapshot := env.conflicts[op.ID]
	require.NotNil(t, snapshot)

	var serverDoc api.Document
	require.NoError(t, json.Unmarshal(snapshot.ServerVersion, &serverDoc))
	assert.Equal(t, int64(5), serverDoc.Version)

	var clientOp models.SyncOperation
	require.NoError(t, json.Unmarshal(snapshot.ClientVersion, &clientOp))
	assert.JSONEq(t, `{"title":"Local edit"}`, string(clientOp.Payload))
}

func TestResolveManual_RoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	op := enqueueConflicted(t, env)

	require.NoError(t, env.resolver.Resolve(ctx, op, serverDocument(), models.PolicyManual))

	merged := []byte(`{"title":"Merged edit"}`)
	err := env.resolver.ResolveManual(ctx, op.ID, merged)
	require.NoError(t, err)

	// Операция вернулась в очередь с новым payload и force флагом
	got, err := env.queue.Get(op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.True(t, got.Force)
	assert.JSONEq(t, `{"title":"Merged edit"}`, string(got.Payload))

	// Локальная запись обновлена разрешенным payload
	record := env.records["stories/story-1"]
	require.NotNil(t, record)
	assert.JSONEq(t, `{"title":"Merged edit"}`, string(record.Payload))

	// Снимок конфликта удален
	assert.Empty(t, env.conflicts)
}

func TestResolveManual_NoSnapshot_NoOp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	op := enqueueConflicted(t, env)

	err := env.resolver.ResolveManual(ctx, "missing", []byte(`{}`))
	require.NoError(t, err)

	// Очередь и локальные записи не тронуты
	got, getErr := env.queue.Get(op.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.False(t, got.Force)
	assert.Empty(t, env.records)
}

func TestResolve_UnknownPolicy(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	op := enqueueConflicted(t, env)

	err := env.resolver.Resolve(ctx, op, serverDocument(), models.ConflictPolicy("coin-flip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown conflict resolution policy")
}

func TestPendingConflicts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	op := enqueueConflicted(t, env)

	require.NoError(t, env.resolver.Resolve(ctx, op, serverDocument(), models.PolicyManual))

	conflicts, err := env.resolver.PendingConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, op.ID, conflicts[0].OperationID)
}

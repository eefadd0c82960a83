package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/roadtripai/tripsync/internal/client/api"
	"github.com/roadtripai/tripsync/internal/client/auth"
	"github.com/roadtripai/tripsync/internal/client/data"
	"github.com/roadtripai/tripsync/internal/client/iocli"
	"github.com/roadtripai/tripsync/internal/client/queue"
	"github.com/roadtripai/tripsync/internal/client/resolve"
	"github.com/roadtripai/tripsync/internal/client/storage"
	syncdrv "github.com/roadtripai/tripsync/internal/client/sync"
	"github.com/roadtripai/tripsync/internal/identity"
	"github.com/roadtripai/tripsync/internal/models"
)

// capturingIO собирает весь вывод команд в один буфер
type capturingIO struct {
	*iocli.IOMock
	output strings.Builder
	inputs []string
}

func newCapturingIO() *capturingIO {
	cio := &capturingIO{}
	cio.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			cio.output.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			cio.output.WriteString(fmt.Sprintf(format, a...))
		},
		ReadInputFunc: func(prompt string) (string, error) {
			if len(cio.inputs) == 0 {
				return "", io.EOF
			}
			next := cio.inputs[0]
			cio.inputs = cio.inputs[1:]
			return next, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			if len(cio.inputs) == 0 {
				return "", io.EOF
			}
			next := cio.inputs[0]
			cio.inputs = cio.inputs[1:]
			return next, nil
		},
	}
	return cio
}

type cliEnv struct {
	cli   *Cli
	io    *capturingIO
	queue *queue.Queue
}

func newCliEnv(t *testing.T) *cliEnv {
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
		ListRecordsFunc: func(ctx context.Context, collection string) ([]*models.Record, error) {
			var result []*models.Record
			for _, rec := range records {
				if rec.Collection == collection {
					result = append(result, rec.Clone())
				}
			}
			return result, nil
		},
	}

	var meta *models.SyncMetadata
	metadataStore := &storage.MetadataStorageMock{
		LoadMetadataFunc: func(ctx context.Context) (*models.SyncMetadata, error) {
			if meta == nil {
				return nil, storage.ErrMetadataNotFound
			}
			return meta.Clone(), nil
		},
		PersistMetadataFunc: func(ctx context.Context, m *models.SyncMetadata) error {
			meta = m.Clone()
			return nil
		},
	}

	authStore := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, storage.ErrAuthNotFound
		},
		DeleteAuthFunc: func(ctx context.Context) error {
			return nil
		},
	}

	conflictStore := &storage.ConflictStorageMock{
		ListConflictsFunc: func(ctx context.Context) ([]*models.ConflictRecord, error) {
			return nil, nil
		},
		GetConflictFunc: func(ctx context.Context, operationID string) (*models.ConflictRecord, error) {
			return nil, storage.ErrConflictNotFound
		},
	}

	apiMock := &httpClient.ClientAPIMock{}
	provider := identity.StaticProvider("device-test")

	authService := auth.NewService(apiMock, authStore)
	dataService := data.NewService(recordStore, q, provider, nil)
	resolver := resolve.NewResolver(q, recordStore, conflictStore, logger)
	driver := syncdrv.NewDriver(apiMock, q, recordStore, metadataStore, authStore, resolver, logger, syncdrv.Options{})

	cio := newCapturingIO()
	c := New(cio, authService, dataService, driver, resolver, q, metadataStore, provider)

	return &cliEnv{cli: c, io: cio, queue: q}
}

func TestRun_UnknownCommand(t *testing.T) {
	env := newCliEnv(t)

	err := env.cli.Run(context.Background(), "teleport", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestSaveStory_Interactive(t *testing.T) {
	env := newCliEnv(t)
	env.io.inputs = []string{
		"Route 66 Ghost Towns",
		"Once upon a highway...",
		"Chicago",
		"Santa Monica",
		"morgan",
	}

	err := env.cli.Run(context.Background(), "save-story", nil)
	require.NoError(t, err)

	out := env.io.output.String()
	assert.Contains(t, out, "Story saved.")
	assert.Contains(t, out, "ID: ")

	// Мутация попала в очередь синхронизации
	assert.Equal(t, 1, env.queue.PendingCount())
}

func TestSaveStory_EmptyTitle(t *testing.T) {
	env := newCliEnv(t)
	env.io.inputs = []string{""}

	err := env.cli.Run(context.Background(), "save-story", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title cannot be empty")
}

func TestListStories_Empty(t *testing.T) {
	env := newCliEnv(t)

	err := env.cli.Run(context.Background(), "list-stories", nil)
	require.NoError(t, err)

	out := env.io.output.String()
	assert.Contains(t, out, "No stories found.")
}

func TestListStories_WithEntries(t *testing.T) {
	env := newCliEnv(t)
	env.io.inputs = []string{"Desert Run", "content", "Phoenix", "Tucson", "nova"}
	require.NoError(t, env.cli.Run(context.Background(), "save-story", nil))

	env.io.output.Reset()
	err := env.cli.Run(context.Background(), "list-stories", nil)
	require.NoError(t, err)

	out := env.io.output.String()
	assert.Contains(t, out, "Desert Run")
	assert.Contains(t, out, "Phoenix -> Tucson")
}

func TestGetStory_MissingArg(t *testing.T) {
	env := newCliEnv(t)

	err := env.cli.Run(context.Background(), "get-story", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing story id")
}

func TestSaveFeedback_InvalidRating(t *testing.T) {
	env := newCliEnv(t)

	err := env.cli.Run(context.Background(), "save-feedback", []string{"story-1", "ten"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be a number")

	err = env.cli.Run(context.Background(), "save-feedback", []string{"story-1", "9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be between 1 and 5")
}

func TestSaveTopicAndList(t *testing.T) {
	env := newCliEnv(t)
	env.io.inputs = []string{"Local legends", "Passenger asked about ghosts"}

	require.NoError(t, env.cli.Run(context.Background(), "save-topic", nil))

	env.io.output.Reset()
	require.NoError(t, env.cli.Run(context.Background(), "list-topics", nil))

	out := env.io.output.String()
	assert.Contains(t, out, "Local legends")
}

func TestStatus_NotAuthenticated(t *testing.T) {
	env := newCliEnv(t)

	err := env.cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)

	out := env.io.output.String()
	assert.Contains(t, out, "not authenticated")
	assert.Contains(t, out, "Pending operations: 0")
	assert.Contains(t, out, "device-test")
}

func TestSync_NotAuthenticated(t *testing.T) {
	env := newCliEnv(t)
	env.io.inputs = []string{"Desert Run", "content", "Phoenix", "Tucson", "nova"}
	require.NoError(t, env.cli.Run(context.Background(), "save-story", nil))

	err := env.cli.Run(context.Background(), "sync", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestConflicts_Empty(t *testing.T) {
	env := newCliEnv(t)

	err := env.cli.Run(context.Background(), "conflicts", nil)
	require.NoError(t, err)
	assert.Contains(t, env.io.output.String(), "No conflicts")
}

func TestResolve_InvalidJSON(t *testing.T) {
	env := newCliEnv(t)
	env.io.inputs = []string{"not json"}

	err := env.cli.Run(context.Background(), "resolve", []string{"op-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

package storage

import (
	"context"

	"github.com/roadtripai/tripsync/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines interface for durable persistence of the sync queue.
// Очередь сохраняется целиком после каждой мутации и загружается
// целиком при старте (whole-queue load/save, как в исходном клиенте).
type QueueStorage interface {
	// LoadQueue loads the full ordered operation list
	// Returns empty slice if no queue has been persisted yet
	LoadQueue(ctx context.Context) ([]*models.SyncOperation, error)

	// PersistQueue saves the full ordered operation list
	PersistQueue(ctx context.Context, ops []*models.SyncOperation) error
}

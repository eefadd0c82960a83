package storage

import (
	"context"

	"github.com/roadtripai/tripsync/internal/models"
)

//go:generate moq -out conflicts_mock.go . ConflictStorage

// ConflictStorage defines interface for persisted conflict snapshots
// (manual-resolution mode only).
// Инвариант: не более одного снимка на operation id.
type ConflictStorage interface {
	// SaveConflict stores a conflict snapshot, overwriting any existing
	// snapshot for the same operation id
	SaveConflict(ctx context.Context, conflict *models.ConflictRecord) error

	// GetConflict retrieves a conflict snapshot by operation id
	// Returns ErrConflictNotFound if no snapshot exists
	GetConflict(ctx context.Context, operationID string) (*models.ConflictRecord, error)

	// DeleteConflict removes a conflict snapshot; idempotent
	DeleteConflict(ctx context.Context, operationID string) error

	// ListConflicts returns all pending conflict snapshots
	ListConflicts(ctx context.Context) ([]*models.ConflictRecord, error)
}

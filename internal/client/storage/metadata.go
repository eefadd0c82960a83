package storage

import (
	"context"

	"github.com/roadtripai/tripsync/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing sync metadata
type MetadataStorage interface {
	// LoadMetadata retrieves persisted sync metadata
	// Returns ErrMetadataNotFound on first launch
	LoadMetadata(ctx context.Context) (*models.SyncMetadata, error)

	// PersistMetadata saves sync metadata
	PersistMetadata(ctx context.Context, meta *models.SyncMetadata) error
}

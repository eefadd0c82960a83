package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/models"
)

const keySyncMetadata = "sync_metadata"

// LoadMetadata retrieves persisted sync metadata
// Returns ErrMetadataNotFound on first launch
func (s *Storage) LoadMetadata(ctx context.Context) (*models.SyncMetadata, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var meta *models.SyncMetadata

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return storage.ErrMetadataNotFound
		}

		data := bucket.Get([]byte(keySyncMetadata))
		if data == nil {
			return storage.ErrMetadataNotFound
		}

		meta = &models.SyncMetadata{}
		if err := json.Unmarshal(data, meta); err != nil {
			return fmt.Errorf("failed to unmarshal metadata: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return meta, nil
}

// PersistMetadata saves sync metadata
func (s *Storage) PersistMetadata(ctx context.Context, meta *models.SyncMetadata) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keySyncMetadata), data); err != nil {
			return fmt.Errorf("failed to save metadata: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("persist metadata transaction failed: %w", err)
	}

	return nil
}

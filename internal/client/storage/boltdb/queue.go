package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/models"
)

const keyOperations = "operations"

// LoadQueue loads the full ordered operation list.
// Очередь хранится одним JSON значением: порядок операций - это и есть
// FIFO порядок, отдельная нумерация ключей не нужна.
func (s *Storage) LoadQueue(ctx context.Context) ([]*models.SyncOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.SyncOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(keyOperations))
		if data == nil {
			// Очередь еще не сохранялась - возвращаем пустой список
			return nil
		}

		if err := json.Unmarshal(data, &ops); err != nil {
			return fmt.Errorf("failed to unmarshal queue: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	if ops == nil {
		ops = []*models.SyncOperation{}
	}

	return ops, nil
}

// PersistQueue saves the full ordered operation list
func (s *Storage) PersistQueue(ctx context.Context, ops []*models.SyncOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		if err := bucket.Put([]byte(keyOperations), data); err != nil {
			return fmt.Errorf("failed to save queue: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("persist queue transaction failed: %w", err)
	}

	return nil
}

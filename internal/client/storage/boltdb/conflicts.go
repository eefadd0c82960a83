package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/models"
)

// SaveConflict stores a conflict snapshot, overwriting any existing one
// for the same operation id (не более одного снимка на операцию).
func (s *Storage) SaveConflict(ctx context.Context, conflict *models.ConflictRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(conflict)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict record: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		if err := bucket.Put([]byte(conflict.OperationID), data); err != nil {
			return fmt.Errorf("failed to save conflict record: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("save conflict transaction failed: %w", err)
	}

	return nil
}

// GetConflict retrieves a conflict snapshot by operation id
func (s *Storage) GetConflict(ctx context.Context, operationID string) (*models.ConflictRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflict *models.ConflictRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return storage.ErrConflictNotFound
		}

		data := bucket.Get([]byte(operationID))
		if data == nil {
			return storage.ErrConflictNotFound
		}

		conflict = &models.ConflictRecord{}
		if err := json.Unmarshal(data, conflict); err != nil {
			return fmt.Errorf("failed to unmarshal conflict record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return conflict, nil
}

// DeleteConflict removes a conflict snapshot; idempotent
func (s *Storage) DeleteConflict(ctx context.Context, operationID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return nil
		}

		return bucket.Delete([]byte(operationID))
	})

	if err != nil {
		return fmt.Errorf("delete conflict transaction failed: %w", err)
	}

	return nil
}

// ListConflicts returns all pending conflict snapshots
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.ConflictRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflicts []*models.ConflictRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var conflict models.ConflictRecord
			if err := json.Unmarshal(v, &conflict); err != nil {
				return fmt.Errorf("failed to unmarshal conflict record: %w", err)
			}
			conflicts = append(conflicts, &conflict)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}

	return conflicts, nil
}

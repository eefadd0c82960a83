package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/roadtripai/tripsync/internal/models"
	"github.com/roadtripai/tripsync/internal/server/storage"
)

// GetDocument retrieves a document by collection and id
func (s *Storage) GetDocument(ctx context.Context, deviceID, collection, id string) (*models.Document, error) {
	query := `
		SELECT device_id, collection, id, origin_id, payload, version, timestamp, updated_at
		FROM documents
		WHERE device_id = ? AND collection = ? AND id = ?
	`

	doc := &models.Document{}
	var updatedAt int64

	err := s.db.QueryRowContext(ctx, query, deviceID, collection, id).Scan(
		&doc.DeviceID,
		&doc.Collection,
		&doc.ID,
		&doc.OriginID,
		&doc.Payload,
		&doc.Version,
		&doc.Timestamp,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	doc.UpdatedAt = time.Unix(updatedAt, 0)

	return doc, nil
}

// InsertDocument creates a new document
func (s *Storage) InsertDocument(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (device_id, collection, id, origin_id, payload, version, timestamp, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		doc.DeviceID,
		doc.Collection,
		doc.ID,
		doc.OriginID,
		[]byte(doc.Payload),
		doc.Version,
		doc.Timestamp,
		doc.UpdatedAt.Unix(),
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrDocumentAlreadyExists
		}
		return fmt.Errorf("failed to insert document: %w", err)
	}

	return nil
}

// UpdateDocument overwrites a document if its stored version equals expectedVersion.
// Проверка версии и запись выполняются одним UPDATE, без гонки между
// чтением и записью.
func (s *Storage) UpdateDocument(ctx context.Context, doc *models.Document, expectedVersion int64) error {
	query := `
		UPDATE documents
		SET origin_id = ?, payload = ?, version = ?, timestamp = ?, updated_at = ?
		WHERE device_id = ? AND collection = ? AND id = ? AND version = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		doc.OriginID,
		[]byte(doc.Payload),
		doc.Version,
		doc.Timestamp,
		doc.UpdatedAt.Unix(),
		doc.DeviceID,
		doc.Collection,
		doc.ID,
		expectedVersion,
	)

	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		// Либо документа нет, либо версия ушла вперед
		if _, err := s.GetDocument(ctx, doc.DeviceID, doc.Collection, doc.ID); err != nil {
			if errors.Is(err, storage.ErrDocumentNotFound) {
				return storage.ErrDocumentNotFound
			}
			return fmt.Errorf("failed to check document: %w", err)
		}
		return storage.ErrVersionMismatch
	}

	return nil
}

// ReplaceDocument unconditionally creates or overwrites a document
func (s *Storage) ReplaceDocument(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (device_id, collection, id, origin_id, payload, version, timestamp, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (device_id, collection, id) DO UPDATE SET
			origin_id = excluded.origin_id,
			payload = excluded.payload,
			version = excluded.version,
			timestamp = excluded.timestamp,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		doc.DeviceID,
		doc.Collection,
		doc.ID,
		doc.OriginID,
		[]byte(doc.Payload),
		doc.Version,
		doc.Timestamp,
		doc.UpdatedAt.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}

	return nil
}

// DeleteDocument removes a document; deleting an absent document is not an error
func (s *Storage) DeleteDocument(ctx context.Context, deviceID, collection, id string) error {
	query := `DELETE FROM documents WHERE device_id = ? AND collection = ? AND id = ?`

	if _, err := s.db.ExecContext(ctx, query, deviceID, collection, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

// ListDocuments returns all documents of a collection owned by a device
func (s *Storage) ListDocuments(ctx context.Context, deviceID, collection string) ([]*models.Document, error) {
	query := `
		SELECT device_id, collection, id, origin_id, payload, version, timestamp, updated_at
		FROM documents
		WHERE device_id = ? AND collection = ?
		ORDER BY updated_at DESC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, deviceID, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		var updatedAt int64

		err := rows.Scan(
			&doc.DeviceID,
			&doc.Collection,
			&doc.ID,
			&doc.OriginID,
			&doc.Payload,
			&doc.Version,
			&doc.Timestamp,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}

		doc.UpdatedAt = time.Unix(updatedAt, 0)
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

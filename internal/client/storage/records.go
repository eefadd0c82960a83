package storage

import (
	"context"

	"github.com/roadtripai/tripsync/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines interface for the Local Store record partition.
// Содержимым записей владеет исключительно Local Store: Sync Driver и
// Conflict Resolver пишут только через этот интерфейс.
type RecordStorage interface {
	// PutRecord stores or overwrites a record
	PutRecord(ctx context.Context, record *models.Record) error

	// GetRecord retrieves a record by collection and id
	// Returns ErrRecordNotFound if record doesn't exist (not an error
	// condition for callers: they may fall back to a remote fetch)
	GetRecord(ctx context.Context, collection, id string) (*models.Record, error)

	// DeleteRecord removes a record; deleting an absent record is not an error
	DeleteRecord(ctx context.Context, collection, id string) error

	// ListRecords returns all records of a collection
	ListRecords(ctx context.Context, collection string) ([]*models.Record, error)
}

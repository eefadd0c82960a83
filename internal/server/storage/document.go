package storage

import (
	"context"

	"github.com/roadtripai/tripsync/internal/models"
)

//go:generate moq -out document_mock.go . DocumentStorage

// DocumentStorage defines interface for synced document persistence.
// Документы изолированы по устройству-владельцу: все операции принимают
// deviceID аутентифицированного устройства.
type DocumentStorage interface {
	// GetDocument retrieves a document by collection and id
	// Returns ErrDocumentNotFound if document doesn't exist
	GetDocument(ctx context.Context, deviceID, collection, id string) (*models.Document, error)

	// InsertDocument creates a new document
	// Returns ErrDocumentAlreadyExists if (collection, id) is already taken
	InsertDocument(ctx context.Context, doc *models.Document) error

	// UpdateDocument overwrites a document if its stored version equals
	// expectedVersion. Returns ErrVersionMismatch when the stored version
	// differs, ErrDocumentNotFound when the document doesn't exist.
	UpdateDocument(ctx context.Context, doc *models.Document, expectedVersion int64) error

	// ReplaceDocument unconditionally creates or overwrites a document.
	// Used for force writes that bypass the version check.
	ReplaceDocument(ctx context.Context, doc *models.Document) error

	// DeleteDocument removes a document; deleting an absent document is
	// not an error (DELETE is idempotent at-least-once delivery)
	DeleteDocument(ctx context.Context, deviceID, collection, id string) error

	// ListDocuments returns all documents of a collection owned by a device
	ListDocuments(ctx context.Context, deviceID, collection string) ([]*models.Document, error)
}

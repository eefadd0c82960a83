package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrRecordNotFound indicates that record was not found locally
	ErrRecordNotFound = errors.New("record not found")

	// ErrMetadataNotFound indicates that sync metadata has not been persisted yet
	ErrMetadataNotFound = errors.New("sync metadata not found")

	// ErrConflictNotFound indicates that no conflict snapshot exists for the operation
	ErrConflictNotFound = errors.New("conflict record not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

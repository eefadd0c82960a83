package storage

import "errors"

// Common storage errors
var (
	// ErrDeviceNotFound indicates that device was not found in storage
	ErrDeviceNotFound = errors.New("device not found")

	// ErrDeviceAlreadyExists indicates that device with this id already exists
	ErrDeviceAlreadyExists = errors.New("device already exists")

	// ErrDocumentNotFound indicates that document was not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDocumentAlreadyExists indicates that document with this id already
	// exists in the collection
	ErrDocumentAlreadyExists = errors.New("document already exists")

	// ErrVersionMismatch indicates that the expected base version does not
	// match the stored document version (optimistic concurrency failure)
	ErrVersionMismatch = errors.New("document version mismatch")
)

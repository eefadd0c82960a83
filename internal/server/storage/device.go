package storage

import (
	"context"
	"time"

	"github.com/roadtripai/tripsync/internal/models"
)

//go:generate moq -out device_mock.go . DeviceStorage

// DeviceStorage defines interface for registered device persistence
type DeviceStorage interface {
	// CreateDevice creates a new device in the storage
	// Returns ErrDeviceAlreadyExists if the id is already taken
	CreateDevice(ctx context.Context, device *models.Device) error

	// GetDevice retrieves device by ID
	// Returns ErrDeviceNotFound if device doesn't exist
	GetDevice(ctx context.Context, deviceID string) (*models.Device, error)

	// UpdateLastLogin updates the last login timestamp
	// Returns ErrDeviceNotFound if device doesn't exist
	UpdateLastLogin(ctx context.Context, deviceID string, lastLogin time.Time) error
}

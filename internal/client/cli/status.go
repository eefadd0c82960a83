package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roadtripai/tripsync/internal/client/storage"
)

// runStatus выводит состояние синхронизации
func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== TripSync Status ===")
	c.io.Println()

	authenticated, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if authenticated {
		c.io.Println("Session:   active")
	} else {
		c.io.Println("Session:   not authenticated")
	}

	deviceID, err := c.identity.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve device id: %w", err)
	}
	c.io.Printf("Device ID: %s\n", deviceID)

	meta, err := c.metadata.LoadMetadata(ctx)
	if err != nil && !errors.Is(err, storage.ErrMetadataNotFound) {
		return fmt.Errorf("failed to load sync metadata: %w", err)
	}
	if meta != nil {
		c.io.Printf("Policy:    %s\n", meta.ConflictPolicy)
		if meta.LastSyncTimestamp > 0 {
			lastSync := time.UnixMilli(meta.LastSyncTimestamp)
			c.io.Printf("Last sync: %s\n", lastSync.Format(time.RFC3339))
		} else {
			c.io.Println("Last sync: never")
		}
		c.io.Printf("Cycles:    %d\n", meta.Version)
	} else {
		c.io.Println("Last sync: never")
	}

	c.io.Println()
	c.io.Printf("Pending operations: %d\n", c.queue.PendingCount())
	c.io.Printf("Conflicts:          %d\n", c.queue.ConflictCount())

	if c.queue.ConflictCount() > 0 {
		c.io.Println()
		c.io.Println("Run 'tripsync conflicts' to inspect unresolved conflicts.")
	}
	return nil
}

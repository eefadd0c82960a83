package cli

import (
	"context"
	"errors"
	"fmt"

	syncdrv "github.com/roadtripai/tripsync/internal/client/sync"
)

// runSync выполняет один drain-цикл
func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Starting synchronization...")

	result, err := c.driver.SyncNow(ctx)
	if err != nil {
		switch {
		case errors.Is(err, syncdrv.ErrOffline):
			return fmt.Errorf("server unreachable, queued operations kept for next sync")
		case errors.Is(err, syncdrv.ErrNotAuthenticated):
			return fmt.Errorf("not authenticated. Please run 'tripsync login' first")
		case errors.Is(err, syncdrv.ErrSyncInProgress):
			return fmt.Errorf("another sync cycle is already running")
		default:
			return fmt.Errorf("synchronization failed: %w", err)
		}
	}

	c.io.Println("Synchronization completed.")
	c.io.Printf("  Completed: %d\n", result.Completed)
	c.io.Printf("  Failed:    %d\n", result.Failed)
	c.io.Printf("  Conflicts: %d\n", result.Conflicts)
	c.io.Printf("  Remaining: %d\n", result.Remaining)

	if result.Failed > 0 {
		c.io.Println()
		c.io.Println("Failed operations stay queued and will be retried on the next sync.")
	}
	return nil
}

// runWatch запускает фоновую синхронизацию до прерывания
func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("Watching for changes. Press Ctrl+C to stop.")

	// Первый цикл сразу, не дожидаясь тика
	c.driver.Notify()

	if err := c.driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

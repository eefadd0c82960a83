package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/roadtripai/tripsync/internal/models"
	"github.com/roadtripai/tripsync/pkg/api"
)

// runConflicts выводит конфликты, ожидающие разрешения
func (c *Cli) runConflicts(ctx context.Context) error {
	c.io.Println("=== Unresolved Conflicts ===")
	c.io.Println()

	conflicts, err := c.resolver.PendingConflicts(ctx)
	if err != nil {
		return err
	}

	if len(conflicts) == 0 {
		c.io.Println("No conflicts. Everything is in sync.")
		return nil
	}

	for i, conflict := range conflicts {
		c.io.Printf("%d. Operation: %s\n", i+1, conflict.OperationID)

		var serverDoc api.Document
		if err := json.Unmarshal(conflict.ServerVersion, &serverDoc); err == nil {
			c.io.Printf("   Document: %s/%s (server version %d)\n",
				serverDoc.Collection, serverDoc.ID, serverDoc.Version)
			c.io.Printf("   Server:   %s\n", string(serverDoc.Payload))
		}

		var clientOp models.SyncOperation
		if err := json.Unmarshal(conflict.ClientVersion, &clientOp); err == nil {
			c.io.Printf("   Local:    %s\n", string(clientOp.Payload))
		}
		c.io.Println()
	}

	c.io.Println("Use 'tripsync resolve <operation-id>' to resolve a conflict.")
	return nil
}

// runResolve завершает manual конфликт разрешенным payload.
// JSON берется из файла (второй аргумент) или запрашивается интерактивно.
func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing operation id. Usage: tripsync resolve <operation-id> [payload-file]")
	}
	operationID := args[0]

	var payload []byte
	if len(args) > 1 {
		content, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read payload file: %w", err)
		}
		payload = content
	} else {
		input, err := c.io.ReadInput("Resolved JSON payload: ")
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}
		payload = []byte(input)
	}

	if !json.Valid(payload) {
		return fmt.Errorf("resolved payload is not valid JSON")
	}

	if err := c.resolver.ResolveManual(ctx, operationID, payload); err != nil {
		return err
	}

	c.io.Println("Conflict resolved. The merged version will be pushed on the next sync.")
	c.io.Println("Run 'tripsync sync' to push it now.")
	return nil
}

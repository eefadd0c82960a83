// Package cli реализует команды клиента tripsync.
package cli

import (
	"fmt"

	"github.com/roadtripai/tripsync/internal/client/auth"
	"github.com/roadtripai/tripsync/internal/client/data"
	"github.com/roadtripai/tripsync/internal/client/iocli"
	"github.com/roadtripai/tripsync/internal/client/queue"
	"github.com/roadtripai/tripsync/internal/client/resolve"
	"github.com/roadtripai/tripsync/internal/client/storage"
	syncdrv "github.com/roadtripai/tripsync/internal/client/sync"
	"github.com/roadtripai/tripsync/internal/identity"
)

// Cli связывает команды с клиентскими сервисами
type Cli struct {
	io          iocli.IO
	authService *auth.Service
	dataService data.Service
	driver      *syncdrv.Driver
	resolver    *resolve.Resolver
	queue       *queue.Queue
	metadata    storage.MetadataStorage
	identity    identity.Provider
}

// New создает CLI
func New(
	io iocli.IO,
	authService *auth.Service,
	dataService data.Service,
	driver *syncdrv.Driver,
	resolver *resolve.Resolver,
	q *queue.Queue,
	metadata storage.MetadataStorage,
	identity identity.Provider,
) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		dataService: dataService,
		driver:      driver,
		resolver:    resolver,
		queue:       q,
		metadata:    metadata,
		identity:    identity,
	}
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println("TripSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tripsync [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH          Path to local database (default: tripsync-client.db)")
	fmt.Println("  --config PATH      Path to YAML config file")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register <name>           Register this device on the server")
	fmt.Println("  login [device-id]         Obtain an access token")
	fmt.Println("  logout                    Drop the local session")
	fmt.Println("  status                    Show sync status and queue depth")
	fmt.Println()
	fmt.Println("  save-story                Save a trip story (interactive)")
	fmt.Println("  get-story <id>            Show a saved story")
	fmt.Println("  list-stories              List saved stories")
	fmt.Println("  delete-story <id>         Delete a story")
	fmt.Println()
	fmt.Println("  save-topic                Save a conversation topic (interactive)")
	fmt.Println("  list-topics               List conversation topics")
	fmt.Println("  delete-topic <id>         Delete a conversation topic")
	fmt.Println()
	fmt.Println("  save-feedback <story-id> <rating> [comment]")
	fmt.Println("                            Rate a story (1-5)")
	fmt.Println()
	fmt.Println("  sync                      Run one sync cycle now")
	fmt.Println("  watch                     Run background sync until interrupted")
	fmt.Println("  conflicts                 List conflicts awaiting manual resolution")
	fmt.Println("  resolve <operation-id>    Resolve a conflict with merged JSON")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tripsync register pixel-8-pro")
	fmt.Println("  tripsync login")
	fmt.Println("  tripsync save-story")
	fmt.Println("  tripsync sync")
	fmt.Println("  tripsync --server https://sync.example.com watch")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/roadtripai/tripsync/internal/client/api"
	"github.com/roadtripai/tripsync/internal/client/auth"
	"github.com/roadtripai/tripsync/internal/client/cli"
	"github.com/roadtripai/tripsync/internal/client/data"
	"github.com/roadtripai/tripsync/internal/client/iocli"
	"github.com/roadtripai/tripsync/internal/client/queue"
	"github.com/roadtripai/tripsync/internal/client/resolve"
	"github.com/roadtripai/tripsync/internal/client/storage/boltdb"
	syncdrv "github.com/roadtripai/tripsync/internal/client/sync"
	"github.com/roadtripai/tripsync/internal/config"
	"github.com/roadtripai/tripsync/internal/identity"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")
	configPath := flag.String("config", "", "Path to YAML config file")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	if err := run(args[0], args[1:], *configPath, *serverURL, *dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, configPath, serverURL, dbPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Флаги перекрывают конфиг
	if serverURL != "" {
		cfg.Client.ServerURL = serverURL
	}
	if dbPath != "" {
		cfg.Client.DBPath = dbPath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, cfg.Client.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.Client.ServerURL, api.Options{
		Timeout:    cfg.Client.RequestTimeout,
		MaxRetries: cfg.Client.MaxRetries,
	})

	q := queue.New(boltStorage, logger)
	if err := q.Load(ctx); err != nil {
		return fmt.Errorf("failed to load sync queue: %w", err)
	}

	provider := identity.NewStoredProvider(boltStorage)
	resolver := resolve.NewResolver(q, boltStorage, boltStorage, logger)
	driver := syncdrv.NewDriver(apiClient, q, boltStorage, boltStorage, boltStorage, resolver, logger, syncdrv.Options{
		Interval: cfg.Client.SyncInterval,
		Policy:   cfg.Client.ConflictPolicy(),
	})

	authService := auth.NewService(apiClient, boltStorage)
	dataService := data.NewService(boltStorage, q, provider, driver.Notify)

	c := cli.New(iocli.NewStdio(), authService, dataService, driver, resolver, q, boltStorage, provider)

	return c.Run(ctx, command, args)
}

func printVersion() {
	fmt.Printf("TripSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roadtripai/tripsync/internal/config"
	"github.com/roadtripai/tripsync/internal/server/handlers"
	"github.com/roadtripai/tripsync/internal/server/jwt"
	"github.com/roadtripai/tripsync/internal/server/middleware"
	"github.com/roadtripai/tripsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	listenAddr := flag.String("addr", "", "Listen address (overrides config)")
	dbPath := flag.String("db", "", "Path to SQLite database (overrides config)")
	configPath := flag.String("config", "", "Path to YAML config file")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*configPath, *listenAddr, *dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, listenAddr, dbPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if listenAddr != "" {
		cfg.Server.ListenAddr = listenAddr
	}
	if dbPath != "" {
		cfg.Server.DBPath = dbPath
	}
	if secret := os.Getenv("TRIPSYNC_JWT_SECRET"); secret != "" {
		cfg.Server.JWTSecret = secret
	}
	if cfg.Server.JWTSecret == "" {
		return errors.New("jwt_secret is required (config file or TRIPSYNC_JWT_SECRET)")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.Server.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	tokens := jwt.NewService(cfg.Server.JWTSecret, cfg.Server.TokenTTL)

	healthHandler := handlers.NewHealthHandler(logger, store, Version)
	deviceHandler := handlers.NewDeviceHandler(logger, store, tokens)
	documentHandler := handlers.NewDocumentHandler(logger, store)

	requireAuth := middleware.AuthMiddleware(logger, tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/devices/register", deviceHandler.Register)
	mux.HandleFunc("POST /api/v1/devices/login", deviceHandler.Login)
	mux.Handle("POST /api/v1/{collection}", requireAuth(http.HandlerFunc(documentHandler.Create)))
	mux.Handle("GET /api/v1/{collection}", requireAuth(http.HandlerFunc(documentHandler.List)))
	mux.Handle("GET /api/v1/{collection}/{id}", requireAuth(http.HandlerFunc(documentHandler.Get)))
	mux.Handle("PUT /api/v1/{collection}/{id}", requireAuth(http.HandlerFunc(documentHandler.Update)))
	mux.Handle("DELETE /api/v1/{collection}/{id}", requireAuth(http.HandlerFunc(documentHandler.Delete)))

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingMiddleware(logger, "/api/v1/health")(
			middleware.RateLimitMiddleware(cfg.Server.RateLimit, cfg.Server.RateWindow, logger)(mux)))

	server := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.Server.ListenAddr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	logger.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}

func printVersion() {
	fmt.Printf("TripSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

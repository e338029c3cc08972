// Package main is the entry point for the Adapticus content API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Amareteklay/adapticus-backend/internal/cache"
	"github.com/Amareteklay/adapticus-backend/internal/config"
	"github.com/Amareteklay/adapticus-backend/internal/database"
	"github.com/Amareteklay/adapticus-backend/internal/handlers"
	"github.com/Amareteklay/adapticus-backend/internal/revalidate"
	"github.com/Amareteklay/adapticus-backend/internal/router"
	"github.com/Amareteklay/adapticus-backend/internal/storage"
	"github.com/Amareteklay/adapticus-backend/internal/store"
)

func main() {
	// A local .env is a development convenience; absence is not an error.
	godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey. The API still serves without it, just uncached.
	var responseCache *cache.ResponseCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey not reachable, serving uncached", "error", err)
	} else {
		defer valkeyClient.Close()
		responseCache = cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)
	}

	// Connect to S3-compatible object storage (optional, uploads disabled
	// without it).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			slog.Info("s3 storage connected",
				"endpoint", cfg.S3Endpoint,
				"bucket", cfg.S3Bucket,
			)
		}
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// Initialize data stores.
	postStore := store.NewPostStore(db)
	pageStore := store.NewPageStore(db)
	authorStore := store.NewAuthorStore(db)
	mediaStore := store.NewMediaStore(db)
	navigationStore := store.NewNavigationStore(db)
	settingStore := store.NewSettingStore(db)
	redirectStore := store.NewRedirectStore(db)
	editorStore := store.NewEditorStore(db)

	// Frontend rebuild notifier; disabled when no endpoint is configured.
	notifier := revalidate.New(cfg.RevalidateURL, cfg.RevalidateSecret)
	if notifier.Enabled() {
		slog.Info("revalidation notifier enabled", "endpoint", cfg.RevalidateURL)
	}

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(postStore, pageStore, navigationStore, settingStore, redirectStore, storageClient, responseCache)
	adminHandlers := handlers.NewAdmin(postStore, pageStore, authorStore, mediaStore, navigationStore, settingStore, redirectStore, storageClient, responseCache, notifier)

	// Set up the Chi router with all middleware and routes.
	r := router.New(publicHandlers, adminHandlers, editorStore)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

// Command api is the entry point for the Arch.krd HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Initialize the JWT token service and object storage.
//  7. Wire repositories, services, and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/archkrd/api/internal/api"
	"github.com/archkrd/api/internal/core/building"
	"github.com/archkrd/api/internal/core/era"
	"github.com/archkrd/api/internal/core/reference"
	"github.com/archkrd/api/internal/core/search"
	"github.com/archkrd/api/internal/media"
	"github.com/archkrd/api/internal/platform/config"
	"github.com/archkrd/api/internal/platform/constants"
	"github.com/archkrd/api/internal/platform/migration"
	pgstore "github.com/archkrd/api/internal/platform/postgres"
	redisstore "github.com/archkrd/api/internal/platform/redis"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/internal/social/comment"
	"github.com/archkrd/api/internal/users/account"
	"github.com/archkrd/api/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.Run(log, cfg.MigrationPath, cfg.DatabaseURL), "run migrations")

	// ── 6. Token Service & Object Storage ─────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	storage, err := media.NewS3Storage(startupCtx, cfg)
	must(log, err, "initialize object storage")

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	eraRepository := era.NewRepository(pool)
	eraService := era.NewService(eraRepository)

	buildingRepository := building.NewRepository(pool)
	buildingService := building.NewService(buildingRepository)

	referenceRepository := reference.NewRepository(pool)
	searchRepository := search.NewRepository(pool)

	commentRepository := comment.NewRepository(pool)
	commentService := comment.NewService(commentRepository)

	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	resetRepository := auth.NewResetTokenRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, resetRepository, tokens)

	accountRepository := account.NewRepository(pool)
	accountService := account.NewService(accountRepository)

	handlers := api.Handlers{
		Building:  building.NewHandler(buildingService, eraRepository),
		Era:       era.NewHandler(eraService),
		Reference: reference.NewHandler(referenceRepository),
		Search:    search.NewHandler(searchRepository),
		Comment:   comment.NewHandler(commentService),
		Auth:      auth.NewHandler(authService, cfg),
		Account:   account.NewHandler(accountService),
		Media:     media.NewHandler(storage),
	}

	// ── 8. HTTP Server & Graceful Shutdown ────────────────────────────────
	// serverCtx outlives startupCtx: background middleware goroutines
	// (rate-limiter cleanup) run until shutdown.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, pool, rdb, tokens, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	if err := server.Shutdown(context.Background()); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

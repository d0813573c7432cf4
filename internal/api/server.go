// Copyright (c) 2026 Arch.krd. All rights reserved.

/*
Package api is the HTTP composition root.

It assembles the middleware chain, mounts every feature router under the
versioned /api/v1 prefix, and manages the http.Server lifecycle including
graceful shutdown.
*/
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/archkrd/api/internal/core/building"
	"github.com/archkrd/api/internal/core/era"
	"github.com/archkrd/api/internal/core/reference"
	"github.com/archkrd/api/internal/core/search"
	"github.com/archkrd/api/internal/media"
	"github.com/archkrd/api/internal/platform/config"
	"github.com/archkrd/api/internal/platform/constants"
	"github.com/archkrd/api/internal/platform/middleware"
	"github.com/archkrd/api/internal/social/comment"
	"github.com/archkrd/api/internal/users/account"
	"github.com/archkrd/api/internal/users/auth"
)

// Handlers bundles every feature handler mounted by the server.
type Handlers struct {
	Building  *building.Handler
	Era       *era.Handler
	Reference *reference.Handler
	Search    *search.Handler
	Comment   *comment.Handler
	Auth      *auth.Handler
	Account   *account.Handler
	Media     *media.Handler
}

// Server wraps the configured http.Server and its probes.
type Server struct {
	config     *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	pool       *pgxpool.Pool
	redis      *redis.Client
}

// NewServer assembles the router and the underlying http.Server.
func NewServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	redisClient *redis.Client,
	verifier middleware.TokenVerifier,
	handlers Handlers,
) *Server {

	server := &Server{
		config: cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
	}

	router := chi.NewRouter()

	// # Middleware Chain
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(chimiddleware.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.RateLimit(ctx))
	router.Use(middleware.PanicRecovery(logger))
	router.Use(middleware.Authenticate(verifier))
	router.Use(middleware.CORS(cfg))
	router.Use(chimiddleware.CleanPath)

	// # Probes
	router.Get("/health", server.health)
	router.Get("/ready", server.ready)

	// # Versioned API
	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/buildings", handlers.Building.Routes())
		api.Mount("/timeline", handlers.Building.TimelineRoutes())
		api.Mount("/search", handlers.Search.Routes())
		api.Mount("/eras", handlers.Era.Routes())
		api.Mount("/regions", handlers.Reference.RoutesFor(reference.KindRegion))
		api.Mount("/building-types", handlers.Reference.RoutesFor(reference.KindBuildingType))
		api.Mount("/materials", handlers.Reference.RoutesFor(reference.KindMaterial))
		api.Mount("/comments", handlers.Comment.Routes())
		api.Mount("/auth", handlers.Auth.Routes())
		api.Mount("/account", handlers.Account.MeRoutes())
		api.Mount("/users", handlers.Account.Routes())
		api.Mount("/media", handlers.Media.Routes())
	})

	server.httpServer = &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadTimeout:       constants.DefaultReadTimeout,
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		WriteTimeout:      constants.DefaultWriteTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
	}

	return server
}

// Start blocks serving requests until the listener fails or Shutdown runs.
func (server *Server) Start() error {

	server.logger.Info("server_started",
		slog.String("addr", server.httpServer.Addr),
		slog.String("environment", server.config.Environment),
	)

	if err := server.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api: server failed: %w", err)
	}

	return nil
}

// Shutdown drains in-flight requests within the shutdown timeout.
func (server *Server) Shutdown(ctx context.Context) error {

	shutdownCtx, cancel := context.WithTimeout(ctx, constants.ShutdownTimeout)
	defer cancel()

	server.logger.Info("server_shutting_down")

	if err := server.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api: graceful shutdown failed: %w", err)
	}

	return nil
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/archkrd/api/internal/platform/constants"
	"github.com/archkrd/api/internal/platform/respond"
)

// probeTimeout bounds one dependency ping during readiness checks.
const probeTimeout = 2 * time.Second

// healthPayload is the body of both probe endpoints.
type healthPayload struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// health handles GET /health: process liveness only, no dependency calls.
func (server *Server) health(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, healthPayload{
		Status:  "ok",
		Service: constants.AppName,
	})
}

// ready handles GET /ready: pings Postgres and Redis, 503 when either fails.
func (server *Server) ready(writer http.ResponseWriter, request *http.Request) {

	ctx, cancel := context.WithTimeout(request.Context(), probeTimeout)
	defer cancel()

	checks := map[string]string{
		"postgres": "ok",
		"redis":    "ok",
	}
	healthy := true

	if err := server.pool.Ping(ctx); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	}

	if err := server.redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	}

	status := http.StatusOK
	state := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}

	respond.JSON(writer, status, healthPayload{
		Status:  state,
		Service: constants.AppName,
		Checks:  checks,
	})
}

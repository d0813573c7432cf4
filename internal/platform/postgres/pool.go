// Copyright (c) 2026 Arch.krd. All rights reserved.

// Package postgres manages the PostgreSQL connection pool lifecycle.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConns          = 25
	minConns          = 5
	maxConnLifetime   = time.Hour
	maxConnIdleTime   = 30 * time.Minute
	healthCheckPeriod = time.Minute
	connectTimeout    = 10 * time.Second
)

/*
NewPool creates a pgx connection pool and verifies connectivity with a ping.

Parameters:
  - ctx: context.Context for the initial connection attempt
  - databaseURL: PostgreSQL connection string (postgres://...)

Returns:
  - *pgxpool.Pool: Ready-to-use connection pool
  - error: Wrapped error if parsing or connecting fails
*/
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {

	// 1. Parse the connection string into a pool configuration
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	// 2. Apply production pool tuning
	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod

	// 3. Establish the pool
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	// 4. Verify the database is actually reachable
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

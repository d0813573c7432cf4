// Copyright (c) 2026 Arch.krd. All rights reserved.

// Package migration runs database schema migrations at application startup.
package migration

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

/*
Run applies all pending "up" migrations from the given path.

Parameters:
  - logger: *slog.Logger for progress events
  - migrationPath: Filesystem path to the .sql migration files
  - databaseURL: PostgreSQL connection string

Returns:
  - error: nil on success or when no change was needed
*/
func Run(logger *slog.Logger, migrationPath, databaseURL string) error {

	// 1. Initialize the migrator with a file source
	migrator, err := migrate.New(
		fmt.Sprintf("file://%s", migrationPath),
		databaseURL,
	)
	if err != nil {
		return fmt.Errorf("initialize migrator: %w", err)
	}

	defer func() {
		sourceErr, dbErr := migrator.Close()
		if sourceErr != nil {
			logger.Warn("migration_source_close_failed", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			logger.Warn("migration_db_close_failed", slog.String("error", dbErr.Error()))
		}
	}()

	// 2. Apply all pending migrations
	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migrations_up_to_date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	logger.Info("migrations_applied")
	return nil
}

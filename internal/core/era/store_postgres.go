// Copyright (c) 2026 Arch.krd. All rights reserved.

package era

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archkrd/api/internal/core/building"
	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/database/schema"
	"github.com/archkrd/api/internal/platform/dberr"
)

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed era store.
func NewRepository(pool *pgxpool.Pool) *Postgres {
	return &Postgres{repository{pool: pool}}
}

// Postgres is the concrete era store. It additionally satisfies
// [building.EraTimelineProvider] for the timeline composition.
type Postgres struct {
	repository
}

// selectColumns is the stable era column list.
func selectColumns() string {
	t := schema.Era
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.NameEn, t.NameKu,
		t.DescriptionEn, t.DescriptionKu,
		t.StartYear, t.EndYear, t.CreatedAt, t.UpdatedAt,
	)
}

func scanEra(row pgx.Row) (*Era, error) {
	e := &Era{}
	err := row.Scan(
		&e.ID, &e.Slug, &e.NameEn, &e.NameKu,
		&e.DescriptionEn, &e.DescriptionKu,
		&e.StartYear, &e.EndYear, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

/*
List returns all eras ordered by start year ascending.

Returns:
  - []*Era: The full era set (never paginated)
  - error: Database execution errors
*/
func (repository *repository) List(ctx context.Context) ([]*Era, error) {

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC, %s ASC",
		selectColumns(), schema.Era.Name, schema.Era.StartYear, schema.Era.NameEn,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list eras: %w", err)
	}
	defer rows.Close()

	var eras []*Era
	for rows.Next() {
		e, err := scanEra(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan era: %w", err)
		}
		eras = append(eras, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: era rows iteration failed: %w", err)
	}

	return eras, nil
}

// FindByID retrieves a single era by primary key.
func (repository *repository) FindByID(ctx context.Context, id string) (*Era, error) {

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		selectColumns(), schema.Era.Name, schema.Era.ID,
	)

	e, err := scanEra(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("era")
		}
		return nil, fmt.Errorf("postgres: failed to find era: %w", err)
	}

	return e, nil
}

// Create persists a new era row.
func (repository *repository) Create(ctx context.Context, e *Era) error {

	t := schema.Era
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		t.Name,
		t.ID, t.Slug, t.NameEn, t.NameKu,
		t.DescriptionEn, t.DescriptionKu, t.StartYear, t.EndYear,
	)

	_, err := repository.pool.Exec(ctx, query,
		e.ID, e.Slug, e.NameEn, e.NameKu,
		e.DescriptionEn, e.DescriptionKu, e.StartYear, e.EndYear,
	)
	if err != nil {
		return dberr.Wrap(err, "era")
	}

	return nil
}

// Update replaces an era's fields.
func (repository *repository) Update(ctx context.Context, e *Era) error {

	t := schema.Era
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $1, %s = $2, %s = $3, %s = $4,
			%s = $5, %s = $6, %s = NOW()
		WHERE %s = $7
	`,
		t.Name,
		t.NameEn, t.NameKu, t.DescriptionEn, t.DescriptionKu,
		t.StartYear, t.EndYear, t.UpdatedAt,
		t.ID,
	)

	result, err := repository.pool.Exec(ctx, query,
		e.NameEn, e.NameKu, e.DescriptionEn, e.DescriptionKu,
		e.StartYear, e.EndYear,
		e.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "era")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("era")
	}

	return nil
}

// Delete removes an era; building FKs degrade to NULL via ON DELETE SET NULL.
func (repository *repository) Delete(ctx context.Context, id string) error {

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Era.Name, schema.Era.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete era: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("era")
	}

	return nil
}

// # Timeline Provider

/*
ListForTimeline returns the era strip consumed by the public timeline,
ordered by start year ascending.

Returns:
  - []building.TimelineEra: Lightweight era projections
  - error: Database execution errors
*/
func (store *Postgres) ListForTimeline(ctx context.Context) ([]building.TimelineEra, error) {

	t := schema.Era
	query := fmt.Sprintf("SELECT %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC",
		t.ID, t.Slug, t.NameEn, t.NameKu, t.StartYear, t.EndYear,
		t.Name, t.StartYear,
	)

	rows, err := store.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list timeline eras: %w", err)
	}
	defer rows.Close()

	eras := []building.TimelineEra{}
	for rows.Next() {
		var e building.TimelineEra
		if err := rows.Scan(&e.ID, &e.Slug, &e.NameEn, &e.NameKu, &e.StartYear, &e.EndYear); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan timeline era: %w", err)
		}
		eras = append(eras, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: timeline era rows iteration failed: %w", err)
	}

	return eras, nil
}

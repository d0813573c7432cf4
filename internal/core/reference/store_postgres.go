// Copyright (c) 2026 Arch.krd. All rights reserved.

package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archkrd/api/internal/platform/database/schema"
)

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed master-data store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// tableFor maps a [Kind] onto its schema descriptor.
func tableFor(kind Kind) (schema.ReferenceTable, bool) {
	switch kind {
	case KindRegion:
		return schema.Region, true
	case KindBuildingType:
		return schema.BuildingType, true
	case KindMaterial:
		return schema.Material, true
	}
	return schema.ReferenceTable{}, false
}

/*
List returns every entry of one master-data kind, ordered by English name.

Parameters:
  - ctx: context.Context
  - kind: Kind (region, building_type, material)

Returns:
  - []*Entry: The full lookup set, never nil
  - error: Unknown kind or database execution errors
*/
func (repository *repository) List(ctx context.Context, kind Kind) ([]*Entry, error) {

	t, ok := tableFor(kind)
	if !ok {
		return nil, fmt.Errorf("reference: unknown kind %q", kind)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, COALESCE(%s, ''), COALESCE(%s, ''), %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		t.ID, t.Slug, t.NameEn, t.NameKu,
		t.DescriptionEn, t.DescriptionKu,
		t.CreatedAt, t.UpdatedAt,
		t.Name,
		t.NameEn,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list %s entries: %w", kind, err)
	}
	defer rows.Close()

	entries := []*Entry{}
	for rows.Next() {
		entry := &Entry{}
		err := rows.Scan(
			&entry.ID, &entry.Slug, &entry.NameEn, &entry.NameKu,
			&entry.DescriptionEn, &entry.DescriptionKu,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan %s entry: %w", kind, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: %s rows iteration failed: %w", kind, err)
	}

	return entries, nil
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

/*
PostgreSQL implementation for the building catalogue's data access.

It utilizes advanced Postgres features to deliver a high-performance discovery experience:
  - ILIKE Search: Case-insensitive substring match across bilingual title and location columns.
  - JSON Aggregation: Retrieves nested relations (images, materials, sources) in a single round-trip.
  - Window Functions: Calculates total result counts without requiring a separate 'COUNT' query.
  - ACID Transactions: Ensures atomicity for material links and primary-image flips.

The repository follows an "Aggregate" pattern where sub-resources are managed
through the main repository instance to maintain domain integrity.
*/
package building

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/database/schema"
	"github.com/archkrd/api/internal/platform/dberr"
)

// # PostgreSQL Repository

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed building store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// buildingColumns is the stable SELECT column list for the aggregate root.
func buildingColumns(alias string) string {
	t := schema.Building
	cols := []string{
		t.ID, t.Slug,
		t.TitleEn, t.TitleKu,
		t.AlternateNamesEn, t.AlternateNamesKu,
		t.LocationEn, t.LocationKu,
		t.OverviewEn, t.OverviewKu,
		t.ArchitecturalDetailsEn, t.ArchitecturalDetailsKu,
		t.HistoricalPeriodsEn, t.HistoricalPeriodsKu,
		t.ArchitectEn, t.ArchitectKu,
		t.Latitude, t.Longitude,
		t.Period, t.Status,
		t.ConstructionYear, t.RenovationYears,
		t.EraID, t.RegionID, t.BuildingTypeID,
		t.CreatedAt, t.UpdatedAt,
	}
	for i, col := range cols {
		cols[i] = alias + "." + col
	}
	return strings.Join(cols, ", ")
}

// imagesSubquery aggregates a building's images into a JSON array,
// primary image first, then oldest first.
func imagesSubquery() string {
	return fmt.Sprintf(`
		COALESCE((
			SELECT json_agg(json_build_object(
				'id', i.%s, 'buildingId', i.%s, 'url', i.%s,
				'captionEn', i.%s, 'captionKu', i.%s, 'isPrimary', i.%s,
				'createdAt', to_char(i.%s AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"')
			) ORDER BY i.%s DESC, i.%s ASC)
			FROM %s i
			WHERE i.%s = b.%s
		), '[]') AS images`,
		schema.Image.ID, schema.Image.BuildingID, schema.Image.URL,
		schema.Image.CaptionEn, schema.Image.CaptionKu, schema.Image.IsPrimary,
		schema.Image.CreatedAt,
		schema.Image.IsPrimary, schema.Image.CreatedAt,
		schema.Image.Name,
		schema.Image.BuildingID, schema.Building.ID,
	)
}

// materialsSubquery aggregates a building's materials into a JSON array.
func materialsSubquery() string {
	return fmt.Sprintf(`
		COALESCE((
			SELECT json_agg(json_build_object(
				'id', m.%s, 'slug', m.%s, 'nameEn', m.%s, 'nameKu', m.%s
			) ORDER BY m.%s ASC)
			FROM %s m
			JOIN %s bm ON m.%s = bm.%s
			WHERE bm.%s = b.%s
		), '[]') AS materials`,
		schema.Material.ID, schema.Material.Slug, schema.Material.NameEn, schema.Material.NameKu,
		schema.Material.NameEn,
		schema.Material.Name,
		schema.BuildingMaterial.Name,
		schema.Material.ID, schema.BuildingMaterial.MaterialID,
		schema.BuildingMaterial.BuildingID, schema.Building.ID,
	)
}

// refSubquery embeds a single lookup row (era/region/type) as a JSON object,
// or JSON null when the FK is unset.
func refSubquery(table schema.ReferenceTable, fkColumn, outName string) string {
	return fmt.Sprintf(`
		(
			SELECT json_build_object('id', r.%s, 'slug', r.%s, 'nameEn', r.%s, 'nameKu', r.%s)
			FROM %s r
			WHERE r.%s = b.%s
		) AS %s`,
		table.ID, table.Slug, table.NameEn, table.NameKu,
		table.Name,
		table.ID, fkColumn,
		outName,
	)
}

// eraRefSubquery embeds the era lookup; core.era has its own descriptor type.
func eraRefSubquery() string {
	return fmt.Sprintf(`
		(
			SELECT json_build_object('id', e.%s, 'slug', e.%s, 'nameEn', e.%s, 'nameKu', e.%s)
			FROM %s e
			WHERE e.%s = b.%s
		) AS era`,
		schema.Era.ID, schema.Era.Slug, schema.Era.NameEn, schema.Era.NameKu,
		schema.Era.Name,
		schema.Era.ID, schema.Building.EraID,
	)
}

// sourcesSubquery aggregates a building's citations into a JSON array.
func sourcesSubquery() string {
	return fmt.Sprintf(`
		COALESCE((
			SELECT json_agg(json_build_object(
				'id', s.%s, 'buildingId', s.%s, 'titleEn', s.%s, 'titleKu', s.%s,
				'url', s.%s, 'description', s.%s,
				'createdAt', to_char(s.%s AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"')
			) ORDER BY s.%s ASC)
			FROM %s s
			WHERE s.%s = b.%s
		), '[]') AS sources`,
		schema.Source.ID, schema.Source.BuildingID, schema.Source.TitleEn, schema.Source.TitleKu,
		schema.Source.URL, schema.Source.Description,
		schema.Source.CreatedAt,
		schema.Source.CreatedAt,
		schema.Source.Name,
		schema.Source.BuildingID, schema.Building.ID,
	)
}

// scanRow scans the stable column list into a Building.
func scanRow(row pgx.Row, b *Building, extras ...any) error {
	targets := []any{
		&b.ID, &b.Slug,
		&b.TitleEn, &b.TitleKu,
		&b.AlternateNamesEn, &b.AlternateNamesKu,
		&b.LocationEn, &b.LocationKu,
		&b.OverviewEn, &b.OverviewKu,
		&b.ArchitecturalDetailsEn, &b.ArchitecturalDetailsKu,
		&b.HistoricalPeriodsEn, &b.HistoricalPeriodsKu,
		&b.ArchitectEn, &b.ArchitectKu,
		&b.Latitude, &b.Longitude,
		&b.Period, &b.Status,
		&b.ConstructionYear, &b.RenovationYears,
		&b.EraID, &b.RegionID, &b.BuildingTypeID,
		&b.CreatedAt, &b.UpdatedAt,
	}
	targets = append(targets, extras...)
	return row.Scan(targets...)
}

// # Repository Implementation

/*
List returns a filtered, paginated slice of buildings and the total count.

Description: This high-performance query utilizes several PostgreSQL advanced
features:
  - Window Function: Uses COUNT(*) OVER() to retrieve total record counts
    without a second query.
  - JSON Aggregation: Sub-queries aggregate images and materials into JSON
    arrays to prevent N+1 overhead.
  - Array Operators: Uses && overlap for material filtering.

Parameters:
  - ctx: context.Context
  - filter: Filter (search, era/region/type/status/material, sorting)
  - limit: int
  - offset: int

Returns:
  - []*Building: Slice of hydrated building rows
  - int: Total count matching filters
  - error: Database execution errors
*/
func (repository *repository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Building, int, error) {

	t := schema.Building

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	// Using Window Function to get total count alongside the page rows
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s,
			COUNT(*) OVER() AS total_count,
			%s,
			%s
		FROM %s b
		WHERE 1=1
	`,
		buildingColumns("b"),
		imagesSubquery(),
		materialsSubquery(),
		t.Name,
	))

	// Search Query Filtering (bilingual substring OR across titles and locations)
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (b.%s ILIKE $%d OR b.%s ILIKE $%d OR b.%s ILIKE $%d OR b.%s ILIKE $%d)",
			t.TitleEn, argID, t.TitleKu, argID, t.LocationEn, argID, t.LocationKu, argID,
		))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	// Era Filtering
	if filter.EraID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", t.EraID, argID))
		args = append(args, filter.EraID)
		argID++
	}

	// Region Filtering
	if filter.RegionID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", t.RegionID, argID))
		args = append(args, filter.RegionID)
		argID++
	}

	// Building Type Filtering
	if filter.TypeID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", t.BuildingTypeID, argID))
		args = append(args, filter.TypeID)
		argID++
	}

	// Status Filtering
	if filter.Status != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", t.Status, argID))
		args = append(args, string(filter.Status))
		argID++
	}

	// Material Filtering (array overlap against the junction table)
	if len(filter.MaterialIDs) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(
			` AND $%d::text[] && (SELECT array_agg(bm.%s::text) FROM %s bm WHERE bm.%s = b.%s)`,
			argID, schema.BuildingMaterial.MaterialID, schema.BuildingMaterial.Name,
			schema.BuildingMaterial.BuildingID, t.ID,
		))
		args = append(args, filter.MaterialIDs)
		argID++
	}

	// Apply Sorting Logic
	orderBy := fmt.Sprintf("b.%s DESC", t.CreatedAt) // default: latest
	switch filter.Sort {
	// Timeline ordering: oldest construction first, unknown years last
	case SortConstructionYear:
		orderBy = fmt.Sprintf("b.%s ASC NULLS LAST, b.%s DESC", t.ConstructionYear, t.CreatedAt)
	// Alphabetical by English title
	case SortTitle:
		orderBy = fmt.Sprintf("b.%s ASC", t.TitleEn)
	// Latest
	case SortLatest:
		orderBy = fmt.Sprintf("b.%s DESC", t.CreatedAt)
	}

	// Apply explicit direction overrides for the single-column sorts
	if dir := strings.ToLower(filter.SortDir); dir == "asc" || dir == "desc" {
		switch filter.Sort {
		case SortTitle:
			orderBy = fmt.Sprintf("b.%s %s", t.TitleEn, strings.ToUpper(dir))
		case SortLatest, "":
			orderBy = fmt.Sprintf("b.%s %s", t.CreatedAt, strings.ToUpper(dir))
		}
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s, b.%s DESC", orderBy, t.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	// Query Execution
	rows, err := repository.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list buildings: %w", err)
	}
	defer rows.Close()

	var buildings []*Building
	var totalCount int

	for rows.Next() {
		b := &Building{}
		var imagesJSON, materialsJSON []byte

		if err := scanRow(rows, b, &totalCount, &imagesJSON, &materialsJSON); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan building: %w", err)
		}

		if err := json.Unmarshal(imagesJSON, &b.Images); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to unmarshal images: %w", err)
		}
		if err := json.Unmarshal(materialsJSON, &b.Materials); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to unmarshal materials: %w", err)
		}

		buildings = append(buildings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: building rows iteration failed: %w", err)
	}

	return buildings, totalCount, nil
}

/*
FindByID retrieves a fully hydrated building by its primary key.

Description: A single round-trip query that embeds era, region, building type,
materials, images, and sources as JSON sub-selects, avoiding the N+1 problem
for the detail page.

Parameters:
  - ctx: context.Context
  - id: string representing the UUID primary key

Returns:
  - *Building: The fully hydrated aggregate, or nil if not found
  - error: apperr.NotFound if absent, or an internal error upon failure
*/
func (repository *repository) FindByID(ctx context.Context, id string) (*Building, error) {
	return repository.findOne(ctx, schema.Building.ID, id)
}

/*
FindBySlug retrieves a fully hydrated building by its URL slug.

Parameters:
  - ctx: context.Context
  - slug: string human-readable URL identifier

Returns:
  - *Building: The fully hydrated aggregate, or nil if not found
  - error: apperr.NotFound if absent, or an internal error upon failure
*/
func (repository *repository) FindBySlug(ctx context.Context, slug string) (*Building, error) {
	return repository.findOne(ctx, schema.Building.Slug, slug)
}

// findOne is the shared single-row hydration query behind FindByID/FindBySlug.
func (repository *repository) findOne(ctx context.Context, column, value string) (*Building, error) {

	query := fmt.Sprintf(`
		SELECT %s,
			%s,
			%s,
			%s,
			%s,
			%s,
			%s
		FROM %s b
		WHERE b.%s = $1
	`,
		buildingColumns("b"),
		eraRefSubquery(),
		refSubquery(schema.Region, schema.Building.RegionID, "region"),
		refSubquery(schema.BuildingType, schema.Building.BuildingTypeID, "buildingtype"),
		materialsSubquery(),
		imagesSubquery(),
		sourcesSubquery(),
		schema.Building.Name,
		column,
	)

	b := &Building{}
	var eraJSON, regionJSON, typeJSON, materialsJSON, imagesJSON, sourcesJSON []byte

	row := repository.pool.QueryRow(ctx, query, value)
	err := scanRow(row, b, &eraJSON, &regionJSON, &typeJSON, &materialsJSON, &imagesJSON, &sourcesJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("building")
		}
		return nil, fmt.Errorf("postgres: failed to find building: %w", err)
	}

	// Relation hydration; single-object sub-selects yield SQL NULL when unset
	if len(eraJSON) > 0 {
		if err := json.Unmarshal(eraJSON, &b.Era); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal era: %w", err)
		}
	}
	if len(regionJSON) > 0 {
		if err := json.Unmarshal(regionJSON, &b.Region); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal region: %w", err)
		}
	}
	if len(typeJSON) > 0 {
		if err := json.Unmarshal(typeJSON, &b.BuildingType); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal building type: %w", err)
		}
	}
	if err := json.Unmarshal(materialsJSON, &b.Materials); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal materials: %w", err)
	}
	if err := json.Unmarshal(imagesJSON, &b.Images); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal images: %w", err)
	}
	if err := json.Unmarshal(sourcesJSON, &b.Sources); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal sources: %w", err)
	}

	return b, nil
}

/*
Create persists a new building row and its material links atomically.

Description: Executes the insertion within a single ACID transaction so a
failed material link never leaves a half-created aggregate behind.

Parameters:
  - ctx: context.Context
  - b: *Building (flat row with MaterialIDs populated)

Returns:
  - error: apperr.Conflict on slug collision, validation error on bad FK references
*/
func (repository *repository) Create(ctx context.Context, b *Building) error {

	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(ctx)

	t := schema.Building
	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s,
			%s, %s, %s
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
	`,
		t.Name,
		t.ID, t.Slug,
		t.TitleEn, t.TitleKu, t.AlternateNamesEn, t.AlternateNamesKu,
		t.LocationEn, t.LocationKu, t.OverviewEn, t.OverviewKu,
		t.ArchitecturalDetailsEn, t.ArchitecturalDetailsKu,
		t.HistoricalPeriodsEn, t.HistoricalPeriodsKu, t.ArchitectEn, t.ArchitectKu,
		t.Latitude, t.Longitude, t.Period, t.Status, t.ConstructionYear, t.RenovationYears,
		t.EraID, t.RegionID, t.BuildingTypeID,
	)

	_, err = transaction.Exec(ctx, query,
		b.ID, b.Slug,
		b.TitleEn, b.TitleKu, b.AlternateNamesEn, b.AlternateNamesKu,
		b.LocationEn, b.LocationKu, b.OverviewEn, b.OverviewKu,
		b.ArchitecturalDetailsEn, b.ArchitecturalDetailsKu,
		b.HistoricalPeriodsEn, b.HistoricalPeriodsKu, b.ArchitectEn, b.ArchitectKu,
		b.Latitude, b.Longitude, b.Period, b.Status, b.ConstructionYear, b.RenovationYears,
		b.EraID, b.RegionID, b.BuildingTypeID,
	)
	if err != nil {
		return dberr.Wrap(err, "building")
	}

	// Material link synchronization
	if len(b.MaterialIDs) > 0 {
		if err := repository.syncMaterials(ctx, transaction, b.ID, b.MaterialIDs); err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}

	return nil
}

/*
Update replaces the building row under an optimistic concurrency check and
re-syncs material links.

Description: The UPDATE carries "AND updatedat = $expected" so a write racing
against a newer edit matches zero rows. A zero-row update is disambiguated
with a follow-up existence probe: missing row yields NotFound, a present row
with a different updatedat yields Conflict.

Parameters:
  - ctx: context.Context
  - b: *Building (full replacement state)
  - expectedUpdatedAt: time.Time (the updatedat the client last saw)

Returns:
  - error: apperr.NotFound, apperr.Conflict, or execution errors
*/
func (repository *repository) Update(ctx context.Context, b *Building, expectedUpdatedAt time.Time) error {

	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: update transaction begin failed: %w", err)
	}
	defer transaction.Rollback(ctx)

	t := schema.Building
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $1, %s = $2, %s = $3, %s = $4,
			%s = $5, %s = $6, %s = $7, %s = $8,
			%s = $9, %s = $10, %s = $11, %s = $12,
			%s = $13, %s = $14,
			%s = $15, %s = $16, %s = $17, %s = $18, %s = $19, %s = $20,
			%s = $21, %s = $22, %s = $23,
			%s = NOW()
		WHERE %s = $24 AND %s = $25
	`,
		t.Name,
		t.TitleEn, t.TitleKu, t.AlternateNamesEn, t.AlternateNamesKu,
		t.LocationEn, t.LocationKu, t.OverviewEn, t.OverviewKu,
		t.ArchitecturalDetailsEn, t.ArchitecturalDetailsKu, t.HistoricalPeriodsEn, t.HistoricalPeriodsKu,
		t.ArchitectEn, t.ArchitectKu,
		t.Latitude, t.Longitude, t.Period, t.Status, t.ConstructionYear, t.RenovationYears,
		t.EraID, t.RegionID, t.BuildingTypeID,
		t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	result, err := transaction.Exec(ctx, query,
		b.TitleEn, b.TitleKu, b.AlternateNamesEn, b.AlternateNamesKu,
		b.LocationEn, b.LocationKu, b.OverviewEn, b.OverviewKu,
		b.ArchitecturalDetailsEn, b.ArchitecturalDetailsKu, b.HistoricalPeriodsEn, b.HistoricalPeriodsKu,
		b.ArchitectEn, b.ArchitectKu,
		b.Latitude, b.Longitude, b.Period, b.Status, b.ConstructionYear, b.RenovationYears,
		b.EraID, b.RegionID, b.BuildingTypeID,
		b.ID, expectedUpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "building")
	}

	// Zero rows means either a missing building or a stale expectedUpdatedAt
	if result.RowsAffected() == 0 {
		var exists bool
		probe := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", t.Name, t.ID)
		if err := transaction.QueryRow(ctx, probe, b.ID).Scan(&exists); err != nil {
			return fmt.Errorf("postgres: stale update probe failed: %w", err)
		}
		if !exists {
			return apperr.NotFound("building")
		}
		return apperr.Conflict("Building was modified by another request; reload and retry")
	}

	// Material link synchronization (nil = leave untouched, empty = clear)
	if b.MaterialIDs != nil {
		if err := repository.syncMaterials(ctx, transaction, b.ID, b.MaterialIDs); err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: update transaction commit failed: %w", err)
	}

	return nil
}

/*
Delete removes a building row permanently.

Description: Images, sources, comments, and material links are removed by the
ON DELETE CASCADE constraints declared in the migrations, so a single DELETE
disposes of the whole aggregate.

Parameters:
  - ctx: context.Context
  - id: string target UUID

Returns:
  - error: apperr.NotFound if absent, otherwise execution errors
*/
func (repository *repository) Delete(ctx context.Context, id string) error {

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Building.Name, schema.Building.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete building: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("building")
	}

	return nil
}

// syncMaterials implements a "Clear and Insert" strategy for the material
// junction table inside the caller's transaction.
func (repository *repository) syncMaterials(ctx context.Context, transaction pgx.Tx, buildingID string, materialIDs []string) error {

	jt := schema.BuildingMaterial

	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", jt.Name, jt.BuildingID)
	if _, err := transaction.Exec(ctx, delQuery, buildingID); err != nil {
		return fmt.Errorf("postgres: failed to clear material links: %w", err)
	}

	if len(materialIDs) == 0 {
		return nil
	}

	insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", jt.Name, jt.BuildingID, jt.MaterialID)
	batch := &pgx.Batch{}
	for _, materialID := range materialIDs {
		batch.Queue(insQuery, buildingID, materialID)
	}

	response := transaction.SendBatch(ctx, batch)
	if err := response.Close(); err != nil {
		return dberr.Wrap(err, "material")
	}

	return nil
}

// # Image Sub-Resources

/*
AddImage attaches an uploaded image URL to an existing building.

Returns:
  - error: validation error if the building FK is broken, otherwise execution errors
*/
func (repository *repository) AddImage(ctx context.Context, image *Image) error {

	t := schema.Image
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		t.Name,
		t.ID, t.BuildingID, t.URL, t.CaptionEn, t.CaptionKu, t.IsPrimary,
		t.CreatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		image.ID, image.BuildingID, image.URL, image.CaptionEn, image.CaptionKu, image.IsPrimary,
	).Scan(&image.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "image")
	}

	return nil
}

// DeleteImage removes a single image row scoped to its building.
func (repository *repository) DeleteImage(ctx context.Context, buildingID, imageID string) error {

	t := schema.Image
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2", t.Name, t.ID, t.BuildingID)

	result, err := repository.pool.Exec(ctx, query, imageID, buildingID)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("image")
	}

	return nil
}

/*
SetPrimaryImage marks one image as primary and clears the flag on every other
image of the same building.

Description: Both updates run inside one transaction so the building never
observably holds two primary images after this call completes.

Returns:
  - error: apperr.NotFound if the image does not belong to the building
*/
func (repository *repository) SetPrimaryImage(ctx context.Context, buildingID, imageID string) error {

	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: set-primary transaction begin failed: %w", err)
	}
	defer transaction.Rollback(ctx)

	t := schema.Image

	// Clear the current primary flags for this building
	clearQuery := fmt.Sprintf("UPDATE %s SET %s = FALSE WHERE %s = $1", t.Name, t.IsPrimary, t.BuildingID)
	if _, err := transaction.Exec(ctx, clearQuery, buildingID); err != nil {
		return fmt.Errorf("postgres: failed to clear primary flags: %w", err)
	}

	// Promote the target image
	setQuery := fmt.Sprintf("UPDATE %s SET %s = TRUE WHERE %s = $1 AND %s = $2", t.Name, t.IsPrimary, t.ID, t.BuildingID)
	result, err := transaction.Exec(ctx, setQuery, imageID, buildingID)
	if err != nil {
		return fmt.Errorf("postgres: failed to set primary image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("image")
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: set-primary transaction commit failed: %w", err)
	}

	return nil
}

// # Source Sub-Resources

// AddSource attaches a citation to an existing building.
func (repository *repository) AddSource(ctx context.Context, source *Source) error {

	t := schema.Source
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		t.Name,
		t.ID, t.BuildingID, t.TitleEn, t.TitleKu, t.URL, t.Description,
		t.CreatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		source.ID, source.BuildingID, source.TitleEn, source.TitleKu, source.URL, source.Description,
	).Scan(&source.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "source")
	}

	return nil
}

// DeleteSource removes a single source row scoped to its building.
func (repository *repository) DeleteSource(ctx context.Context, buildingID, sourceID string) error {

	t := schema.Source
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2", t.Name, t.ID, t.BuildingID)

	result, err := repository.pool.Exec(ctx, query, sourceID, buildingID)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete source: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("source")
	}

	return nil
}

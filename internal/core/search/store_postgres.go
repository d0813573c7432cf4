// Copyright (c) 2026 Arch.krd. All rights reserved.

package search

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archkrd/api/internal/platform/database/schema"
)

// minSimilarity is the word_similarity cutoff below which a row is noise.
const minSimilarity = 0.3

// repository implements the [Repository] interface using pgx and pg_trgm.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed quick-search store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

/*
Search returns building and location suggestions for a query term.

Description: One UNION ALL query serves both suggestion groups. The building
branch matches word_similarity against titleen/titleku; the location branch
deduplicates the bilingual location pairs and matches against both columns.
An exact title is always a match: word_similarity of a string with itself
is 1.0, far above the cutoff. GIN trigram indexes on the four columns keep
this interactive.

Parameters:
  - ctx: context.Context
  - term: string (raw user input, already trimmed)
  - limit: int (overall result cap)

Returns:
  - []Result: Ordered by similarity descending, buildings before locations at
    equal score, never nil
  - error: Database execution errors
*/
func (repository *repository) Search(ctx context.Context, term string, limit int) ([]Result, error) {

	t := schema.Building

	query := fmt.Sprintf(`
		SELECT type, id, slug, titleen, titleku
		FROM (
			SELECT
				'%s' AS type,
				b.%s::text AS id,
				b.%s AS slug,
				b.%s AS titleen,
				b.%s AS titleku,
				GREATEST(word_similarity($1, b.%s), word_similarity($1, b.%s)) AS score
			FROM %s b
			WHERE word_similarity($1, b.%s) >= $2 OR word_similarity($1, b.%s) >= $2

			UNION ALL

			SELECT DISTINCT
				'%s' AS type,
				'' AS id,
				'' AS slug,
				b.%s AS titleen,
				b.%s AS titleku,
				GREATEST(word_similarity($1, b.%s), word_similarity($1, b.%s)) AS score
			FROM %s b
			WHERE word_similarity($1, b.%s) >= $2 OR word_similarity($1, b.%s) >= $2
		) suggestions
		ORDER BY score DESC, type ASC
		LIMIT $3
	`,
		TypeBuilding,
		t.ID, t.Slug, t.TitleEn, t.TitleKu,
		t.TitleEn, t.TitleKu,
		t.Name,
		t.TitleEn, t.TitleKu,
		TypeLocation,
		t.LocationEn, t.LocationKu,
		t.LocationEn, t.LocationKu,
		t.Name,
		t.LocationEn, t.LocationKu,
	)

	rows, err := repository.pool.Query(ctx, query, term, minSimilarity, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: quick search failed: %w", err)
	}
	defer rows.Close()

	results := []Result{}
	seen := map[string]bool{}

	for rows.Next() {
		var r Result
		var titleEn, titleKu string
		if err := rows.Scan(&r.Type, &r.ID, &r.Slug, &titleEn, &titleKu); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan search result: %w", err)
		}
		r.Title = Title{En: titleEn, Ku: titleKu}

		// Location rows repeat per building; keep the first occurrence
		if r.Type == TypeLocation {
			key := titleEn + "\x00" + titleKu
			if seen[key] {
				continue
			}
			seen[key] = true
			r.ID = ""
			r.Slug = ""
		}

		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: search rows iteration failed: %w", err)
	}

	return results, nil
}

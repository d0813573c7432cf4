// Copyright (c) 2026 Arch.krd. All rights reserved.

package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/database/schema"
	"github.com/archkrd/api/internal/platform/dberr"
)

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed comment store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// selectWithAuthor is the shared SELECT joining the account row.
func selectWithAuthor() string {
	c := schema.Comment
	a := schema.Account
	return fmt.Sprintf(`
		SELECT
			c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
			a.%s, a.%s, a.%s
		FROM %s c
		JOIN %s a ON a.%s = c.%s
	`,
		c.ID, c.BuildingID, c.ParentID, c.Content, c.CreatedAt, c.UpdatedAt,
		a.ID, a.DisplayName, a.Email,
		c.Name,
		a.Name, a.ID, c.AuthorID,
	)
}

func scanComment(row pgx.Row) (*Comment, error) {
	c := &Comment{}
	err := row.Scan(
		&c.ID, &c.BuildingID, &c.ParentID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
		&c.Author.ID, &c.Author.Name, &c.Author.Email,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

/*
ListByBuilding returns the full comment thread of a building.

Description: A single query fetches every comment of the building with its
author joined, ordered so that the in-memory threading pass sees parents
before children. Top-level comments sort newest first; within each parent,
replies sort oldest first.

Parameters:
  - ctx: context.Context
  - buildingID: string

Returns:
  - []*Comment: Thread roots with Replies populated, never nil
  - error: Database execution errors
*/
func (repository *repository) ListByBuilding(ctx context.Context, buildingID string) ([]*Comment, error) {

	c := schema.Comment
	query := selectWithAuthor() + fmt.Sprintf(
		" WHERE c.%s = $1 ORDER BY c.%s NULLS FIRST, c.%s ASC",
		c.BuildingID, c.ParentID, c.CreatedAt,
	)

	rows, err := repository.pool.Query(ctx, query, buildingID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list comments: %w", err)
	}
	defer rows.Close()

	var all []*Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan comment: %w", err)
		}
		all = append(all, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: comment rows iteration failed: %w", err)
	}

	// Threading pass: attach replies to their roots, newest roots first
	byID := make(map[string]*Comment, len(all))
	var roots []*Comment

	for _, comment := range all {
		if comment.ParentID == nil {
			byID[comment.ID] = comment
			roots = append(roots, comment)
		}
	}
	for _, comment := range all {
		if comment.ParentID != nil {
			if parent, ok := byID[*comment.ParentID]; ok {
				parent.Replies = append(parent.Replies, comment)
			}
		}
	}

	// Roots arrived oldest-first from the ORDER BY; reverse for newest-first
	for i, j := 0, len(roots)-1; i < j; i, j = i+1, j-1 {
		roots[i], roots[j] = roots[j], roots[i]
	}

	if roots == nil {
		roots = []*Comment{}
	}

	return roots, nil
}

// FindByID retrieves one comment (without replies).
func (repository *repository) FindByID(ctx context.Context, id string) (*Comment, error) {

	query := selectWithAuthor() + fmt.Sprintf(" WHERE c.%s = $1", schema.Comment.ID)

	comment, err := scanComment(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("comment")
		}
		return nil, fmt.Errorf("postgres: failed to find comment: %w", err)
	}

	return comment, nil
}

// Create persists a new comment row and reads back its timestamps.
func (repository *repository) Create(ctx context.Context, comment *Comment) error {

	c := schema.Comment
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		c.Name,
		c.ID, c.BuildingID, c.AuthorID, c.ParentID, c.Content,
		c.CreatedAt, c.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		comment.ID, comment.BuildingID, comment.Author.ID, comment.ParentID, comment.Content,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "comment")
	}

	return nil
}

// Delete removes a comment; reply rows cascade via the self-FK.
func (repository *repository) Delete(ctx context.Context, id string) error {

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Comment.Name, schema.Comment.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("comment")
	}

	return nil
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/database/schema"
	"github.com/archkrd/api/internal/platform/dberr"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/internal/users/auth"
)

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed account-admin store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

/*
List returns a page of accounts ordered by creation time descending.

Parameters:
  - ctx: context.Context
  - limit: int
  - offset: int

Returns:
  - []*auth.User: Page rows with password hashes populated but never serialized
  - int: Total account count via COUNT(*) OVER()
  - error: Database execution errors
*/
func (repository *repository) List(ctx context.Context, limit, offset int) ([]*auth.User, int, error) {

	t := schema.Account
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		t.ID, t.DisplayName, t.Email, t.PasswordHash, t.Role, t.CreatedAt, t.UpdatedAt,
		t.Name,
		t.CreatedAt,
	)

	rows, err := repository.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*auth.User
	var totalCount int

	for rows.Next() {
		user := &auth.User{}
		err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			&user.Role, &user.CreatedAt, &user.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: user rows iteration failed: %w", err)
	}

	return users, totalCount, nil
}

// FindByID retrieves one account by primary key.
func (repository *repository) FindByID(ctx context.Context, id string) (*auth.User, error) {

	t := schema.Account
	query := fmt.Sprintf("SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1",
		t.ID, t.DisplayName, t.Email, t.PasswordHash, t.Role, t.CreatedAt, t.UpdatedAt,
		t.Name, t.ID,
	)

	user := &auth.User{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("postgres: failed to find user: %w", err)
	}

	return user, nil
}

// Update replaces name, email, and role.
func (repository *repository) Update(ctx context.Context, user *auth.User) error {

	t := schema.Account
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = NOW()
		WHERE %s = $4
	`,
		t.Name,
		t.DisplayName, t.Email, t.Role, t.UpdatedAt,
		t.ID,
	)

	result, err := repository.pool.Exec(ctx, query, user.Name, user.Email, user.Role, user.ID)
	if err != nil {
		return dberr.Wrap(err, "user")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("user")
	}

	return nil
}

/*
DeleteGuarded removes an account unless it is the last admin.

Description: The target row is locked (FOR UPDATE) before the surviving-admin
count is taken, so two concurrent deletes serialize and cannot both observe
another remaining admin.

Returns:
  - error: apperr.NotFound when absent; apperr.ValidationError for the last admin
*/
func (repository *repository) DeleteGuarded(ctx context.Context, id string) error {

	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: delete transaction begin failed: %w", err)
	}
	defer transaction.Rollback(ctx)

	t := schema.Account

	// Lock the target row and learn its role
	var role string
	lockQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 FOR UPDATE", t.Role, t.Name, t.ID)
	if err := transaction.QueryRow(ctx, lockQuery, id).Scan(&role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("user")
		}
		return fmt.Errorf("postgres: failed to lock user: %w", err)
	}

	// Deleting an admin requires at least one other admin to survive
	if role == string(sec.RoleAdmin) {
		var otherAdmins int
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1 AND %s <> $2", t.Name, t.Role, t.ID)
		if err := transaction.QueryRow(ctx, countQuery, string(sec.RoleAdmin), id).Scan(&otherAdmins); err != nil {
			return fmt.Errorf("postgres: failed to count admins: %w", err)
		}
		if otherAdmins == 0 {
			return apperr.ValidationError("Cannot delete the last remaining admin account")
		}
	}

	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Name, t.ID)
	if _, err := transaction.Exec(ctx, delQuery, id); err != nil {
		return fmt.Errorf("postgres: failed to delete user: %w", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: delete transaction commit failed: %w", err)
	}

	return nil
}

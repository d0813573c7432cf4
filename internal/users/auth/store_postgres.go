// Copyright (c) 2026 Arch.krd. All rights reserved.

package auth

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

// # Account Store

// userRepository implements [UserRepository] using pgx.
type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a PostgreSQL backed account store.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func userColumns() string {
	t := schema.Account
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		t.ID, t.DisplayName, t.Email, t.PasswordHash, t.Role, t.CreatedAt, t.UpdatedAt,
	)
}

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create persists a new account row.
func (repository *userRepository) Create(ctx context.Context, user *User) error {

	t := schema.Account
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		t.Name,
		t.ID, t.DisplayName, t.Email, t.PasswordHash, t.Role,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "user")
	}

	return nil
}

// FindByEmail retrieves an account by its unique email.
func (repository *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		userColumns(), schema.Account.Name, schema.Account.Email,
	)

	user, err := scanUser(repository.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("postgres: failed to find user by email: %w", err)
	}

	return user, nil
}

// FindByID retrieves an account by primary key.
func (repository *userRepository) FindByID(ctx context.Context, id string) (*User, error) {

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		userColumns(), schema.Account.Name, schema.Account.ID,
	)

	user, err := scanUser(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("postgres: failed to find user by id: %w", err)
	}

	return user, nil
}

// UpdatePassword replaces an account's bcrypt hash.
func (repository *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {

	t := schema.Account
	query := fmt.Sprintf("UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2",
		t.Name, t.PasswordHash, t.UpdatedAt, t.ID,
	)

	result, err := repository.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to update password: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("user")
	}

	return nil
}

// # Session Store

// sessionRepository implements [SessionRepository] using pgx.
type sessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository constructs a PostgreSQL backed session store.
func NewSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepository{pool: pool}
}

// Create persists a new refresh session.
func (repository *sessionRepository) Create(ctx context.Context, session *Session) error {

	t := schema.Session
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		t.Name,
		t.ID, t.UserID, t.TokenHash, t.UserAgent, t.IPAddress, t.ExpiresAt,
		t.CreatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		session.ID, session.UserID, session.TokenHash,
		session.UserAgent, session.IPAddress, session.ExpiresAt,
	).Scan(&session.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "session")
	}

	return nil
}

// FindByTokenHash retrieves a live (unexpired, unrevoked) session.
func (repository *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error) {

	t := schema.Session
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE AND %s > NOW()
	`,
		t.ID, t.UserID, t.TokenHash, t.UserAgent, t.IPAddress, t.ExpiresAt, t.IsRevoked, t.CreatedAt,
		t.Name,
		t.TokenHash, t.IsRevoked, t.ExpiresAt,
	)

	session := &Session{}
	err := repository.pool.QueryRow(ctx, query, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TokenHash,
		&session.UserAgent, &session.IPAddress,
		&session.ExpiresAt, &session.IsRevoked, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("session")
		}
		return nil, fmt.Errorf("postgres: failed to find session: %w", err)
	}

	return session, nil
}

// Rotate revokes the old session and inserts its successor atomically.
func (repository *sessionRepository) Rotate(ctx context.Context, oldSessionID string, next *Session) error {

	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: rotate transaction begin failed: %w", err)
	}
	defer transaction.Rollback(ctx)

	t := schema.Session

	revokeQuery := fmt.Sprintf("UPDATE %s SET %s = TRUE WHERE %s = $1 AND %s = FALSE",
		t.Name, t.IsRevoked, t.ID, t.IsRevoked,
	)
	result, err := transaction.Exec(ctx, revokeQuery, oldSessionID)
	if err != nil {
		return fmt.Errorf("postgres: failed to revoke session: %w", err)
	}

	// An already-revoked session means this token was replayed
	if result.RowsAffected() == 0 {
		return apperr.Unauthorized("Session is no longer valid")
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		t.Name,
		t.ID, t.UserID, t.TokenHash, t.UserAgent, t.IPAddress, t.ExpiresAt,
	)
	_, err = transaction.Exec(ctx, insertQuery,
		next.ID, next.UserID, next.TokenHash,
		next.UserAgent, next.IPAddress, next.ExpiresAt,
	)
	if err != nil {
		return dberr.Wrap(err, "session")
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: rotate transaction commit failed: %w", err)
	}

	return nil
}

// Revoke marks one session as revoked.
func (repository *sessionRepository) Revoke(ctx context.Context, id string) error {

	t := schema.Session
	query := fmt.Sprintf("UPDATE %s SET %s = TRUE WHERE %s = $1", t.Name, t.IsRevoked, t.ID)

	if _, err := repository.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("postgres: failed to revoke session: %w", err)
	}

	return nil
}

// RevokeAllForUser revokes every session of a user.
func (repository *sessionRepository) RevokeAllForUser(ctx context.Context, userID string) error {

	t := schema.Session
	query := fmt.Sprintf("UPDATE %s SET %s = TRUE WHERE %s = $1", t.Name, t.IsRevoked, t.UserID)

	if _, err := repository.pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("postgres: failed to revoke user sessions: %w", err)
	}

	return nil
}

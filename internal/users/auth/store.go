// Copyright (c) 2026 Arch.krd. All rights reserved.

package auth

import (
	"context"
	"time"
)

// UserRepository defines account persistence used by authentication.
type UserRepository interface {

	// Create persists a new account; apperr.Conflict on duplicate email.
	Create(ctx context.Context, user *User) error

	// FindByEmail retrieves an account by email; apperr.NotFound when absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID retrieves an account by primary key; apperr.NotFound when absent.
	FindByID(ctx context.Context, id string) (*User, error)

	// UpdatePassword replaces an account's bcrypt hash.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// SessionRepository defines refresh-session persistence.
type SessionRepository interface {

	// Create persists a new refresh session.
	Create(ctx context.Context, session *Session) error

	/*
		FindByTokenHash retrieves a live session by its token hash.

		Returns:
		  - *Session: The matching row, only if unexpired and unrevoked
		  - error: apperr.NotFound otherwise
	*/
	FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error)

	/*
		Rotate atomically revokes a session and creates its successor; a
		stolen-then-replayed old token therefore never yields a second
		live session.
	*/
	Rotate(ctx context.Context, oldSessionID string, next *Session) error

	// Revoke marks one session as revoked.
	Revoke(ctx context.Context, id string) error

	// RevokeAllForUser revokes every session of a user (password reset).
	RevokeAllForUser(ctx context.Context, userID string) error
}

// ResetTokenRepository defines the volatile password-reset token store.
type ResetTokenRepository interface {

	// Save stores a reset token hash for a user with a TTL.
	Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error

	/*
		Consume retrieves and deletes a reset token in one step, making each
		token single-use.

		Returns:
		  - string: The user ID the token was issued for
		  - error: apperr.NotFound for unknown or expired tokens
	*/
	Consume(ctx context.Context, tokenHash string) (string, error)
}

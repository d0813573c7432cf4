// Copyright (c) 2026 Arch.krd. All rights reserved.

/*
Package auth implements registration, login, and session management.

Authentication Model:

  - Access: Short-lived RS256 JWTs carried as Bearer tokens.
  - Refresh: Opaque rotated tokens stored as SHA-256 hashes in users.session,
    delivered in an HttpOnly cookie scoped to the auth endpoints.
  - Reset: Single-use password-reset tokens held in Redis with a TTL.

Passwords are hashed with bcrypt and never leave this package.
*/
package auth

import "time"

// User is a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session is one refresh-token session of a user. The raw token is never
// stored; only its SHA-256 hash.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenPair is the response payload of login and refresh.
type TokenPair struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // Seconds until access-token expiry
	User        *User  `json:"user"`
}

// Field identifiers for validation messages.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

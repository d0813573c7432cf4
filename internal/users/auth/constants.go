// Copyright (c) 2026 Arch.krd. All rights reserved.

package auth

import "time"

const (
	// AccessTokenTTL is the lifetime of one RS256 access token.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the lifetime of one refresh session.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// ResetTokenTTL is the lifetime of a password-reset token in Redis.
	ResetTokenTTL = 30 * time.Minute

	// TokenLength is the byte length of opaque refresh/reset tokens
	// before hex encoding.
	TokenLength = 32

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8
)

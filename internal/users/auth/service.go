// Copyright (c) 2026 Arch.krd. All rights reserved.

package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/ctxutil"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/internal/platform/validate"
	"github.com/archkrd/api/pkg/uuidv7"
)

// timeNow is a seam for deterministic session-expiry tests.
var timeNow = time.Now

// Service orchestrates the authentication flows.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	resets   ResetTokenRepository
	tokens   *sec.TokenService
}

// NewService constructs the auth service.
func NewService(users UserRepository, sessions SessionRepository, resets ResetTokenRepository, tokens *sec.TokenService) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		resets:   resets,
		tokens:   tokens,
	}
}

// # Inputs

// RegisterInput is the signup payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ClientInfo carries per-request metadata recorded on sessions.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// # Flows

/*
Register creates a new account with the default user role.

Returns:
  - *User: The stored account (password hash stripped by JSON tags)
  - error: apperr.ValidationError, apperr.Conflict on duplicate email
*/
func (service *Service) Register(ctx context.Context, input *RegisterInput) (*User, error) {

	email := strings.ToLower(strings.TrimSpace(input.Email))

	v := &validate.Validator{}
	v.Required(FieldName, input.Name)
	v.MaxLen(FieldName, input.Name, 120)
	v.Required(FieldEmail, email)
	v.Email(FieldEmail, email)
	v.MinLen(FieldPassword, input.Password, MinPasswordLength)
	v.MaxLen(FieldPassword, input.Password, 200)
	if err := v.Err(); err != nil {
		return nil, err
	}

	passwordHash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		ID:           uuidv7.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         string(sec.RoleUser),
	}

	if err := service.users.Create(ctx, user); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_registered",
		slog.String("user_id", user.ID),
	)

	return user, nil
}

/*
Login verifies credentials and opens a new refresh session.

Description: Every failure path (unknown email, wrong password) collapses
into the same generic unauthorized error so responses never reveal whether
an email is registered.

Returns:
  - *TokenPair: Access token plus the public user projection
  - string: The raw refresh token for the HttpOnly cookie
  - error: apperr.Unauthorized on any credential failure
*/
func (service *Service) Login(ctx context.Context, input *LoginInput, client ClientInfo) (*TokenPair, string, error) {

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := service.users.FindByEmail(ctx, email)
	if err != nil {
		var appError *apperr.AppError
		if errors.As(err, &appError) && appError.HTTPStatus == 404 {
			return nil, "", apperr.Unauthorized("Invalid email or password")
		}
		return nil, "", err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, "", apperr.Unauthorized("Invalid email or password")
	}

	pair, refreshToken, err := service.openSession(ctx, user, client)
	if err != nil {
		return nil, "", err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_logged_in",
		slog.String("user_id", user.ID),
	)

	return pair, refreshToken, nil
}

/*
RefreshSession rotates a refresh token and issues a fresh access token.

Description: The presented token is hashed and matched against live
sessions; the matched session is revoked and replaced in one transaction, so
a replayed old token is rejected.

Returns:
  - *TokenPair: New access token
  - string: The raw successor refresh token
  - error: apperr.Unauthorized for unknown, expired, revoked, or replayed tokens
*/
func (service *Service) RefreshSession(ctx context.Context, rawToken string, client ClientInfo) (*TokenPair, string, error) {

	if rawToken == "" {
		return nil, "", apperr.Unauthorized("Missing refresh token")
	}

	session, err := service.sessions.FindByTokenHash(ctx, sec.HashToken(rawToken))
	if err != nil {
		return nil, "", apperr.Unauthorized("Invalid refresh token")
	}

	user, err := service.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, "", apperr.Unauthorized("Invalid refresh token")
	}

	// Rotation: mint the successor before touching the old session
	nextRaw, err := sec.GenerateSecureToken(TokenLength)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	next := &Session{
		ID:        uuidv7.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(nextRaw),
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		ExpiresAt: session.ExpiresAt, // Rotation keeps the original horizon
	}

	if err := service.sessions.Rotate(ctx, session.ID, next); err != nil {
		return nil, "", err
	}

	pair, err := service.tokenPairFor(user)
	if err != nil {
		return nil, "", err
	}

	return pair, nextRaw, nil
}

/*
Logout revokes the session behind a refresh token.

Description: Unknown tokens succeed silently; logout is idempotent.
*/
func (service *Service) Logout(ctx context.Context, rawToken string) error {

	if rawToken == "" {
		return nil
	}

	session, err := service.sessions.FindByTokenHash(ctx, sec.HashToken(rawToken))
	if err != nil {
		return nil
	}

	if err := service.sessions.Revoke(ctx, session.ID); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_logged_out",
		slog.String("user_id", session.UserID),
	)

	return nil
}

/*
RequestPasswordReset issues a single-use reset token for an email.

Description: Unknown emails return success with an empty token so the
endpoint cannot be used to probe registrations. The caller is responsible
for delivering the token out-of-band.

Returns:
  - string: The raw reset token ("" when the email is unknown)
  - error: Infrastructure failures only
*/
func (service *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	v := &validate.Validator{}
	if err := v.Required(FieldEmail, email).Email(FieldEmail, email).Err(); err != nil {
		return "", err
	}

	user, err := service.users.FindByEmail(ctx, email)
	if err != nil {
		var appError *apperr.AppError
		if errors.As(err, &appError) && appError.HTTPStatus == 404 {
			return "", nil
		}
		return "", err
	}

	rawToken, err := sec.GenerateSecureToken(TokenLength)
	if err != nil {
		return "", apperr.Internal(err)
	}

	if err := service.resets.Save(ctx, sec.HashToken(rawToken), user.ID, ResetTokenTTL); err != nil {
		return "", err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "password_reset_requested",
		slog.String("user_id", user.ID),
	)

	return rawToken, nil
}

/*
ResetPassword consumes a reset token and replaces the password.

Description: On success every session of the user is revoked, forcing a
re-login on all devices.
*/
func (service *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) error {

	v := &validate.Validator{}
	v.Required("token", rawToken)
	v.MinLen(FieldPassword, newPassword, MinPasswordLength)
	v.MaxLen(FieldPassword, newPassword, 200)
	if err := v.Err(); err != nil {
		return err
	}

	userID, err := service.resets.Consume(ctx, sec.HashToken(rawToken))
	if err != nil {
		return apperr.Unauthorized("Invalid or expired reset token")
	}

	passwordHash, err := sec.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal(err)
	}

	if err := service.users.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return err
	}

	if err := service.sessions.RevokeAllForUser(ctx, userID); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "password_reset_completed",
		slog.String("user_id", userID),
	)

	return nil
}

// # Internals

// openSession mints a refresh session plus an access token for a user.
func (service *Service) openSession(ctx context.Context, user *User, client ClientInfo) (*TokenPair, string, error) {

	rawToken, err := sec.GenerateSecureToken(TokenLength)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	session := &Session{
		ID:        uuidv7.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(rawToken),
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		ExpiresAt: timeNow().Add(RefreshTokenTTL),
	}

	if err := service.sessions.Create(ctx, session); err != nil {
		return nil, "", err
	}

	pair, err := service.tokenPairFor(user)
	if err != nil {
		return nil, "", err
	}

	return pair, rawToken, nil
}

// tokenPairFor issues an access token for a user.
func (service *Service) tokenPairFor(user *User) (*TokenPair, error) {

	accessToken, err := service.tokens.GenerateAccessToken(user.ID, user.Name, user.Role, AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &TokenPair{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(AccessTokenTTL.Seconds()),
		User:        user,
	}, nil
}

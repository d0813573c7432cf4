// Copyright (c) 2026 Arch.krd. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/internal/users/auth"
)

// # Fakes

type fakeUsers struct {
	byID    map[string]*auth.User
	byEmail map[string]*auth.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*auth.User{}, byEmail: map[string]*auth.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *auth.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return apperr.Conflict("An account with this email already exists")
	}
	stored := *user
	f.byID[user.ID] = &stored
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return u, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*auth.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return u, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := f.byID[id]
	if !ok {
		return apperr.NotFound("User")
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeSessions struct {
	byHash  map[string]*auth.Session
	revoked map[string]bool
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byHash: map[string]*auth.Session{}, revoked: map[string]bool{}}
}

func (f *fakeSessions) Create(_ context.Context, session *auth.Session) error {
	stored := *session
	f.byHash[session.TokenHash] = &stored
	return nil
}

func (f *fakeSessions) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	s, ok := f.byHash[tokenHash]
	if !ok || f.revoked[s.ID] || s.ExpiresAt.Before(time.Now()) {
		return nil, apperr.NotFound("Session")
	}
	return s, nil
}

func (f *fakeSessions) Rotate(_ context.Context, oldSessionID string, next *auth.Session) error {
	if f.revoked[oldSessionID] {
		return apperr.Unauthorized("Session is no longer valid")
	}
	f.revoked[oldSessionID] = true
	stored := *next
	f.byHash[next.TokenHash] = &stored
	return nil
}

func (f *fakeSessions) Revoke(_ context.Context, id string) error {
	f.revoked[id] = true
	return nil
}

func (f *fakeSessions) RevokeAllForUser(_ context.Context, userID string) error {
	for _, s := range f.byHash {
		if s.UserID == userID {
			f.revoked[s.ID] = true
		}
	}
	return nil
}

type fakeResets struct {
	byHash map[string]string
}

func newFakeResets() *fakeResets {
	return &fakeResets{byHash: map[string]string{}}
}

func (f *fakeResets) Save(_ context.Context, tokenHash, userID string, _ time.Duration) error {
	f.byHash[tokenHash] = userID
	return nil
}

func (f *fakeResets) Consume(_ context.Context, tokenHash string) (string, error) {
	userID, ok := f.byHash[tokenHash]
	if !ok {
		return "", apperr.NotFound("Reset token")
	}
	delete(f.byHash, tokenHash)
	return userID, nil
}

// newService wires the fakes. Flows under test here never mint access
// tokens, so the token service stays nil.
func newService(users *fakeUsers, sessions *fakeSessions, resets *fakeResets) *auth.Service {
	return auth.NewService(users, sessions, resets, nil)
}

// # Tests

/*
TestService_Register verifies account creation with the default role and
normalized email.
*/
func TestService_Register(t *testing.T) {
	users := newFakeUsers()
	service := newService(users, newFakeSessions(), newFakeResets())

	user, err := service.Register(context.Background(), &auth.RegisterInput{
		Name:     "Dilan Salih",
		Email:    "  Dilan@Example.COM ",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.Equal(t, "dilan@example.com", user.Email)
	assert.Equal(t, string(sec.RoleUser), user.Role)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)

	// The stored hash verifies against the original password
	assert.True(t, sec.CheckPasswordHash("correct horse battery", user.PasswordHash))
}

/*
TestService_Register_Validation covers the signup payload rules.
*/
func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input auth.RegisterInput
	}{
		{"short_password", auth.RegisterInput{Name: "Dilan", Email: "d@example.com", Password: "short"}},
		{"bad_email", auth.RegisterInput{Name: "Dilan", Email: "nope", Password: "long enough password"}},
		{"empty_name", auth.RegisterInput{Name: "", Email: "d@example.com", Password: "long enough password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(newFakeUsers(), newFakeSessions(), newFakeResets())

			_, err := service.Register(context.Background(), &tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestService_Register_DuplicateEmail verifies the conflict surfaces unchanged.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	service := newService(newFakeUsers(), newFakeSessions(), newFakeResets())

	input := &auth.RegisterInput{Name: "Dilan", Email: "d@example.com", Password: "long enough password"}
	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestService_Logout verifies revocation and that unknown tokens succeed
silently (idempotent logout).
*/
func TestService_Logout(t *testing.T) {
	sessions := newFakeSessions()
	service := newService(newFakeUsers(), sessions, newFakeResets())

	raw := "some-refresh-token"
	session := &auth.Session{
		ID:        "01912e5a-7a3b-7cc0-b093-2f5c88a1d001",
		UserID:    "01912e5a-7a3b-7cc0-b093-2f5c88a1d002",
		TokenHash: sec.HashToken(raw),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.Create(context.Background(), session))

	require.NoError(t, service.Logout(context.Background(), raw))
	assert.True(t, sessions.revoked[session.ID])

	// Unknown and empty tokens are silent no-ops
	require.NoError(t, service.Logout(context.Background(), "never-issued"))
	require.NoError(t, service.Logout(context.Background(), ""))
}

/*
TestService_RequestPasswordReset verifies tokens are issued for known emails
and that unknown emails return success without a token.
*/
func TestService_RequestPasswordReset(t *testing.T) {
	users := newFakeUsers()
	resets := newFakeResets()
	service := newService(users, newFakeSessions(), resets)

	registered, err := service.Register(context.Background(), &auth.RegisterInput{
		Name: "Dilan", Email: "d@example.com", Password: "long enough password",
	})
	require.NoError(t, err)

	token, err := service.RequestPasswordReset(context.Background(), "d@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, registered.ID, resets.byHash[sec.HashToken(token)])

	// Unknown emails must not be distinguishable
	token, err = service.RequestPasswordReset(context.Background(), "stranger@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)
}

/*
TestService_ResetPassword verifies the single-use token flow: password
replaced, sessions revoked, token not reusable.
*/
func TestService_ResetPassword(t *testing.T) {
	users := newFakeUsers()
	sessions := newFakeSessions()
	resets := newFakeResets()
	service := newService(users, sessions, resets)

	registered, err := service.Register(context.Background(), &auth.RegisterInput{
		Name: "Dilan", Email: "d@example.com", Password: "the old password",
	})
	require.NoError(t, err)

	// A live session that must be revoked by the reset
	session := &auth.Session{
		ID:        "01912e5a-7a3b-7cc0-b093-2f5c88a1d003",
		UserID:    registered.ID,
		TokenHash: sec.HashToken("live-refresh-token"),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.Create(context.Background(), session))

	token, err := service.RequestPasswordReset(context.Background(), "d@example.com")
	require.NoError(t, err)

	require.NoError(t, service.ResetPassword(context.Background(), token, "a brand new password"))

	stored, err := users.FindByID(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("a brand new password", stored.PasswordHash))
	assert.False(t, sec.CheckPasswordHash("the old password", stored.PasswordHash))
	assert.True(t, sessions.revoked[session.ID])

	// The token is single-use
	err = service.ResetPassword(context.Background(), token, "yet another password")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/internal/users/account"
	"github.com/archkrd/api/internal/users/auth"
)

const (
	adminID   = "01912e5a-7a3b-7cc0-b093-2f5c88a1a001"
	visitorID = "01912e5a-7a3b-7cc0-b093-2f5c88a1a002"
)

// fakeRepository mirrors the transactional last-admin guard in memory.
type fakeRepository struct {
	rows map[string]*auth.User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[string]*auth.User{
		adminID:   {ID: adminID, Name: "Administrator", Email: "admin@arch.krd", Role: string(sec.RoleAdmin)},
		visitorID: {ID: visitorID, Name: "Dilan", Email: "dilan@example.com", Role: string(sec.RoleUser)},
	}}
}

func (f *fakeRepository) List(_ context.Context, limit, offset int) ([]*auth.User, int, error) {
	out := make([]*auth.User, 0, len(f.rows))
	for _, u := range f.rows {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return u, nil
}

func (f *fakeRepository) Update(_ context.Context, user *auth.User) error {
	existing, ok := f.rows[user.ID]
	if !ok {
		return apperr.NotFound("User")
	}
	for id, other := range f.rows {
		if id != user.ID && other.Email == user.Email {
			return apperr.Conflict("An account with this email already exists")
		}
	}
	existing.Name = user.Name
	existing.Email = user.Email
	existing.Role = user.Role
	return nil
}

func (f *fakeRepository) DeleteGuarded(_ context.Context, id string) error {
	target, ok := f.rows[id]
	if !ok {
		return apperr.NotFound("User")
	}
	if target.Role == string(sec.RoleAdmin) {
		others := 0
		for otherID, other := range f.rows {
			if otherID != id && other.Role == string(sec.RoleAdmin) {
				others++
			}
		}
		if others == 0 {
			return apperr.ValidationError("Cannot delete the last remaining admin account")
		}
	}
	delete(f.rows, id)
	return nil
}

/*
TestService_Update verifies role changes and email normalization.
*/
func TestService_Update(t *testing.T) {
	repo := newFakeRepository()
	service := account.NewService(repo)

	updated, err := service.Update(context.Background(), visitorID, &account.UpdateInput{
		Name:  "Dilan Salih",
		Email: "  Dilan.Salih@Example.COM ",
		Role:  "ADMIN",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dilan Salih", updated.Name)
	assert.Equal(t, "dilan.salih@example.com", updated.Email)
	assert.Equal(t, "ADMIN", updated.Role)
}

/*
TestService_Update_Validation covers bad role, bad email, and empty name.
*/
func TestService_Update_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input account.UpdateInput
	}{
		{"unknown_role", account.UpdateInput{Name: "Dilan", Email: "dilan@example.com", Role: "SUPERUSER"}},
		{"lowercase_role", account.UpdateInput{Name: "Dilan", Email: "dilan@example.com", Role: "admin"}},
		{"bad_email", account.UpdateInput{Name: "Dilan", Email: "not-an-email", Role: "USER"}},
		{"empty_name", account.UpdateInput{Name: " ", Email: "dilan@example.com", Role: "USER"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := account.NewService(repo)

			_, err := service.Update(context.Background(), visitorID, &tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestService_Update_EmailCollision verifies the conflict from duplicate emails.
*/
func TestService_Update_EmailCollision(t *testing.T) {
	repo := newFakeRepository()
	service := account.NewService(repo)

	_, err := service.Update(context.Background(), visitorID, &account.UpdateInput{
		Name:  "Dilan",
		Email: "admin@arch.krd",
		Role:  "USER",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestService_Delete_LastAdminGuard verifies the sole admin cannot be removed,
while a non-admin account can.
*/
func TestService_Delete_LastAdminGuard(t *testing.T) {
	repo := newFakeRepository()
	service := account.NewService(repo)

	err := service.Delete(context.Background(), adminID)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	// The admin row is untouched
	_, err = repo.FindByID(context.Background(), adminID)
	require.NoError(t, err)

	// Ordinary accounts delete normally
	require.NoError(t, service.Delete(context.Background(), visitorID))
	_, err = repo.FindByID(context.Background(), visitorID)
	require.Error(t, err)
}

/*
TestService_Delete_SecondAdmin verifies an admin can be removed once another
admin exists.
*/
func TestService_Delete_SecondAdmin(t *testing.T) {
	repo := newFakeRepository()
	secondID := "01912e5a-7a3b-7cc0-b093-2f5c88a1a003"
	repo.rows[secondID] = &auth.User{
		ID: secondID, Name: "Second Admin", Email: "second@arch.krd", Role: string(sec.RoleAdmin),
	}
	service := account.NewService(repo)

	require.NoError(t, service.Delete(context.Background(), adminID))
}

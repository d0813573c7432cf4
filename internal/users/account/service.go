// Copyright (c) 2026 Arch.krd. All rights reserved.

package account

import (
	"context"
	"log/slog"
	"strings"

	"github.com/archkrd/api/internal/platform/ctxutil"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/internal/platform/validate"
	"github.com/archkrd/api/internal/users/auth"
	"github.com/archkrd/api/pkg/pagination"
)

// Service orchestrates user administration.
type Service struct {
	repository Repository
}

// NewService constructs the account service.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// UpdateInput is the admin payload for editing an account.
type UpdateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// List returns a page of accounts.
func (service *Service) List(ctx context.Context, params pagination.Params) ([]*auth.User, pagination.Meta, error) {

	users, total, err := service.repository.List(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if users == nil {
		users = []*auth.User{}
	}

	return users, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Me returns the caller's own account.
func (service *Service) Me(ctx context.Context, userID string) (*auth.User, error) {
	return service.repository.FindByID(ctx, userID)
}

/*
Update validates and replaces an account's name, email, and role.

Returns:
  - *auth.User: The stored state after the write
  - error: apperr.ValidationError, apperr.NotFound, apperr.Conflict on email collision
*/
func (service *Service) Update(ctx context.Context, id string, input *UpdateInput) (*auth.User, error) {

	email := strings.ToLower(strings.TrimSpace(input.Email))
	role := sec.UserRole(input.Role)

	v := &validate.Validator{}
	v.UUID(FieldID, id)
	v.Required(FieldName, input.Name)
	v.MaxLen(FieldName, input.Name, 120)
	v.Required(FieldEmail, email)
	v.Email(FieldEmail, email)
	v.Custom(FieldRole, !role.IsValid(), "Must be a valid role")
	if err := v.Err(); err != nil {
		return nil, err
	}

	user := &auth.User{
		ID:    id,
		Name:  strings.TrimSpace(input.Name),
		Email: email,
		Role:  string(role),
	}

	if err := service.repository.Update(ctx, user); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_updated",
		slog.String("user_id", id),
		slog.String("role", string(role)),
	)

	return service.repository.FindByID(ctx, id)
}

/*
Delete removes an account; deleting the last remaining admin is rejected
with a validation error and leaves the table unchanged.
*/
func (service *Service) Delete(ctx context.Context, id string) error {

	v := &validate.Validator{}
	if err := v.UUID(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repository.DeleteGuarded(ctx, id); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_deleted",
		slog.String("user_id", id),
	)

	return nil
}

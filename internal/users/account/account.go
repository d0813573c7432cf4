// Copyright (c) 2026 Arch.krd. All rights reserved.

/*
Package account implements user administration and the self-profile endpoint.

Admin operations (list, update, delete) are gated by role middleware at the
routing layer; the service additionally enforces that the last remaining
admin account can never be deleted.
*/
package account

import (
	"context"

	"github.com/archkrd/api/internal/users/auth"
)

// Field identifiers for validation messages.
const (
	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldRole  = "role"
)

// Repository defines the administrative account persistence.
type Repository interface {

	/*
		List returns a page of accounts ordered by creation time descending.

		Returns:
		  - []*auth.User: Page rows
		  - int: Total account count
		  - error: Database execution errors
	*/
	List(ctx context.Context, limit, offset int) ([]*auth.User, int, error)

	// FindByID retrieves one account; apperr.NotFound when absent.
	FindByID(ctx context.Context, id string) (*auth.User, error)

	// Update replaces name, email, and role; apperr.Conflict on email collisions.
	Update(ctx context.Context, user *auth.User) error

	/*
		DeleteGuarded removes an account unless it is the last admin.

		Description: The existence check and the delete run in one
		transaction so two concurrent deletes cannot drop the final admin
		between check and removal.

		Returns:
		  - error: apperr.NotFound when absent; apperr.ValidationError when
		    the target is the only remaining admin (the table is unchanged)
	*/
	DeleteGuarded(ctx context.Context, id string) error
}

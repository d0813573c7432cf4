// Copyright (c) 2026 Arch.krd. All rights reserved.

package era

import "context"

// Repository defines the persistence behavior for eras.
type Repository interface {

	/*
		List returns all eras ordered by start year ascending.

		Returns:
		  - []*Era: Every era row, never paginated (the set is small)
		  - error: Database execution errors
	*/
	List(ctx context.Context) ([]*Era, error)

	// FindByID retrieves a single era; apperr.NotFound when absent.
	FindByID(ctx context.Context, id string) (*Era, error)

	// Create persists a new era; apperr.Conflict on slug collision.
	Create(ctx context.Context, e *Era) error

	// Update replaces an era's fields; apperr.NotFound when absent.
	Update(ctx context.Context, e *Era) error

	// Delete removes an era. Buildings referencing it keep their rows with
	// the FK set to NULL.
	Delete(ctx context.Context, id string) error
}

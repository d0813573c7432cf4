// Copyright (c) 2026 Arch.krd. All rights reserved.

package building

import (
	"context"
	"time"
)

// # Repository Contracts

// Repository defines the persistence behavior for the building aggregate.
// Images, sources, and material links are managed through the same repository
// to keep aggregate integrity in one place.
type Repository interface {

	/*
		List returns a filtered, paginated slice of buildings and the total count.

		Parameters:
		  - ctx: context.Context
		  - filter: Filter (search, era/region/type/status/material, sorting)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Building: Slice of rows with materials and images hydrated
		  - int: Total count matching filters
		  - error: Database execution errors
	*/
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Building, int, error)

	/*
		FindByID retrieves a fully hydrated building by its primary key.

		Returns:
		  - *Building: With era/region/type/materials/images/sources joined
		  - error: apperr.NotFound if absent
	*/
	FindByID(ctx context.Context, id string) (*Building, error)

	/*
		FindBySlug retrieves a fully hydrated building by its URL slug.

		Returns:
		  - *Building: With era/region/type/materials/images/sources joined
		  - error: apperr.NotFound if absent
	*/
	FindBySlug(ctx context.Context, slug string) (*Building, error)

	/*
		Create persists a new building row and its material links atomically.

		Returns:
		  - error: apperr.Conflict on slug collision, validation error on bad FKs
	*/
	Create(ctx context.Context, b *Building) error

	/*
		Update replaces the building row and re-syncs material links, guarded
		by an optimistic concurrency check.

		Parameters:
		  - ctx: context.Context
		  - b: *Building (full replacement state)
		  - expectedUpdatedAt: time.Time (the updatedat the client last saw)

		Returns:
		  - error: apperr.NotFound if the row is absent, apperr.Conflict if the
		    stored updatedat no longer matches expectedUpdatedAt
	*/
	Update(ctx context.Context, b *Building, expectedUpdatedAt time.Time) error

	/*
		Delete removes a building row; images, sources, comments, and material
		links are removed by FK cascade.

		Returns:
		  - error: apperr.NotFound if absent
	*/
	Delete(ctx context.Context, id string) error

	// # Image Sub-Resources

	// AddImage attaches an uploaded image URL to an existing building.
	AddImage(ctx context.Context, image *Image) error

	// DeleteImage removes a single image row scoped to its building.
	DeleteImage(ctx context.Context, buildingID, imageID string) error

	/*
		SetPrimaryImage marks one image as primary and clears the flag on every
		other image of the same building, in a single transaction.

		Returns:
		  - error: apperr.NotFound if the image does not belong to the building
	*/
	SetPrimaryImage(ctx context.Context, buildingID, imageID string) error

	// # Source Sub-Resources

	// AddSource attaches a citation to an existing building.
	AddSource(ctx context.Context, source *Source) error

	// DeleteSource removes a single source row scoped to its building.
	DeleteSource(ctx context.Context, buildingID, sourceID string) error
}

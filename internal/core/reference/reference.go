// Copyright (c) 2026 Arch.krd. All rights reserved.

/*
Package reference serves the catalogue's master data: regions, building types,
and construction materials.

These are small, seeded lookup tables consumed by the public filter bars and
the admin forms. They share one bilingual row shape and one generic store.
*/
package reference

import (
	"context"
	"time"
)

// Kind selects which master-data table a request targets.
type Kind string

const (
	KindRegion       Kind = "region"
	KindBuildingType Kind = "building_type"
	KindMaterial     Kind = "material"
)

// Entry is one bilingual master-data row.
type Entry struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	NameEn        string    `json:"nameEn"`
	NameKu        string    `json:"nameKu"`
	DescriptionEn string    `json:"descriptionEn,omitempty"`
	DescriptionKu string    `json:"descriptionKu,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Repository defines read access to the master-data tables.
type Repository interface {

	/*
		List returns every entry of one master-data kind, ordered by English
		name ascending.

		Returns:
		  - []*Entry: The full lookup set, never nil
		  - error: Database execution errors
	*/
	List(ctx context.Context, kind Kind) ([]*Entry, error)
}

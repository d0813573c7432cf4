// Copyright (c) 2026 Arch.krd. All rights reserved.

/*
Package era manages the historical eras of the catalogue (Ancient, Islamic,
Ottoman, Modern, ...).

Eras drive the public timeline strip and serve as an optional classification
on buildings. Year bounds are advisory: overlapping eras and start > end are
tolerated, and a NULL end year means the era is ongoing.
*/
package era

import "time"

// Era represents one historical period of the region.
type Era struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	NameEn        string    `json:"nameEn"`
	NameKu        string    `json:"nameKu"`
	DescriptionEn string    `json:"descriptionEn"`
	DescriptionKu string    `json:"descriptionKu"`
	StartYear     int       `json:"startYear"` // Negative = BCE
	EndYear       *int      `json:"endYear"`   // nil = ongoing
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Field identifiers for validation messages.
const (
	FieldID        = "id"
	FieldNameEn    = "nameEn"
	FieldNameKu    = "nameKu"
	FieldStartYear = "startYear"
)

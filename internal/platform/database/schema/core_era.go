// Copyright (c) 2026 Arch.krd. All rights reserved.

package schema

// EraTable describes the core.era table.
type EraTable struct {
	Name string

	ID            string
	Slug          string
	NameEn        string
	NameKu        string
	DescriptionEn string
	DescriptionKu string
	StartYear     string
	EndYear       string
	CreatedAt     string
	UpdatedAt     string
}

// Era is the singleton descriptor for core.era.
var Era = EraTable{
	Name: "core.era",

	ID:            "id",
	Slug:          "slug",
	NameEn:        "nameen",
	NameKu:        "nameku",
	DescriptionEn: "descriptionen",
	DescriptionKu: "descriptionku",
	StartYear:     "startyear",
	EndYear:       "endyear",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns every column in declaration order.
func (t EraTable) Columns() []string {
	return []string{
		t.ID, t.Slug,
		t.NameEn, t.NameKu,
		t.DescriptionEn, t.DescriptionKu,
		t.StartYear, t.EndYear,
		t.CreatedAt, t.UpdatedAt,
	}
}

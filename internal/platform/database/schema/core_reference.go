// Copyright (c) 2026 Arch.krd. All rights reserved.

package schema

// ReferenceTable describes the shape shared by the three master-data tables:
// core.region, core.buildingtype and core.material.
type ReferenceTable struct {
	Name string

	ID            string
	Slug          string
	NameEn        string
	NameKu        string
	DescriptionEn string
	DescriptionKu string
	CreatedAt     string
	UpdatedAt     string
}

// Region is the singleton descriptor for core.region.
var Region = ReferenceTable{
	Name:          "core.region",
	ID:            "id",
	Slug:          "slug",
	NameEn:        "nameen",
	NameKu:        "nameku",
	DescriptionEn: "descriptionen",
	DescriptionKu: "descriptionku",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// BuildingType is the singleton descriptor for core.buildingtype.
var BuildingType = ReferenceTable{
	Name:          "core.buildingtype",
	ID:            "id",
	Slug:          "slug",
	NameEn:        "nameen",
	NameKu:        "nameku",
	DescriptionEn: "descriptionen",
	DescriptionKu: "descriptionku",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Material is the singleton descriptor for core.material.
var Material = ReferenceTable{
	Name:          "core.material",
	ID:            "id",
	Slug:          "slug",
	NameEn:        "nameen",
	NameKu:        "nameku",
	DescriptionEn: "descriptionen",
	DescriptionKu: "descriptionku",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns every column in declaration order.
func (t ReferenceTable) Columns() []string {
	return []string{t.ID, t.Slug, t.NameEn, t.NameKu, t.DescriptionEn, t.DescriptionKu, t.CreatedAt, t.UpdatedAt}
}

// BuildingMaterialTable describes the core.buildingmaterial join table.
type BuildingMaterialTable struct {
	Name string

	BuildingID string
	MaterialID string
}

// BuildingMaterial is the singleton descriptor for core.buildingmaterial.
var BuildingMaterial = BuildingMaterialTable{
	Name:       "core.buildingmaterial",
	BuildingID: "buildingid",
	MaterialID: "materialid",
}

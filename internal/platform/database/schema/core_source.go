// Copyright (c) 2026 Arch.krd. All rights reserved.

package schema

// SourceTable describes the core.source citation table.
type SourceTable struct {
	Name string

	ID          string
	BuildingID  string
	TitleEn     string
	TitleKu     string
	URL         string
	Description string
	CreatedAt   string
}

// Source is the singleton descriptor for core.source.
var Source = SourceTable{
	Name: "core.source",

	ID:          "id",
	BuildingID:  "buildingid",
	TitleEn:     "titleen",
	TitleKu:     "titleku",
	URL:         "url",
	Description: "description",
	CreatedAt:   "createdat",
}

// Columns returns every column in declaration order.
func (t SourceTable) Columns() []string {
	return []string{t.ID, t.BuildingID, t.TitleEn, t.TitleKu, t.URL, t.Description, t.CreatedAt}
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package schema

// ImageTable describes the core.image table.
type ImageTable struct {
	Name string

	ID         string
	BuildingID string
	URL        string
	CaptionEn  string
	CaptionKu  string
	IsPrimary  string
	CreatedAt  string
}

// Image is the singleton descriptor for core.image.
var Image = ImageTable{
	Name: "core.image",

	ID:         "id",
	BuildingID: "buildingid",
	URL:        "url",
	CaptionEn:  "captionen",
	CaptionKu:  "captionku",
	IsPrimary:  "isprimary",
	CreatedAt:  "createdat",
}

// Columns returns every column in declaration order.
func (t ImageTable) Columns() []string {
	return []string{t.ID, t.BuildingID, t.URL, t.CaptionEn, t.CaptionKu, t.IsPrimary, t.CreatedAt}
}

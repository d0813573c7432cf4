// Copyright (c) 2026 Arch.krd. All rights reserved.

/*
Package building defines the core domain aggregate of the Arch.krd catalogue.

It manages the lifecycle of historical buildings (mosques, citadels, churches,
bridges, houses) including bilingual metadata, imagery, and citations.

Core Responsibility:

  - Catalogue: Defines preservation statuses (Preserved, Endangered, Restored, Ruins).
  - Bilingual content: Every textual field carries an English and a Kurdish variant.
  - Discovery: Filterable listing, map coordinates, and an era-grouped timeline.

This package acts as the source of truth for all building-related data models.
*/
package building

import "time"

// # Domain Enums

// Status represents the preservation status of a building.
type Status string

const (
	// StatusPreserved indicates the building is intact and maintained.
	StatusPreserved Status = "PRESERVED"

	// StatusEndangered indicates the building is at risk of loss or decay.
	StatusEndangered Status = "ENDANGERED"

	// StatusRestored indicates the building has undergone restoration work.
	StatusRestored Status = "RESTORED"

	// StatusRuins indicates only remnants of the structure survive.
	StatusRuins Status = "RUINS"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case
		StatusPreserved,
		StatusEndangered,
		StatusRestored,
		StatusRuins:
		return true
	}
	return false
}

// StatusValues lists every valid status, used for validation messages.
func StatusValues() []string {
	return []string{
		string(StatusPreserved),
		string(StatusEndangered),
		string(StatusRestored),
		string(StatusRuins),
	}
}

// # Core Entities

// Building is the central aggregate of the Arch.krd domain, stored as a flat
// bilingual row. The nested API representation is produced by [ToView].
type Building struct {
	ID   string `json:"id"`
	Slug string `json:"slug"` // URL-safe identifier derived from TitleEn

	TitleEn                string   `json:"titleEn"`
	TitleKu                string   `json:"titleKu"`
	AlternateNamesEn       []string `json:"alternateNamesEn"`
	AlternateNamesKu       []string `json:"alternateNamesKu"`
	LocationEn             string   `json:"locationEn"`
	LocationKu             string   `json:"locationKu"`
	OverviewEn             string   `json:"overviewEn"`
	OverviewKu             string   `json:"overviewKu"`
	ArchitecturalDetailsEn []string `json:"architecturalDetailsEn"`
	ArchitecturalDetailsKu []string `json:"architecturalDetailsKu"`

	// HistoricalPeriodsEn/Ku hold a JSON-encoded array of [HistoricalPeriod].
	// Legacy rows may contain malformed text; decoding degrades to an empty list.
	HistoricalPeriodsEn string `json:"historicalPeriodsEn"`
	HistoricalPeriodsKu string `json:"historicalPeriodsKu"`

	ArchitectEn *string `json:"architectEn,omitempty"`
	ArchitectKu *string `json:"architectKu,omitempty"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Period           string  `json:"period"`
	Status           Status  `json:"status"`
	ConstructionYear *int    `json:"constructionYear,omitempty"` // Negative = BCE
	RenovationYears  []int   `json:"renovationYears,omitempty"`
	EraID            *string `json:"eraId,omitempty"`
	RegionID         *string `json:"regionId,omitempty"`
	BuildingTypeID   *string `json:"buildingTypeId,omitempty"`

	// # Input only
	MaterialIDs []string `json:"materialIds,omitempty"`

	// # Hydrated relations
	Era          *Ref     `json:"era,omitempty"`
	Region       *Ref     `json:"region,omitempty"`
	BuildingType *Ref     `json:"buildingType,omitempty"`
	Materials    []Ref    `json:"materials,omitempty"`
	Images       []Image  `json:"images,omitempty"`
	Sources      []Source `json:"sources,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HistoricalPeriod is one entry of a building's per-language period history.
type HistoricalPeriod struct {
	Era     string `json:"era"`
	Details string `json:"details"`
}

// Ref is a hydrated lookup row (era, region, building type, material)
// attached to a [Building].
type Ref struct {
	ID     string `json:"id"`
	Slug   string `json:"slug,omitempty"`
	NameEn string `json:"nameEn"`
	NameKu string `json:"nameKu"`
}

// Image represents a photograph associated with a building.
type Image struct {
	ID         string    `json:"id"`
	BuildingID string    `json:"buildingId"`
	URL        string    `json:"url"`
	CaptionEn  string    `json:"captionEn"`
	CaptionKu  string    `json:"captionKu"`
	IsPrimary  bool      `json:"isPrimary"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Source represents a bibliographic citation for a building's history.
type Source struct {
	ID          string    `json:"id"`
	BuildingID  string    `json:"buildingId"`
	TitleEn     string    `json:"titleEn"`
	TitleKu     string    `json:"titleKu"`
	URL         string    `json:"url,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// # Search & Filtering

// Filter holds the parameters for a filtered building list query.
//
// Every list call site (catalogue, map, timeline, admin table) consumes this
// single contract; there is no secondary filter path.
type Filter struct {
	Query       string   `json:"q,omitempty"` // Case-insensitive substring over titles and locations
	EraID       string   `json:"era,omitempty"`
	RegionID    string   `json:"region,omitempty"`
	TypeID      string   `json:"type,omitempty"`
	Status      Status   `json:"status,omitempty"`
	MaterialIDs []string `json:"material,omitempty"`
	Sort        string   `json:"sort,omitempty"`     // latest, construction_year, title
	SortDir     string   `json:"sort_dir,omitempty"` // "asc" or "desc"
}

// Sort keys accepted by [Filter.Sort].
const (
	SortLatest           = "latest"
	SortConstructionYear = "construction_year"
	SortTitle            = "title"
)

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID               = "id"
	FieldSlug             = "slug"
	FieldTitleEn          = "translations.en.title"
	FieldTitleKu          = "translations.ku.title"
	FieldLocationEn       = "translations.en.location"
	FieldLocationKu       = "translations.ku.location"
	FieldOverviewEn       = "translations.en.overview"
	FieldOverviewKu       = "translations.ku.overview"
	FieldLatitude         = "coordinates.lat"
	FieldLongitude        = "coordinates.lng"
	FieldStatus           = "status"
	FieldPeriod           = "period"
	FieldConstructionYear = "constructionYear"
	FieldUpdatedAt        = "updatedAt"
	FieldImageURL         = "url"
	FieldSourceTitleEn    = "titleEn"
	FieldParentID         = "parentId"
)

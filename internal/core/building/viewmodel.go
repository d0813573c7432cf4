// Copyright (c) 2026 Arch.krd. All rights reserved.

package building

import (
	"encoding/json"
	"time"

	"github.com/archkrd/api/pkg/pointer"
)

// # Bilingual View Model

// View is the nested API representation of a [Building]. The flat storage row
// keeps each language in its own column set; the view groups them under
// translations.en / translations.ku so clients never branch on column names.
type View struct {
	ID           string       `json:"id"`
	Slug         string       `json:"slug"`
	Translations Translations `json:"translations"`
	Coordinates  Coordinates  `json:"coordinates"`
	Period       string       `json:"period"`
	Status       Status       `json:"status"`

	ConstructionYear *int  `json:"constructionYear"` // Negative = BCE, null = unknown
	RenovationYears  []int `json:"renovationYears"`

	Era          *Ref `json:"era"`
	Region       *Ref `json:"region"`
	BuildingType *Ref `json:"buildingType"`

	Materials []Ref    `json:"materials"`
	Images    []Image  `json:"images"`
	Sources   []Source `json:"sources"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Translations pairs the two language variants of a building's content.
type Translations struct {
	En Translation `json:"en"`
	Ku Translation `json:"ku"`
}

// Translation is the per-language content block of a building view.
//
// Every field is always present and type-correct: null storage columns map to
// the empty string or an empty slice, never to JSON null.
type Translation struct {
	Title                string             `json:"title"`
	AlternateNames       []string           `json:"alternateNames"`
	Location             string             `json:"location"`
	Overview             string             `json:"overview"`
	ArchitecturalDetails []string           `json:"architecturalDetails"`
	HistoricalPeriods    []HistoricalPeriod `json:"historicalPeriods"`
	ArchitectName        string             `json:"architectName"`
}

// Coordinates is the geographic position block of a building view.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

/*
ToView maps a flat storage row into the nested bilingual view.

Description: This is a pure transformation with no I/O. Null or missing
columns degrade to their zero equivalents (empty string, empty slice) so the
resulting JSON is always fully shaped for both languages. Malformed
historicalPeriods JSON degrades to an empty list; the decode error is
discarded here because a read must never fail over legacy content
(use [DecodePeriods] directly when the error matters).

Parameters:
  - b: *Building (flat row, relations optionally hydrated)

Returns:
  - *View: The nested bilingual representation, never nil for non-nil input
*/
func ToView(b *Building) *View {
	if b == nil {
		return nil
	}

	periodsEn, _ := DecodePeriods(b.HistoricalPeriodsEn)
	periodsKu, _ := DecodePeriods(b.HistoricalPeriodsKu)

	return &View{
		ID:   b.ID,
		Slug: b.Slug,
		Translations: Translations{
			En: Translation{
				Title:                b.TitleEn,
				AlternateNames:       emptyIfNil(b.AlternateNamesEn),
				Location:             b.LocationEn,
				Overview:             b.OverviewEn,
				ArchitecturalDetails: emptyIfNil(b.ArchitecturalDetailsEn),
				HistoricalPeriods:    periodsEn,
				ArchitectName:        pointer.Deref(b.ArchitectEn),
			},
			Ku: Translation{
				Title:                b.TitleKu,
				AlternateNames:       emptyIfNil(b.AlternateNamesKu),
				Location:             b.LocationKu,
				Overview:             b.OverviewKu,
				ArchitecturalDetails: emptyIfNil(b.ArchitecturalDetailsKu),
				HistoricalPeriods:    periodsKu,
				ArchitectName:        pointer.Deref(b.ArchitectKu),
			},
		},
		Coordinates: Coordinates{
			Lat: b.Latitude,
			Lng: b.Longitude,
		},
		Period:           b.Period,
		Status:           b.Status,
		ConstructionYear: b.ConstructionYear,
		RenovationYears:  emptyIfNilInt(b.RenovationYears),
		Era:              b.Era,
		Region:           b.Region,
		BuildingType:     b.BuildingType,
		Materials:        emptyIfNilRef(b.Materials),
		Images:           emptyIfNilImage(b.Images),
		Sources:          emptyIfNilSource(b.Sources),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// ToViews maps a slice of rows; the result is never nil.
func ToViews(buildings []*Building) []*View {
	views := make([]*View, 0, len(buildings))
	for _, b := range buildings {
		views = append(views, ToView(b))
	}
	return views
}

/*
Flatten is the inverse of [ToView]: it maps the nested bilingual payload back
into a flat storage row, re-serializing each historicalPeriods list to its
JSON text column.

Description: For a row produced from well-formed columns, ToView followed by
Flatten reproduces every flat field, including the historicalPeriods JSON
(modulo re-encoding of equivalent JSON). Empty architect names map to nil
pointers so the columns stay NULL rather than empty strings.

Parameters:
  - v: *View (nested payload, typically decoded from a create/update request)

Returns:
  - *Building: The flat storage row, never nil for non-nil input
  - error: JSON encoding failure of a historicalPeriods list (practically unreachable)
*/
func Flatten(v *View) (*Building, error) {
	if v == nil {
		return nil, nil
	}

	periodsEn, err := EncodePeriods(v.Translations.En.HistoricalPeriods)
	if err != nil {
		return nil, err
	}

	periodsKu, err := EncodePeriods(v.Translations.Ku.HistoricalPeriods)
	if err != nil {
		return nil, err
	}

	b := &Building{
		ID:                     v.ID,
		Slug:                   v.Slug,
		TitleEn:                v.Translations.En.Title,
		TitleKu:                v.Translations.Ku.Title,
		AlternateNamesEn:       emptyIfNil(v.Translations.En.AlternateNames),
		AlternateNamesKu:       emptyIfNil(v.Translations.Ku.AlternateNames),
		LocationEn:             v.Translations.En.Location,
		LocationKu:             v.Translations.Ku.Location,
		OverviewEn:             v.Translations.En.Overview,
		OverviewKu:             v.Translations.Ku.Overview,
		ArchitecturalDetailsEn: emptyIfNil(v.Translations.En.ArchitecturalDetails),
		ArchitecturalDetailsKu: emptyIfNil(v.Translations.Ku.ArchitecturalDetails),
		HistoricalPeriodsEn:    periodsEn,
		HistoricalPeriodsKu:    periodsKu,
		Latitude:               v.Coordinates.Lat,
		Longitude:              v.Coordinates.Lng,
		Period:                 v.Period,
		Status:                 v.Status,
		ConstructionYear:       v.ConstructionYear,
		RenovationYears:        v.RenovationYears,
		CreatedAt:              v.CreatedAt,
		UpdatedAt:              v.UpdatedAt,
	}

	// Empty architect names persist as NULL
	if name := v.Translations.En.ArchitectName; name != "" {
		b.ArchitectEn = pointer.To(name)
	}
	if name := v.Translations.Ku.ArchitectName; name != "" {
		b.ArchitectKu = pointer.To(name)
	}

	// Relation IDs carry over from the hydrated refs when present
	if v.Era != nil {
		b.EraID = pointer.To(v.Era.ID)
	}
	if v.Region != nil {
		b.RegionID = pointer.To(v.Region.ID)
	}
	if v.BuildingType != nil {
		b.BuildingTypeID = pointer.To(v.BuildingType.ID)
	}
	for _, material := range v.Materials {
		b.MaterialIDs = append(b.MaterialIDs, material.ID)
	}

	return b, nil
}

// # Historical Period Codec

/*
DecodePeriods parses a historicalPeriods JSON text column.

Description: The column holds a JSON-encoded array of {era, details} objects.
Legacy rows may carry malformed text; in that case the decoded list degrades
to empty and the parse error is returned so the caller can log the defect.
The returned slice is never nil.

Parameters:
  - raw: string (JSON text column content; "" and "null" are valid empties)

Returns:
  - []HistoricalPeriod: Parsed entries, or an empty slice on any failure
  - error: The JSON parse error when raw was malformed, nil otherwise
*/
func DecodePeriods(raw string) ([]HistoricalPeriod, error) {
	if raw == "" || raw == "null" {
		return []HistoricalPeriod{}, nil
	}

	var periods []HistoricalPeriod
	if err := json.Unmarshal([]byte(raw), &periods); err != nil {
		return []HistoricalPeriod{}, err
	}

	if periods == nil {
		return []HistoricalPeriod{}, nil
	}

	return periods, nil
}

// EncodePeriods serializes a period list back to its JSON text column form.
// A nil or empty list encodes as "[]".
func EncodePeriods(periods []HistoricalPeriod) (string, error) {
	if len(periods) == 0 {
		return "[]", nil
	}

	encoded, err := json.Marshal(periods)
	if err != nil {
		return "[]", err
	}

	return string(encoded), nil
}

// # Null Defaults

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyIfNilInt(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

func emptyIfNilRef(s []Ref) []Ref {
	if s == nil {
		return []Ref{}
	}
	return s
}

func emptyIfNilImage(s []Image) []Image {
	if s == nil {
		return []Image{}
	}
	return s
}

func emptyIfNilSource(s []Source) []Source {
	if s == nil {
		return []Source{}
	}
	return s
}

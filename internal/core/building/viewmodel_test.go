// Copyright (c) 2026 Arch.krd. All rights reserved.

package building_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archkrd/api/internal/core/building"
	"github.com/archkrd/api/pkg/pointer"
)

/*
TestToView_NullDefaults verifies that null storage columns degrade to typed
empties, never JSON null, in both language blocks.
*/
func TestToView_NullDefaults(t *testing.T) {
	b := &building.Building{
		ID:      "01912e5a-7a3b-7cc0-b093-2f5c88a1e001",
		Slug:    "erbil-citadel",
		TitleEn: "Erbil Citadel",
		TitleKu: "قەڵای هەولێر",
		Status:  building.StatusPreserved,
		// Everything slice/pointer-valued left nil on purpose
	}

	v := building.ToView(b)
	require.NotNil(t, v)

	assert.Equal(t, "Erbil Citadel", v.Translations.En.Title)
	assert.Equal(t, "قەڵای هەولێر", v.Translations.Ku.Title)

	// Slices are present and empty, not nil
	assert.NotNil(t, v.Translations.En.AlternateNames)
	assert.Empty(t, v.Translations.En.AlternateNames)
	assert.NotNil(t, v.Translations.Ku.HistoricalPeriods)
	assert.Empty(t, v.Translations.Ku.HistoricalPeriods)
	assert.NotNil(t, v.Materials)
	assert.NotNil(t, v.Images)
	assert.NotNil(t, v.Sources)
	assert.NotNil(t, v.RenovationYears)

	// Null architect columns surface as empty strings
	assert.Equal(t, "", v.Translations.En.ArchitectName)

	// Absent relations stay nil (JSON null is correct for objects)
	assert.Nil(t, v.Era)
	assert.Nil(t, v.Region)
	assert.Nil(t, v.BuildingType)
}

/*
TestToView_MalformedPeriods verifies reads never fail over legacy malformed
historicalPeriods content.
*/
func TestToView_MalformedPeriods(t *testing.T) {
	b := &building.Building{
		ID:                  "01912e5a-7a3b-7cc0-b093-2f5c88a1e002",
		HistoricalPeriodsEn: "{not json",
		HistoricalPeriodsKu: "also not json]",
	}

	v := building.ToView(b)
	require.NotNil(t, v)

	assert.Empty(t, v.Translations.En.HistoricalPeriods)
	assert.Empty(t, v.Translations.Ku.HistoricalPeriods)
}

/*
TestDecodePeriods covers the codec's empty, valid, and malformed inputs.
*/
func TestDecodePeriods(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantLen   int
		wantError bool
	}{
		{"empty_string", "", 0, false},
		{"literal_null", "null", 0, false},
		{"empty_array", "[]", 0, false},
		{"valid", `[{"era":"Ottoman","details":"Garrison seat"}]`, 1, false},
		{"malformed", "{broken", 0, true},
		{"wrong_shape", `{"era":"Ottoman"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods, err := building.DecodePeriods(tt.raw)

			// The slice is never nil, even on failure
			require.NotNil(t, periods)
			assert.Len(t, periods, tt.wantLen)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestEncodePeriods verifies nil and empty lists encode as the canonical "[]".
*/
func TestEncodePeriods(t *testing.T) {
	encoded, err := building.EncodePeriods(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)

	encoded, err = building.EncodePeriods([]building.HistoricalPeriod{
		{Era: "Atabeg", Details: "Minaret erected under Muzaffar al-Din"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"era":"Atabeg","details":"Minaret erected under Muzaffar al-Din"}]`, encoded)
}

/*
TestToView_Flatten_RoundTrip verifies that flattening the view of a well-formed
row reproduces every flat field.
*/
func TestToView_Flatten_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	year := 1190

	original := &building.Building{
		ID:                     "01912e5a-7a3b-7cc0-b093-2f5c88a1e003",
		Slug:                   "mudhafaria-minaret",
		TitleEn:                "Mudhafaria Minaret",
		TitleKu:                "منارەی موزەفەریە",
		AlternateNamesEn:       []string{"Choly Minaret"},
		AlternateNamesKu:       []string{"منارەی چۆلی"},
		LocationEn:             "Erbil",
		LocationKu:             "هەولێر",
		OverviewEn:             "A 36-metre minaret from the Atabeg period.",
		OverviewKu:             "منارەیەکی ٣٦ مەتری لە سەردەمی ئەتابەگ.",
		ArchitecturalDetailsEn: []string{"Octagonal base", "Fired brick shaft"},
		ArchitecturalDetailsKu: []string{"بنکەی هەشت گۆشە"},
		HistoricalPeriodsEn:    `[{"era":"Atabeg","details":"Built under Muzaffar al-Din Gökböri"}]`,
		HistoricalPeriodsKu:    `[{"era":"ئەتابەگ","details":"لەژێر موزەفەرەدین دروستکرا"}]`,
		ArchitectEn:            pointer.To("Unknown master builder"),
		Latitude:               36.1911,
		Longitude:              44.0072,
		Period:                 "Atabeg",
		Status:                 building.StatusRestored,
		ConstructionYear:       &year,
		RenovationYears:        []int{1960, 2014},
		Era:                    &building.Ref{ID: "01912e5a-7a3b-7cc0-b093-2f5c88a1ee01", NameEn: "Medieval"},
		Region:                 &building.Ref{ID: "01912e5a-7a3b-7cc0-b093-2f5c88a1ee02", NameEn: "Erbil"},
		Materials: []building.Ref{
			{ID: "01912e5a-7a3b-7cc0-b093-2f5c88a1ee03", NameEn: "Fired brick"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	flat, err := building.Flatten(building.ToView(original))
	require.NoError(t, err)
	require.NotNil(t, flat)

	assert.Equal(t, original.ID, flat.ID)
	assert.Equal(t, original.Slug, flat.Slug)
	assert.Equal(t, original.TitleEn, flat.TitleEn)
	assert.Equal(t, original.TitleKu, flat.TitleKu)
	assert.Equal(t, original.AlternateNamesEn, flat.AlternateNamesEn)
	assert.Equal(t, original.ArchitecturalDetailsEn, flat.ArchitecturalDetailsEn)
	assert.JSONEq(t, original.HistoricalPeriodsEn, flat.HistoricalPeriodsEn)
	assert.JSONEq(t, original.HistoricalPeriodsKu, flat.HistoricalPeriodsKu)
	assert.Equal(t, original.ArchitectEn, flat.ArchitectEn)
	assert.Nil(t, flat.ArchitectKu) // empty name stays NULL
	assert.Equal(t, original.Latitude, flat.Latitude)
	assert.Equal(t, original.Longitude, flat.Longitude)
	assert.Equal(t, original.Status, flat.Status)
	assert.Equal(t, original.ConstructionYear, flat.ConstructionYear)
	assert.Equal(t, original.RenovationYears, flat.RenovationYears)

	// Relation IDs recovered from the hydrated refs
	require.NotNil(t, flat.EraID)
	assert.Equal(t, original.Era.ID, *flat.EraID)
	require.NotNil(t, flat.RegionID)
	assert.Equal(t, original.Region.ID, *flat.RegionID)
	assert.Nil(t, flat.BuildingTypeID)
	assert.Equal(t, []string{original.Materials[0].ID}, flat.MaterialIDs)
}

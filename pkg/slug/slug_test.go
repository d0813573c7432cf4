// Copyright (c) 2026 Arch.krd. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archkrd/api/pkg/slug"
)

/*
TestMake verifies slug generation across plain, accented, and messy input.
*/
func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Erbil Citadel", "erbil-citadel"},
		{"accented", "Citadelle d'Erbil", "citadelle-d-erbil"},
		{"punctuation_runs", "Mudhafaria   Minaret -- (Erbil)", "mudhafaria-minaret-erbil"},
		{"leading_trailing", "  Khanzad Castle!  ", "khanzad-castle"},
		{"digits_kept", "Delal Bridge 1905", "delal-bridge-1905"},
		{"non_latin_only", "قەڵای هەولێر", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.title))
		})
	}
}

/*
TestMakeUnique verifies suffixing for slug collisions.
*/
func TestMakeUnique(t *testing.T) {
	assert.Equal(t, "erbil-citadel-01912e5a", slug.MakeUnique("Erbil Citadel", "01912e5a"))

	// A title that slugs to nothing falls back to the suffix alone
	assert.Equal(t, "01912e5a", slug.MakeUnique("قەڵا", "01912e5a"))
}

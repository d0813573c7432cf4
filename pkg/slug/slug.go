// Copyright (c) 2026 Arch.krd. All rights reserved.

// Package slug generates URL-safe slugs from arbitrary titles.
//
// # Unicode Handling
//
// Input is normalized with Unicode NFD decomposition so accented Latin
// characters fold to their base letters ("Citadelle d'Erbil" -> "citadelle-d-erbil").
// Characters outside [a-z0-9] become hyphens; runs of hyphens collapse.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var normalizer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Make converts a title into a URL-safe slug.
func Make(title string) string {

	// 1. Strip diacritics via NFD decomposition
	normalized, _, err := transform.String(normalizer, title)
	if err != nil {
		normalized = title
	}

	// 2. Lowercase and map everything outside [a-z0-9] to hyphens
	var builder strings.Builder
	builder.Grow(len(normalized))

	for _, r := range strings.ToLower(normalized) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		default:
			builder.WriteRune('-')
		}
	}

	// 3. Collapse hyphen runs and trim the edges
	parts := strings.FieldsFunc(builder.String(), func(r rune) bool {
		return r == '-'
	})

	return strings.Join(parts, "-")
}

// MakeUnique appends a short suffix to the base slug, used when the bare
// slug already exists in storage.
func MakeUnique(title, suffix string) string {
	base := Make(title)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

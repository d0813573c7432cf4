// Copyright (c) 2026 Arch.krd. All rights reserved.

/*
Package search implements the public quick-search endpoint.

It returns a short mixed list of building and location suggestions for the
site-wide search box, matched by trigram word similarity so partial and
slightly misspelled queries still hit (pg_trgm is enabled by the migrations).
*/
package search

import "context"

// Result types returned by the quick search.
const (
	TypeBuilding = "building"
	TypeLocation = "location"
)

// Title pairs the two language variants of a suggestion label.
type Title struct {
	En string `json:"en"`
	Ku string `json:"ku"`
}

// Result is one quick-search suggestion. ID is only set for buildings;
// location suggestions are navigated by their text.
type Result struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Slug  string `json:"slug,omitempty"`
	Title Title  `json:"title"`
}

// Repository defines the trigram lookup behavior.
type Repository interface {

	/*
		Search returns building and location suggestions for a query term.

		Description: Buildings are matched by word_similarity against both
		title languages, locations against both location columns; each group
		is ordered by similarity descending and capped.

		Parameters:
		  - ctx: context.Context
		  - term: string (raw user input, already trimmed)
		  - limit: int (cap per invocation across both groups)

		Returns:
		  - []Result: Buildings first, then distinct locations, never nil
		  - error: Database execution errors
	*/
	Search(ctx context.Context, term string, limit int) ([]Result, error)
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archkrd/api/pkg/pagination"
)

/*
TestFromRequest verifies query parsing and clamping of page/limit parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/buildings", 1, 20},
		{"explicit", "/buildings?page=3&limit=50", 3, 50},
		{"zero_page_clamped", "/buildings?page=0", 1, 20},
		{"negative_page_clamped", "/buildings?page=-5", 1, 20},
		{"limit_above_max_clamped", "/buildings?limit=500", 1, 20},
		{"non_numeric_ignored", "/buildings?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(r)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestFromRequestDefault verifies the endpoint-specific default page size.
*/
func TestFromRequestDefault(t *testing.T) {
	// Timeline cards default to 9 per page
	r := httptest.NewRequest("GET", "/timeline", nil)
	params := pagination.FromRequestDefault(r, 9)
	assert.Equal(t, 9, params.Limit)

	// An explicit limit still wins
	r = httptest.NewRequest("GET", "/timeline?limit=18", nil)
	params = pagination.FromRequestDefault(r, 9)
	assert.Equal(t, 18, params.Limit)

	// Out-of-range values fall back to the endpoint default, not the global one
	r = httptest.NewRequest("GET", "/timeline?limit=999", nil)
	params = pagination.FromRequestDefault(r, 9)
	assert.Equal(t, 9, params.Limit)
}

/*
TestParams_Offset verifies the SQL OFFSET derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 18, pagination.Params{Page: 3, Limit: 9}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
}

/*
TestNewMeta verifies TotalPages and HasMore boundary calculations.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int
		wantTotalPages int
		wantHasMore    bool
	}{
		{"empty_result", 1, 20, 0, 0, false},
		{"exact_fit", 1, 20, 20, 1, false},
		{"one_over", 1, 20, 21, 2, true},
		{"middle_page", 2, 10, 35, 4, true},
		{"last_page", 4, 10, 35, 4, false},
		{"past_the_end", 9, 10, 35, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
			assert.Equal(t, tt.wantHasMore, meta.HasMore)
		})
	}
}

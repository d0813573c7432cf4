// Copyright (c) 2026 Arch.krd. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "translations.en.title", "Erbil Citadel", false},
		{"empty_string", "translations.en.title", "", true},
		{"whitespace_only", "translations.en.title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_FloatRange checks the coordinate bounds rule.
*/
func TestValidator_FloatRange(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		min     float64
		max     float64
		isValid bool
	}{
		{"erbil_latitude", 36.19, -90, 90, true},
		{"boundary_min", -90, -90, 90, true},
		{"boundary_max", 90, -90, 90, true},
		{"below_range", -90.01, -90, 90, false},
		{"above_range", 180.5, -180, 180, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.FloatRange("coordinates.lat", tt.value, tt.min, tt.max)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_UUID checks UUID format validation for relation identifiers.
*/
func TestValidator_UUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"valid_v7", "01912e5a-7a3b-7cc0-b093-2f5c88a1e001", true},
		{"valid_v4_uppercase", "6BA7B810-9DAD-41D1-80B4-00C04FD430C8", true},
		{"not_a_uuid", "erbil-citadel", false},
		{"truncated", "01912e5a-7a3b-7cc0", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.UUID("eraId", tt.value)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_OneOf checks the enumeration rule used for statuses.
*/
func TestValidator_OneOf(t *testing.T) {
	allowed := []string{"PRESERVED", "ENDANGERED", "RESTORED", "RUINS"}

	v := &validate.Validator{}
	v.OneOf("status", "ENDANGERED", allowed...)
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.OneOf("status", "DEMOLISHED", allowed...)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("name", "Shexani").
		MinLen("name", "Shexani", 3).
		MaxLen("name", "Shexani", 10).
		Email("email", "shexani@arch.krd").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").           // Fails
		MinLen("name", "a", 5).         // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

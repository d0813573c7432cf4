// Copyright (c) 2026 Arch.krd. All rights reserved.

// Package pointer provides small generic helpers for working with pointers,
// commonly needed for optional fields in PATCH payloads and nullable columns.
package pointer

// To returns a pointer to the given value.
func To[T any](value T) *T {
	return &value
}

// Deref returns the value behind the pointer, or the zero value if nil.
func Deref[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}

// DerefOr returns the value behind the pointer, or the fallback if nil.
func DerefOr[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

// Package uuidv7 generates time-sortable UUIDv7 identifiers.
//
// All entity primary keys use UUIDv7 so that index inserts stay roughly
// append-only and IDs sort by creation time.
package uuidv7

import "github.com/google/uuid"

// New returns a new UUIDv7 string. It falls back to a random UUIDv4 in the
// unlikely event that the system clock source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

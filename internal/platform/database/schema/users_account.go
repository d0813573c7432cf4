// Copyright (c) 2026 Arch.krd. All rights reserved.

package schema

// AccountTable describes the users.account table.
type AccountTable struct {
	Name string

	ID           string
	DisplayName  string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    string
	UpdatedAt    string
}

// Account is the singleton descriptor for users.account.
var Account = AccountTable{
	Name: "users.account",

	ID:           "id",
	DisplayName:  "name",
	Email:        "email",
	PasswordHash: "passwordhash",
	Role:         "role",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns every column in declaration order.
func (t AccountTable) Columns() []string {
	return []string{t.ID, t.DisplayName, t.Email, t.PasswordHash, t.Role, t.CreatedAt, t.UpdatedAt}
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package schema

// SessionTable describes the users.session refresh-token table.
type SessionTable struct {
	Name string

	ID        string
	UserID    string
	TokenHash string
	UserAgent string
	IPAddress string
	ExpiresAt string
	IsRevoked string
	CreatedAt string
}

// Session is the singleton descriptor for users.session.
var Session = SessionTable{
	Name: "users.session",

	ID:        "id",
	UserID:    "userid",
	TokenHash: "tokenhash",
	UserAgent: "useragent",
	IPAddress: "ipaddress",
	ExpiresAt: "expiresat",
	IsRevoked: "isrevoked",
	CreatedAt: "createdat",
}

// Columns returns every column in declaration order.
func (t SessionTable) Columns() []string {
	return []string{t.ID, t.UserID, t.TokenHash, t.UserAgent, t.IPAddress, t.ExpiresAt, t.IsRevoked, t.CreatedAt}
}

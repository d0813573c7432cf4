// Copyright (c) 2026 Arch.krd. All rights reserved.

/*
Package comment manages threaded visitor comments on buildings.

Threading is deliberately one level deep: a comment either has no parent
(top-level) or replies to a top-level comment. Replies to replies are
rejected at validation time.
*/
package comment

import (
	"context"
	"time"
)

// Comment is a single visitor comment, hydrated with its author and, for
// top-level comments, its replies.
type Comment struct {
	ID         string     `json:"id"`
	BuildingID string     `json:"buildingId"`
	ParentID   *string    `json:"parentId,omitempty"`
	Content    string     `json:"content"`
	Author     Author     `json:"author"`
	Replies    []*Comment `json:"replies,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Author is the public projection of a comment's account.
type Author struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Field identifiers for validation messages.
const (
	FieldBuildingID = "buildingId"
	FieldParentID   = "parentId"
	FieldContent    = "content"
)

// Repository defines the persistence behavior for comments.
type Repository interface {

	/*
		ListByBuilding returns the full comment thread of a building:
		top-level comments newest first, each carrying its replies oldest
		first, all with authors joined.

		Returns:
		  - []*Comment: Thread roots, never nil
		  - error: Database execution errors
	*/
	ListByBuilding(ctx context.Context, buildingID string) ([]*Comment, error)

	/*
		FindByID retrieves one comment without replies.

		Returns:
		  - *Comment: The row with author joined
		  - error: apperr.NotFound when absent
	*/
	FindByID(ctx context.Context, id string) (*Comment, error)

	// Create persists a new comment row.
	Create(ctx context.Context, c *Comment) error

	// Delete removes a comment; replies cascade.
	Delete(ctx context.Context, id string) error
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package schema

// CommentTable describes the social.comment table.
type CommentTable struct {
	Name string

	ID         string
	BuildingID string
	AuthorID   string
	ParentID   string
	Content    string
	CreatedAt  string
	UpdatedAt  string
}

// Comment is the singleton descriptor for social.comment.
var Comment = CommentTable{
	Name: "social.comment",

	ID:         "id",
	BuildingID: "buildingid",
	AuthorID:   "authorid",
	ParentID:   "parentid",
	Content:    "content",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// Columns returns every column in declaration order.
func (t CommentTable) Columns() []string {
	return []string{t.ID, t.BuildingID, t.AuthorID, t.ParentID, t.Content, t.CreatedAt, t.UpdatedAt}
}

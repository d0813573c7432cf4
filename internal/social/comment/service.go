// Copyright (c) 2026 Arch.krd. All rights reserved.

package comment

import (
	"context"
	"log/slog"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/ctxutil"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/internal/platform/validate"
	"github.com/archkrd/api/pkg/uuidv7"
)

// maxContentLen bounds a single comment body.
const maxContentLen = 4000

// Service orchestrates comment use cases.
type Service struct {
	repository Repository
}

// NewService constructs the comment service.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// Input is the payload for posting a comment.
type Input struct {
	BuildingID string  `json:"buildingId"`
	ParentID   *string `json:"parentId,omitempty"`
	Content    string  `json:"content"`
}

// ListByBuilding returns the full thread of a building.
func (service *Service) ListByBuilding(ctx context.Context, buildingID string) ([]*Comment, error) {

	v := &validate.Validator{}
	if err := v.UUID(FieldBuildingID, buildingID).Err(); err != nil {
		return nil, err
	}

	return service.repository.ListByBuilding(ctx, buildingID)
}

/*
Create validates and persists a new comment for the authenticated user.

Description: When a parent is given it must belong to the same building and
itself be a top-level comment; this keeps threading at exactly one level.

Parameters:
  - ctx: context.Context
  - claims: *sec.AuthClaims (the posting user)
  - input: *Input

Returns:
  - *Comment: The stored comment with author attached
  - error: apperr.ValidationError on bad parent/content, repository failures
*/
func (service *Service) Create(ctx context.Context, claims *sec.AuthClaims, input *Input) (*Comment, error) {

	v := &validate.Validator{}
	v.UUID(FieldBuildingID, input.BuildingID)
	v.Required(FieldContent, input.Content)
	v.MaxLen(FieldContent, input.Content, maxContentLen)
	if input.ParentID != nil {
		v.UUID(FieldParentID, *input.ParentID)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	// Parent checks: same building, and not itself a reply
	if input.ParentID != nil {
		parent, err := service.repository.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.BuildingID != input.BuildingID {
			return nil, validate.RequiredError(FieldParentID, "Parent comment belongs to a different building")
		}
		if parent.ParentID != nil {
			return nil, validate.RequiredError(FieldParentID, "Replies cannot be nested further")
		}
	}

	comment := &Comment{
		ID:         uuidv7.New(),
		BuildingID: input.BuildingID,
		ParentID:   input.ParentID,
		Content:    input.Content,
		Author: Author{
			ID:   claims.UserID,
			Name: claims.Name,
		},
	}

	if err := service.repository.Create(ctx, comment); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "comment_created",
		slog.String("comment_id", comment.ID),
		slog.String("building_id", comment.BuildingID),
	)

	return service.repository.FindByID(ctx, comment.ID)
}

/*
Delete removes a comment if the caller authored it or is an admin.

Returns:
  - error: apperr.NotFound, apperr.Forbidden for other users' comments
*/
func (service *Service) Delete(ctx context.Context, claims *sec.AuthClaims, id string) error {

	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return err
	}

	comment, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	isOwner := comment.Author.ID == claims.UserID
	isAdmin := sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin)
	if !isOwner && !isAdmin {
		return apperr.Forbidden("You can only delete your own comments")
	}

	if err := service.repository.Delete(ctx, id); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "comment_deleted",
		slog.String("comment_id", id),
		slog.Bool("by_admin", !isOwner),
	)

	return nil
}

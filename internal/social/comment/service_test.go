// Copyright (c) 2026 Arch.krd. All rights reserved.

package comment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/internal/social/comment"
)

const (
	buildingA = "01912e5a-7a3b-7cc0-b093-2f5c88a1b001"
	buildingB = "01912e5a-7a3b-7cc0-b093-2f5c88a1b002"
)

// fakeRepository is an in-memory comment store.
type fakeRepository struct {
	rows map[string]*comment.Comment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[string]*comment.Comment{}}
}

func (f *fakeRepository) ListByBuilding(_ context.Context, buildingID string) ([]*comment.Comment, error) {
	out := []*comment.Comment{}
	for _, c := range f.rows {
		if c.BuildingID == buildingID && c.ParentID == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*comment.Comment, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("Comment")
	}
	return c, nil
}

func (f *fakeRepository) Create(_ context.Context, c *comment.Comment) error {
	stored := *c
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.rows[c.ID] = &stored
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return apperr.NotFound("Comment")
	}
	delete(f.rows, id)
	return nil
}

func visitor() *sec.AuthClaims {
	return &sec.AuthClaims{
		UserID: "01912e5a-7a3b-7cc0-b093-2f5c88a1u001",
		Name:   "Dilan",
		Role:   string(sec.RoleUser),
	}
}

/*
TestService_Create verifies a top-level comment is stored with its author.
*/
func TestService_Create(t *testing.T) {
	repo := newFakeRepository()
	service := comment.NewService(repo)

	created, err := service.Create(context.Background(), visitor(), &comment.Input{
		BuildingID: buildingA,
		Content:    "The brickwork on the east face is remarkable.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, buildingA, created.BuildingID)
	assert.Nil(t, created.ParentID)
	assert.Equal(t, "Dilan", created.Author.Name)
}

/*
TestService_Create_Reply verifies a reply to a top-level comment is accepted.
*/
func TestService_Create_Reply(t *testing.T) {
	repo := newFakeRepository()
	service := comment.NewService(repo)

	parent, err := service.Create(context.Background(), visitor(), &comment.Input{
		BuildingID: buildingA,
		Content:    "When was the last restoration?",
	})
	require.NoError(t, err)

	reply, err := service.Create(context.Background(), visitor(), &comment.Input{
		BuildingID: buildingA,
		ParentID:   &parent.ID,
		Content:    "2014, per the citation list.",
	})
	require.NoError(t, err)

	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

/*
TestService_Create_RejectsNestedReply verifies that replying to a reply fails:
threading is exactly one level deep.
*/
func TestService_Create_RejectsNestedReply(t *testing.T) {
	repo := newFakeRepository()
	service := comment.NewService(repo)

	parent, err := service.Create(context.Background(), visitor(), &comment.Input{
		BuildingID: buildingA,
		Content:    "Top-level.",
	})
	require.NoError(t, err)

	reply, err := service.Create(context.Background(), visitor(), &comment.Input{
		BuildingID: buildingA,
		ParentID:   &parent.ID,
		Content:    "First reply.",
	})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), visitor(), &comment.Input{
		BuildingID: buildingA,
		ParentID:   &reply.ID,
		Content:    "Reply to a reply.",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_Create_RejectsCrossBuildingParent verifies the parent must belong
to the same building.
*/
func TestService_Create_RejectsCrossBuildingParent(t *testing.T) {
	repo := newFakeRepository()
	service := comment.NewService(repo)

	parent, err := service.Create(context.Background(), visitor(), &comment.Input{
		BuildingID: buildingA,
		Content:    "On building A.",
	})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), visitor(), &comment.Input{
		BuildingID: buildingB,
		ParentID:   &parent.ID,
		Content:    "Posted under building B.",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_Delete verifies the author-or-admin rule.
*/
func TestService_Delete(t *testing.T) {
	repo := newFakeRepository()
	service := comment.NewService(repo)

	author := visitor()
	created, err := service.Create(context.Background(), author, &comment.Input{
		BuildingID: buildingA,
		Content:    "To be deleted.",
	})
	require.NoError(t, err)

	// A different non-admin user is refused
	stranger := &sec.AuthClaims{
		UserID: "01912e5a-7a3b-7cc0-b093-2f5c88a1u002",
		Name:   "Hawar",
		Role:   string(sec.RoleUser),
	}
	err = service.Delete(context.Background(), stranger, created.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// An admin may remove anyone's comment
	admin := &sec.AuthClaims{
		UserID: "01912e5a-7a3b-7cc0-b093-2f5c88a1u003",
		Name:   "Moderator",
		Role:   string(sec.RoleAdmin),
	}
	require.NoError(t, service.Delete(context.Background(), admin, created.ID))

	_, findErr := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, "NOT_FOUND", apperr.As(findErr).Code)
}

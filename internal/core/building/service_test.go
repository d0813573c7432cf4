// Copyright (c) 2026 Arch.krd. All rights reserved.

package building_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archkrd/api/internal/core/building"
	"github.com/archkrd/api/internal/platform/apperr"
)

// fakeRepository is an in-memory Repository for service-level tests.
type fakeRepository struct {
	rows map[string]*building.Building

	createCalls int
	failSlugs   map[string]bool // slugs that trigger a CONFLICT on Create
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		rows:      map[string]*building.Building{},
		failSlugs: map[string]bool{},
	}
}

func (f *fakeRepository) List(_ context.Context, _ building.Filter, _, _ int) ([]*building.Building, int, error) {
	out := make([]*building.Building, 0, len(f.rows))
	for _, b := range f.rows {
		out = append(out, b)
	}
	return out, len(out), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*building.Building, error) {
	b, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("Building")
	}
	return b, nil
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*building.Building, error) {
	for _, b := range f.rows {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, apperr.NotFound("Building")
}

func (f *fakeRepository) Create(_ context.Context, b *building.Building) error {
	f.createCalls++
	if f.failSlugs[b.Slug] {
		return apperr.Conflict("A building with this slug already exists")
	}
	stored := *b
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.rows[b.ID] = &stored
	return nil
}

func (f *fakeRepository) Update(_ context.Context, b *building.Building, expectedUpdatedAt time.Time) error {
	existing, ok := f.rows[b.ID]
	if !ok {
		return apperr.NotFound("Building")
	}
	if !existing.UpdatedAt.Equal(expectedUpdatedAt) {
		return apperr.Conflict("Building was modified by another request; reload and retry")
	}
	updated := *b
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	f.rows[b.ID] = &updated
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return apperr.NotFound("Building")
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRepository) AddImage(_ context.Context, image *building.Image) error {
	b, ok := f.rows[image.BuildingID]
	if !ok {
		return apperr.NotFound("Building")
	}
	b.Images = append(b.Images, *image)
	return nil
}

func (f *fakeRepository) DeleteImage(_ context.Context, buildingID, imageID string) error {
	return nil
}

func (f *fakeRepository) SetPrimaryImage(_ context.Context, buildingID, imageID string) error {
	b, ok := f.rows[buildingID]
	if !ok {
		return apperr.NotFound("Building")
	}
	for i := range b.Images {
		b.Images[i].IsPrimary = b.Images[i].ID == imageID
	}
	return nil
}

func (f *fakeRepository) AddSource(_ context.Context, source *building.Source) error {
	return nil
}

func (f *fakeRepository) DeleteSource(_ context.Context, buildingID, sourceID string) error {
	return nil
}

// validInput builds a minimal payload that passes all validation rules.
func validInput() *building.Input {
	return &building.Input{
		Translations: building.Translations{
			En: building.Translation{
				Title:    "Erbil Citadel",
				Location: "Erbil",
				Overview: "A fortified tell occupied for over six millennia.",
			},
			Ku: building.Translation{
				Title:    "قەڵای هەولێر",
				Location: "هەولێر",
				Overview: "گردێکی قەڵابەند کە زیاتر لە شەش هەزار ساڵ ئاوەدانە.",
			},
		},
		Coordinates: building.Coordinates{Lat: 36.1911, Lng: 44.0092},
		Status:      building.StatusPreserved,
	}
}

/*
TestService_Create verifies identity generation, slug derivation, and the
returned hydrated view.
*/
func TestService_Create(t *testing.T) {
	repo := newFakeRepository()
	service := building.NewService(repo)

	view, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "erbil-citadel", view.Slug)
	assert.Equal(t, "Erbil Citadel", view.Translations.En.Title)
	assert.Equal(t, 1, repo.createCalls)
}

/*
TestService_Create_SlugCollision verifies the single retry with a uniquifying
suffix when the derived slug already exists.
*/
func TestService_Create_SlugCollision(t *testing.T) {
	repo := newFakeRepository()
	repo.failSlugs["erbil-citadel"] = true
	service := building.NewService(repo)

	view, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 2, repo.createCalls)
	assert.Contains(t, view.Slug, "erbil-citadel-")
	assert.Len(t, view.Slug, len("erbil-citadel-")+8)
}

/*
TestService_Create_Validation verifies rejection of incomplete bilingual payloads.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*building.Input)
	}{
		{"missing_ku_title", func(in *building.Input) { in.Translations.Ku.Title = "" }},
		{"missing_en_location", func(in *building.Input) { in.Translations.En.Location = "" }},
		{"missing_ku_overview", func(in *building.Input) { in.Translations.Ku.Overview = "  " }},
		{"latitude_out_of_range", func(in *building.Input) { in.Coordinates.Lat = 91 }},
		{"unknown_status", func(in *building.Input) { in.Status = "DEMOLISHED" }},
		{"bad_era_id", func(in *building.Input) { bad := "not-a-uuid"; in.EraID = &bad }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := building.NewService(repo)

			input := validInput()
			tt.mutate(input)

			_, err := service.Create(context.Background(), input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Zero(t, repo.createCalls)
		})
	}
}

/*
TestService_Get verifies lookup by UUID and by slug through one identifier path.
*/
func TestService_Get(t *testing.T) {
	repo := newFakeRepository()
	service := building.NewService(repo)

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	byID, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := service.Get(context.Background(), "erbil-citadel")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	_, err = service.Get(context.Background(), "no-such-building")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Update_RequiresVersion verifies that a payload without the
last-seen updatedAt value is rejected before touching the store.
*/
func TestService_Update_RequiresVersion(t *testing.T) {
	repo := newFakeRepository()
	service := building.NewService(repo)

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	input := validInput() // UpdatedAt deliberately nil
	_, err = service.Update(context.Background(), created.ID, input)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_Update_StaleVersion verifies the optimistic concurrency conflict.
*/
func TestService_Update_StaleVersion(t *testing.T) {
	repo := newFakeRepository()
	service := building.NewService(repo)

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	stale := created.UpdatedAt.Add(-time.Minute)
	input := validInput()
	input.UpdatedAt = &stale

	_, err = service.Update(context.Background(), created.ID, input)

	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestService_Update verifies a full replace with the current version succeeds.
*/
func TestService_Update(t *testing.T) {
	repo := newFakeRepository()
	service := building.NewService(repo)

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	input := validInput()
	input.Translations.En.Title = "Citadel of Erbil"
	input.Status = building.StatusRestored
	input.UpdatedAt = &created.UpdatedAt

	updated, err := service.Update(context.Background(), created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, "Citadel of Erbil", updated.Translations.En.Title)
	assert.Equal(t, building.StatusRestored, updated.Status)
}

/*
TestService_Update_Idempotent verifies that submitting the same full-replace
payload twice (refreshing the version between calls) converges on identical
stored state: renovation years and material links do not accumulate.
*/
func TestService_Update_Idempotent(t *testing.T) {
	repo := newFakeRepository()
	service := building.NewService(repo)

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	input := validInput()
	input.RenovationYears = []int{1960, 2014}
	input.MaterialIDs = []string{
		"01912e5a-7a3b-7cc0-b093-2f5c88a1ee03",
		"01912e5a-7a3b-7cc0-b093-2f5c88a1ee04",
	}

	input.UpdatedAt = &created.UpdatedAt
	first, err := service.Update(context.Background(), created.ID, input)
	require.NoError(t, err)

	input.UpdatedAt = &first.UpdatedAt
	second, err := service.Update(context.Background(), created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, first.Translations, second.Translations)
	assert.Equal(t, []int{1960, 2014}, second.RenovationYears)

	stored := repo.rows[created.ID]
	assert.Equal(t, []int{1960, 2014}, stored.RenovationYears)
	assert.Len(t, stored.MaterialIDs, 2)
	assert.ElementsMatch(t, input.MaterialIDs, stored.MaterialIDs)
}

/*
TestService_AddImage_Primary verifies that adding a primary image demotes the
previous primary.
*/
func TestService_AddImage_Primary(t *testing.T) {
	repo := newFakeRepository()
	service := building.NewService(repo)

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	first, err := service.AddImage(context.Background(), created.ID, &building.ImageInput{
		URL: "https://cdn.arch.krd/buildings/a.jpg", IsPrimary: true,
	})
	require.NoError(t, err)

	second, err := service.AddImage(context.Background(), created.ID, &building.ImageInput{
		URL: "https://cdn.arch.krd/buildings/b.jpg", IsPrimary: true,
	})
	require.NoError(t, err)

	stored := repo.rows[created.ID]
	require.Len(t, stored.Images, 2)
	for _, img := range stored.Images {
		assert.Equal(t, img.ID == second.ID, img.IsPrimary)
	}
	assert.NotEqual(t, first.ID, second.ID)
}

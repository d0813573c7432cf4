// Copyright (c) 2026 Arch.krd. All rights reserved.

package era

import (
	"context"
	"log/slog"

	"github.com/archkrd/api/internal/platform/ctxutil"
	"github.com/archkrd/api/internal/platform/validate"
	"github.com/archkrd/api/pkg/slug"
	"github.com/archkrd/api/pkg/uuidv7"
)

// Service orchestrates era use cases.
type Service struct {
	repository Repository
}

// NewService constructs the era service.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// Input is the admin payload for creating or updating an era.
type Input struct {
	NameEn        string `json:"nameEn"`
	NameKu        string `json:"nameKu"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionKu string `json:"descriptionKu"`
	StartYear     int    `json:"startYear"`
	EndYear       *int   `json:"endYear"`
}

// List returns every era ordered by start year.
func (service *Service) List(ctx context.Context) ([]*Era, error) {
	eras, err := service.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	if eras == nil {
		eras = []*Era{}
	}
	return eras, nil
}

// Create validates and persists a new era.
//
// Year bounds are deliberately not cross-validated: historical eras overlap
// and some sources disagree on boundaries, so startYear > endYear is stored
// as given.
func (service *Service) Create(ctx context.Context, input *Input) (*Era, error) {

	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	e := &Era{
		ID:            uuidv7.New(),
		Slug:          slug.Make(input.NameEn),
		NameEn:        input.NameEn,
		NameKu:        input.NameKu,
		DescriptionEn: input.DescriptionEn,
		DescriptionKu: input.DescriptionKu,
		StartYear:     input.StartYear,
		EndYear:       input.EndYear,
	}

	if err := service.repository.Create(ctx, e); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "era_created",
		slog.String("era_id", e.ID),
		slog.String("slug", e.Slug),
	)

	return service.repository.FindByID(ctx, e.ID)
}

// Update validates and replaces an era's fields.
func (service *Service) Update(ctx context.Context, id string, input *Input) (*Era, error) {

	v := &validate.Validator{}
	if err := v.UUID(FieldID, id).Err(); err != nil {
		return nil, err
	}

	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	e := &Era{
		ID:            id,
		NameEn:        input.NameEn,
		NameKu:        input.NameKu,
		DescriptionEn: input.DescriptionEn,
		DescriptionKu: input.DescriptionKu,
		StartYear:     input.StartYear,
		EndYear:       input.EndYear,
	}

	if err := service.repository.Update(ctx, e); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "era_updated",
		slog.String("era_id", id),
	)

	return service.repository.FindByID(ctx, id)
}

// Delete removes an era; referencing buildings keep their rows.
func (service *Service) Delete(ctx context.Context, id string) error {

	v := &validate.Validator{}
	if err := v.UUID(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repository.Delete(ctx, id); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "era_deleted",
		slog.String("era_id", id),
	)

	return nil
}

func (service *Service) validateInput(input *Input) error {
	v := &validate.Validator{}
	v.Required(FieldNameEn, input.NameEn)
	v.MaxLen(FieldNameEn, input.NameEn, 200)
	v.Required(FieldNameKu, input.NameKu)
	v.MaxLen(FieldNameKu, input.NameKu, 200)
	return v.Err()
}

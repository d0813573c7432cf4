// Copyright (c) 2026 Arch.krd. All rights reserved.

package building

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/ctxutil"
	"github.com/archkrd/api/internal/platform/validate"
	"github.com/archkrd/api/pkg/pagination"
	"github.com/archkrd/api/pkg/slug"
	"github.com/archkrd/api/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates building use cases: validation, identity generation,
// and mapping between the flat storage row and the nested bilingual view.
type Service struct {
	repository Repository
}

// NewService constructs the building service.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Inputs

// Input is the nested admin payload for creating or replacing a building.
type Input struct {
	Translations     Translations `json:"translations"`
	Coordinates      Coordinates  `json:"coordinates"`
	Period           string       `json:"period"`
	Status           Status       `json:"status"`
	ConstructionYear *int         `json:"constructionYear"`
	RenovationYears  []int        `json:"renovationYears"`
	EraID            *string      `json:"eraId"`
	RegionID         *string      `json:"regionId"`
	BuildingTypeID   *string      `json:"buildingTypeId"`
	MaterialIDs      []string     `json:"materialIds"`

	// UpdatedAt carries the row version the client last saw. Required on
	// update; a stale value is rejected with 409.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ImageInput is the payload for associating an already-uploaded image.
type ImageInput struct {
	URL       string `json:"url"`
	CaptionEn string `json:"captionEn"`
	CaptionKu string `json:"captionKu"`
	IsPrimary bool   `json:"isPrimary"`
}

// SourceInput is the payload for attaching a citation.
type SourceInput struct {
	TitleEn     string `json:"titleEn"`
	TitleKu     string `json:"titleKu"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// TimelineView is the composed payload of the public timeline endpoint.
type TimelineView struct {
	Eras      []TimelineEra `json:"eras"`
	Buildings []*View       `json:"buildings"`
}

// TimelineEra is an era entry of the timeline header strip.
type TimelineEra struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	NameEn    string `json:"nameEn"`
	NameKu    string `json:"nameKu"`
	StartYear int    `json:"startYear"`
	EndYear   *int   `json:"endYear"` // nil = ongoing
}

// EraTimelineProvider supplies the era strip for the timeline composition.
type EraTimelineProvider interface {
	ListForTimeline(ctx context.Context) ([]TimelineEra, error)
}

// # Read Operations

/*
List returns the filtered catalogue page as bilingual views.

Parameters:
  - ctx: context.Context
  - filter: Filter
  - params: pagination.Params (already clamped by the parsing layer)

Returns:
  - []*View: Page of mapped buildings, never nil
  - pagination.Meta: Totals for the response envelope
  - error: Repository failures
*/
func (service *Service) List(ctx context.Context, filter Filter, params pagination.Params) ([]*View, pagination.Meta, error) {

	buildings, total, err := service.repository.List(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	service.logPeriodDefects(ctx, buildings)

	return ToViews(buildings), pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
Get retrieves one building by UUID or slug.

Description: The identifier is tried as a UUID first; anything that does not
parse as a UUID is treated as a slug. Both paths return the fully hydrated
detail view.

Returns:
  - *View: The bilingual detail view
  - error: apperr.NotFound when absent
*/
func (service *Service) Get(ctx context.Context, identifier string) (*View, error) {

	var b *Building
	var err error

	if uuidv7.IsValid(identifier) {
		b, err = service.repository.FindByID(ctx, identifier)
	} else {
		b, err = service.repository.FindBySlug(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}

	service.logPeriodDefects(ctx, []*Building{b})

	return ToView(b), nil
}

/*
Timeline composes the era strip with a construction-year ordered building page.

Parameters:
  - ctx: context.Context
  - eras: EraTimelineProvider (era strip source)
  - eraID: string (optional era filter)
  - params: pagination.Params (timeline default page size is 9)

Returns:
  - *TimelineView: Eras plus the building page
  - pagination.Meta: Building totals
  - error: Repository failures
*/
func (service *Service) Timeline(ctx context.Context, eras EraTimelineProvider, eraID string, params pagination.Params) (*TimelineView, pagination.Meta, error) {

	eraStrip, err := eras.ListForTimeline(ctx)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	filter := Filter{
		EraID: eraID,
		Sort:  SortConstructionYear,
	}

	buildings, total, err := service.repository.List(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	service.logPeriodDefects(ctx, buildings)

	view := &TimelineView{
		Eras:      eraStrip,
		Buildings: ToViews(buildings),
	}

	return view, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// # Write Operations

/*
Create validates and persists a new building.

Description: Generates a UUIDv7 identity and a slug from the English title.
If the slug collides with an existing building, creation retries once with a
uniquifying suffix derived from the new ID.

Returns:
  - *View: The hydrated view of the stored building
  - error: apperr.ValidationError on invalid payload, repository failures
*/
func (service *Service) Create(ctx context.Context, input *Input) (*View, error) {

	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	b, err := service.toRow(input)
	if err != nil {
		return nil, apperr.ValidationError("Invalid historicalPeriods payload")
	}

	b.ID = uuidv7.New()
	b.Slug = slug.Make(input.Translations.En.Title)

	if err := service.repository.Create(ctx, b); err != nil {

		// Slug collision: retry once with a uniquifying suffix
		var appError *apperr.AppError
		if errors.As(err, &appError) && appError.Code == "CONFLICT" {
			b.Slug = slug.MakeUnique(input.Translations.En.Title, b.ID[:8])
			err = service.repository.Create(ctx, b)
		}
		if err != nil {
			return nil, err
		}
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "building_created",
		slog.String("building_id", b.ID),
		slog.String("slug", b.Slug),
	)

	return service.Get(ctx, b.ID)
}

/*
Update validates and fully replaces a building under optimistic concurrency.

Description: The payload must carry the updatedAt value the client last read.
A missing version is a validation error; a stale one surfaces as 409 from the
store. Submitting the same payload twice (with the refreshed version) is
idempotent with respect to stored state.

Returns:
  - *View: The hydrated view after the write
  - error: apperr.ValidationError, apperr.NotFound, apperr.Conflict
*/
func (service *Service) Update(ctx context.Context, id string, input *Input) (*View, error) {

	v := &validate.Validator{}
	v.UUID(FieldID, id)
	if input.UpdatedAt == nil {
		v.Custom(FieldUpdatedAt, true, "The last-seen updatedAt value is required")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	b, err := service.toRow(input)
	if err != nil {
		return nil, apperr.ValidationError("Invalid historicalPeriods payload")
	}
	b.ID = id

	// Material sync distinguishes "not sent" from "clear all"
	if input.MaterialIDs == nil {
		b.MaterialIDs = nil
	}

	if err := service.repository.Update(ctx, b, *input.UpdatedAt); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "building_updated",
		slog.String("building_id", id),
	)

	return service.Get(ctx, id)
}

/*
Delete removes a building and its dependent rows.

Returns:
  - error: apperr.NotFound when absent
*/
func (service *Service) Delete(ctx context.Context, id string) error {

	v := &validate.Validator{}
	if err := v.UUID(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repository.Delete(ctx, id); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "building_deleted",
		slog.String("building_id", id),
	)

	return nil
}

// # Image Operations

/*
AddImage associates an already-uploaded image URL with a building.

Description: Association is a second phase after the object-storage upload;
the building row must already exist, so a failed upload can never leave an
image row pointing at a missing building.
*/
func (service *Service) AddImage(ctx context.Context, buildingID string, input *ImageInput) (*Image, error) {

	v := &validate.Validator{}
	v.UUID(FieldID, buildingID)
	v.Required(FieldImageURL, input.URL)
	v.MaxLen(FieldImageURL, input.URL, 2048)
	if err := v.Err(); err != nil {
		return nil, err
	}

	image := &Image{
		ID:         uuidv7.New(),
		BuildingID: buildingID,
		URL:        input.URL,
		CaptionEn:  input.CaptionEn,
		CaptionKu:  input.CaptionKu,
		IsPrimary:  input.IsPrimary,
	}

	if err := service.repository.AddImage(ctx, image); err != nil {
		return nil, err
	}

	// A new primary demotes the previous one
	if image.IsPrimary {
		if err := service.repository.SetPrimaryImage(ctx, buildingID, image.ID); err != nil {
			return nil, err
		}
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "building_image_added",
		slog.String("building_id", buildingID),
		slog.String("image_id", image.ID),
	)

	return image, nil
}

// DeleteImage removes an image association.
func (service *Service) DeleteImage(ctx context.Context, buildingID, imageID string) error {

	v := &validate.Validator{}
	if err := v.UUID(FieldID, buildingID).UUID("imageId", imageID).Err(); err != nil {
		return err
	}

	return service.repository.DeleteImage(ctx, buildingID, imageID)
}

// SetPrimaryImage promotes one image and demotes every other.
func (service *Service) SetPrimaryImage(ctx context.Context, buildingID, imageID string) error {

	v := &validate.Validator{}
	if err := v.UUID(FieldID, buildingID).UUID("imageId", imageID).Err(); err != nil {
		return err
	}

	return service.repository.SetPrimaryImage(ctx, buildingID, imageID)
}

// # Source Operations

// AddSource attaches a citation to a building.
func (service *Service) AddSource(ctx context.Context, buildingID string, input *SourceInput) (*Source, error) {

	v := &validate.Validator{}
	v.UUID(FieldID, buildingID)
	v.Required(FieldSourceTitleEn, input.TitleEn)
	v.MaxLen(FieldSourceTitleEn, input.TitleEn, 500)
	if err := v.Err(); err != nil {
		return nil, err
	}

	source := &Source{
		ID:          uuidv7.New(),
		BuildingID:  buildingID,
		TitleEn:     input.TitleEn,
		TitleKu:     input.TitleKu,
		URL:         input.URL,
		Description: input.Description,
	}

	if err := service.repository.AddSource(ctx, source); err != nil {
		return nil, err
	}

	return source, nil
}

// DeleteSource removes a citation.
func (service *Service) DeleteSource(ctx context.Context, buildingID, sourceID string) error {

	v := &validate.Validator{}
	if err := v.UUID(FieldID, buildingID).UUID("sourceId", sourceID).Err(); err != nil {
		return err
	}

	return service.repository.DeleteSource(ctx, buildingID, sourceID)
}

// # Internals

// validateInput applies the shared create/update payload rules.
func (service *Service) validateInput(input *Input) error {

	v := &validate.Validator{}

	v.Required(FieldTitleEn, input.Translations.En.Title)
	v.MaxLen(FieldTitleEn, input.Translations.En.Title, 300)
	v.Required(FieldTitleKu, input.Translations.Ku.Title)
	v.MaxLen(FieldTitleKu, input.Translations.Ku.Title, 300)

	v.Required(FieldLocationEn, input.Translations.En.Location)
	v.Required(FieldLocationKu, input.Translations.Ku.Location)

	v.Required(FieldOverviewEn, input.Translations.En.Overview)
	v.Required(FieldOverviewKu, input.Translations.Ku.Overview)

	v.FloatRange(FieldLatitude, input.Coordinates.Lat, -90, 90)
	v.FloatRange(FieldLongitude, input.Coordinates.Lng, -180, 180)

	v.OneOf(FieldStatus, string(input.Status), StatusValues()...)

	if input.EraID != nil {
		v.UUID("eraId", *input.EraID)
	}
	if input.RegionID != nil {
		v.UUID("regionId", *input.RegionID)
	}
	if input.BuildingTypeID != nil {
		v.UUID("buildingTypeId", *input.BuildingTypeID)
	}
	for _, materialID := range input.MaterialIDs {
		v.UUID("materialIds", materialID)
	}

	return v.Err()
}

// toRow flattens the nested input into a storage row via [Flatten], then
// carries over the relation IDs the input holds directly instead of as
// hydrated refs.
func (service *Service) toRow(input *Input) (*Building, error) {

	b, err := Flatten(&View{
		Translations: input.Translations,
		Coordinates:  input.Coordinates,
		Period:       input.Period,
		Status:       input.Status,

		ConstructionYear: input.ConstructionYear,
		RenovationYears:  input.RenovationYears,
	})
	if err != nil {
		return nil, err
	}

	b.EraID = input.EraID
	b.RegionID = input.RegionID
	b.BuildingTypeID = input.BuildingTypeID
	b.MaterialIDs = input.MaterialIDs

	// Material sync treats nil as "leave untouched"; creation always syncs
	if b.MaterialIDs == nil {
		b.MaterialIDs = []string{}
	}

	return b, nil
}

// logPeriodDefects reports malformed historicalPeriods columns without
// failing the read; the view degrades to an empty list.
func (service *Service) logPeriodDefects(ctx context.Context, buildings []*Building) {
	logger := ctxutil.GetLogger(ctx)
	for _, b := range buildings {
		if b == nil {
			continue
		}
		if _, err := DecodePeriods(b.HistoricalPeriodsEn); err != nil {
			logger.WarnContext(ctx, "historical_periods_decode_failed",
				slog.String("building_id", b.ID),
				slog.String("lang", "en"),
				slog.String("error", err.Error()),
			)
		}
		if _, err := DecodePeriods(b.HistoricalPeriodsKu); err != nil {
			logger.WarnContext(ctx, "historical_periods_decode_failed",
				slog.String("building_id", b.ID),
				slog.String("lang", "ku"),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package building

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/archkrd/api/internal/platform/middleware"
	requestutil "github.com/archkrd/api/internal/platform/request"
	"github.com/archkrd/api/internal/platform/respond"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/pkg/pagination"
)

// # HTTP Handlers

// timelinePageSize is the default card count of one timeline page.
const timelinePageSize = 9

// Handler exposes the building aggregate over HTTP.
type Handler struct {
	service *Service
	eras    EraTimelineProvider
}

// NewHandler constructs the building HTTP handler.
func NewHandler(service *Service, eras EraTimelineProvider) *Handler {
	return &Handler{service: service, eras: eras}
}

// Routes mounts the public and admin building endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public catalogue
	router.Get("/", handler.list)
	router.Get("/{identifier}", handler.get)

	// Admin content management
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)

		admin.Post("/{id}/images", handler.addImage)
		admin.Delete("/{id}/images/{imageID}", handler.deleteImage)
		admin.Patch("/{id}/images/{imageID}/primary", handler.setPrimaryImage)

		admin.Post("/{id}/sources", handler.addSource)
		admin.Delete("/{id}/sources/{sourceID}", handler.deleteSource)
	})

	return router
}

// TimelineRoutes mounts the public timeline endpoint.
func (handler *Handler) TimelineRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.timeline)
	return router
}

// # Public Endpoints

// list handles GET /buildings.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {

	filter := filterFromQuery(request)
	params := pagination.FromRequest(request)

	views, meta, err := handler.service.List(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, views, meta)
}

// get handles GET /buildings/{identifier} (UUID or slug).
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {

	identifier := requestutil.Param(request, "identifier")

	view, err := handler.service.Get(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

// timeline handles GET /timeline.
func (handler *Handler) timeline(writer http.ResponseWriter, request *http.Request) {

	eraID := request.URL.Query().Get("era")
	params := pagination.FromRequestDefault(request, timelinePageSize)

	view, meta, err := handler.service.Timeline(request.Context(), handler.eras, eraID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, view, meta)
}

// # Admin Endpoints

// create handles POST /buildings.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Create(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, view)
}

// update handles PUT /buildings/{id}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Update(request.Context(), id, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

// delete handles DELETE /buildings/{id}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// addImage handles POST /buildings/{id}/images.
func (handler *Handler) addImage(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")

	var input ImageInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.service.AddImage(request.Context(), id, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, image)
}

// deleteImage handles DELETE /buildings/{id}/images/{imageID}.
func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")
	imageID := requestutil.Param(request, "imageID")

	if err := handler.service.DeleteImage(request.Context(), id, imageID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// setPrimaryImage handles PATCH /buildings/{id}/images/{imageID}/primary.
func (handler *Handler) setPrimaryImage(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")
	imageID := requestutil.Param(request, "imageID")

	if err := handler.service.SetPrimaryImage(request.Context(), id, imageID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// addSource handles POST /buildings/{id}/sources.
func (handler *Handler) addSource(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")

	var input SourceInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	source, err := handler.service.AddSource(request.Context(), id, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, source)
}

// deleteSource handles DELETE /buildings/{id}/sources/{sourceID}.
func (handler *Handler) deleteSource(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")
	sourceID := requestutil.Param(request, "sourceID")

	if err := handler.service.DeleteSource(request.Context(), id, sourceID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Query Parsing

// filterFromQuery maps list query parameters onto the canonical [Filter].
// Unknown or empty parameters simply leave their field unset.
func filterFromQuery(request *http.Request) Filter {

	query := request.URL.Query()

	filter := Filter{
		Query:    strings.TrimSpace(query.Get("q")),
		EraID:    query.Get("era"),
		RegionID: query.Get("region"),
		TypeID:   query.Get("type"),
		Sort:     query.Get("sort"),
		SortDir:  query.Get("dir"),
	}

	if status := Status(strings.ToUpper(query.Get("status"))); status.IsValid() {
		filter.Status = status
	}

	// material accepts a comma-separated UUID list
	if raw := query.Get("material"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				filter.MaterialIDs = append(filter.MaterialIDs, id)
			}
		}
	}

	return filter
}

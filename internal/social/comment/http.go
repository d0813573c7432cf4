// Copyright (c) 2026 Arch.krd. All rights reserved.

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/archkrd/api/internal/platform/middleware"
	requestutil "github.com/archkrd/api/internal/platform/request"
	"github.com/archkrd/api/internal/platform/respond"
	"github.com/archkrd/api/internal/platform/validate"
)

// Handler exposes comments over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs the comment HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the comment endpoints. Reading a thread is public; posting
// and deleting require a login.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth())

		authed.Post("/", handler.create)
		authed.Delete("/{id}", handler.delete)
	})

	return router
}

// list handles GET /comments?buildingId=.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {

	buildingID := request.URL.Query().Get("buildingId")
	if buildingID == "" {
		respond.Error(writer, request, validate.RequiredError(FieldBuildingID, "This query parameter is required"))
		return
	}

	comments, err := handler.service.ListByBuilding(request.Context(), buildingID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comments)
}

// create handles POST /comments.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.Create(request.Context(), claims, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment)
}

// delete handles DELETE /comments/{id}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), claims, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

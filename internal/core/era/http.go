// Copyright (c) 2026 Arch.krd. All rights reserved.

package era

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/archkrd/api/internal/platform/middleware"
	requestutil "github.com/archkrd/api/internal/platform/request"
	"github.com/archkrd/api/internal/platform/respond"
	"github.com/archkrd/api/internal/platform/sec"
)

// Handler exposes eras over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs the era HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the public list and the admin CRUD endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

// list handles GET /eras.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {

	eras, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, eras)
}

// create handles POST /eras.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	e, err := handler.service.Create(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, e)
}

// update handles PUT /eras/{id}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	e, err := handler.service.Update(request.Context(), id, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, e)
}

// delete handles DELETE /eras/{id}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

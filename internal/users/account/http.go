// Copyright (c) 2026 Arch.krd. All rights reserved.

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/archkrd/api/internal/platform/middleware"
	requestutil "github.com/archkrd/api/internal/platform/request"
	"github.com/archkrd/api/internal/platform/respond"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/pkg/pagination"
)

// Handler exposes user administration over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs the account HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the admin user-management endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/", handler.list)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

// MeRoutes mounts the self-profile endpoint.
func (handler *Handler) MeRoutes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth())
	router.Get("/me", handler.me)

	return router
}

// list handles GET /users.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {

	params := pagination.FromRequest(request)

	users, meta, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, meta)
}

// me handles GET /account/me.
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Me(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// update handles PUT /users/{id}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Update(request.Context(), id, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// delete handles DELETE /users/{id}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {

	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/archkrd/api/internal/platform/respond"
)

// Handler exposes the master-data lists over HTTP.
type Handler struct {
	repository Repository
}

// NewHandler constructs the reference HTTP handler.
func NewHandler(repository Repository) *Handler {
	return &Handler{repository: repository}
}

// RoutesFor mounts the list endpoint of one master-data kind; the api package
// mounts one router each at /regions, /building-types, and /materials.
func (handler *Handler) RoutesFor(kind Kind) chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list(kind))
	return router
}

// list handles GET for a single master-data kind.
func (handler *Handler) list(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {

		entries, err := handler.repository.List(request.Context(), kind)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, entries)
	}
}

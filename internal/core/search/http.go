// Copyright (c) 2026 Arch.krd. All rights reserved.

package search

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/archkrd/api/internal/platform/respond"
)

// maxResults caps one quick-search response.
const maxResults = 10

// Handler exposes the quick search over HTTP.
type Handler struct {
	repository Repository
}

// NewHandler constructs the search HTTP handler.
func NewHandler(repository Repository) *Handler {
	return &Handler{repository: repository}
}

// Routes mounts the quick-search endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.search)
	return router
}

// search handles GET /search?q=.
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {

	term := strings.TrimSpace(request.URL.Query().Get("q"))

	// An empty term yields an empty suggestion list, not an error
	if term == "" {
		respond.OK(writer, []Result{})
		return
	}

	results, err := handler.repository.Search(request.Context(), term, maxResults)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}

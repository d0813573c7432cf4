// Copyright (c) 2026 Arch.krd. All rights reserved.

package media

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/ctxutil"
	"github.com/archkrd/api/internal/platform/middleware"
	"github.com/archkrd/api/internal/platform/respond"
	"github.com/archkrd/api/internal/platform/sec"
	"github.com/archkrd/api/pkg/uuidv7"
)

const (
	// maxUploadBytes caps one multipart request (32 MiB).
	maxUploadBytes = 32 << 20

	// formFieldName is the multipart field carrying the files.
	formFieldName = "images"

	// keyPrefix namespaces catalogue uploads inside the bucket.
	keyPrefix = "buildings"
)

// Handler exposes the image upload endpoint.
type Handler struct {
	storage ObjectStorage
}

// NewHandler constructs the media HTTP handler.
func NewHandler(storage ObjectStorage) *Handler {
	return &Handler{storage: storage}
}

// Routes mounts the admin upload endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireRole(sec.RoleAdmin))
	router.Post("/images", handler.uploadImages)

	return router
}

// uploadResponse is the payload of a successful upload.
type uploadResponse struct {
	URLs []string `json:"urls"`
}

/*
uploadImages handles POST /media/images (multipart).

Description: Each file in the "images" field streams to object storage under
a fresh UUIDv7 key. Only image content types are accepted. The response
carries the public URLs; associating them with a building is a separate
admin call, so a failure here never touches catalogue rows.
*/
func (handler *Handler) uploadImages(writer http.ResponseWriter, request *http.Request) {

	request.Body = http.MaxBytesReader(writer, request.Body, maxUploadBytes)

	if err := request.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart payload"))
		return
	}

	files := request.MultipartForm.File[formFieldName]
	if len(files) == 0 {
		respond.Error(writer, request, apperr.ValidationError("At least one image file is required"))
		return
	}

	logger := ctxutil.GetLogger(request.Context())
	urls := make([]string, 0, len(files))

	for _, header := range files {

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			respond.Error(writer, request, apperr.ValidationError(
				fmt.Sprintf("Unsupported content type %q for %s", contentType, header.Filename),
			))
			return
		}

		url, err := handler.uploadOne(request, header, contentType)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		logger.InfoContext(request.Context(), "image_uploaded",
			slog.String("url", url),
			slog.Int64("size_bytes", header.Size),
		)

		urls = append(urls, url)
	}

	respond.Created(writer, uploadResponse{URLs: urls})
}

// uploadOne streams a single multipart file into object storage.
func (handler *Handler) uploadOne(request *http.Request, header *multipart.FileHeader, contentType string) (string, error) {

	file, err := header.Open()
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("media: failed to open upload: %w", err))
	}
	defer file.Close()

	// Keep the original extension for content-type sniffing by CDNs
	extension := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("%s/%s%s", keyPrefix, uuidv7.New(), extension)

	url, err := handler.storage.Put(request.Context(), key, contentType, file)
	if err != nil {
		return "", apperr.Internal(err)
	}

	return url, nil
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/archkrd/api/internal/platform/constants"
	"github.com/archkrd/api/internal/platform/middleware"
	requestutil "github.com/archkrd/api/internal/platform/request"
	"github.com/archkrd/api/internal/platform/respond"
)

// CookieConfig controls the refresh-token cookie attributes.
type CookieConfig interface {
	IsProduction() bool
}

// Handler exposes the authentication flows over HTTP.
type Handler struct {
	service *Service
	config  CookieConfig
}

// NewHandler constructs the auth HTTP handler.
func NewHandler(service *Service, config CookieConfig) *Handler {
	return &Handler{service: service, config: config}
}

// Routes mounts the auth endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)
	router.Post("/forgot-password", handler.forgotPassword)
	router.Post("/reset-password", handler.resetPassword)

	return router
}

// register handles POST /auth/register.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {

	var input RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

// login handles POST /auth/login.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {

	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, refreshToken, err := handler.service.Login(request.Context(), &input, clientInfo(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, refreshToken, RefreshTokenTTL)
	respond.OK(writer, pair)
}

// refresh handles POST /auth/refresh.
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {

	pair, nextToken, err := handler.service.RefreshSession(request.Context(), refreshCookie(request), clientInfo(request))
	if err != nil {
		handler.clearRefreshCookie(writer)
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, nextToken, RefreshTokenTTL)
	respond.OK(writer, pair)
}

// logout handles POST /auth/logout.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {

	if err := handler.service.Logout(request.Context(), refreshCookie(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.clearRefreshCookie(writer)
	respond.NoContent(writer)
}

// forgotPassword handles POST /auth/forgot-password.
//
// The response is identical for known and unknown emails.
func (handler *Handler) forgotPassword(writer http.ResponseWriter, request *http.Request) {

	var input struct {
		Email string `json:"email"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// TODO: deliver the token via the mailer once the SMTP relay is provisioned
	if _, err := handler.service.RequestPasswordReset(request.Context(), input.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "If the email is registered, a reset link has been sent",
	})
}

// resetPassword handles POST /auth/reset-password.
func (handler *Handler) resetPassword(writer http.ResponseWriter, request *http.Request) {

	var input struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ResetPassword(request.Context(), input.Token, input.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "Password has been reset",
	})
}

// # Cookie Plumbing

// setRefreshCookie writes the HttpOnly refresh-token cookie, scoped to the
// auth endpoints so it never travels with regular API calls.
func (handler *Handler) setRefreshCookie(writer http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    token,
		Path:     constants.RefreshTokenCookiePath,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   handler.config.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

// clearRefreshCookie expires the refresh-token cookie.
func (handler *Handler) clearRefreshCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    "",
		Path:     constants.RefreshTokenCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.config.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

// refreshCookie reads the raw refresh token, "" when absent.
func refreshCookie(request *http.Request) string {
	cookie, err := request.Cookie(constants.RefreshTokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// clientInfo captures session metadata from the request.
func clientInfo(request *http.Request) ClientInfo {
	return ClientInfo{
		UserAgent: request.UserAgent(),
		IPAddress: middleware.RealIP(request),
	}
}

// Copyright (c) 2026 Arch.krd. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/archkrd/api/internal/platform/constants"
	"github.com/archkrd/api/internal/platform/ctxutil"
	"github.com/archkrd/api/internal/platform/sec"
)

// # Authentication & Authorization

// TokenVerifier defines the behavior needed to validate access tokens.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Authenticate parses the Bearer token if present and injects the user claims
// into the request context. It never rejects a request on its own; routes that
// require a login must additionally use [RequireAuth] or [RequireRole].
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Look for the Authorization header
			authHeader := request.Header.Get(constants.HeaderAuthorization)
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// 2. Expect the "Bearer <token>" scheme
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found {
				next.ServeHTTP(writer, request)
				return
			}

			// 3. Verify the token signature and expiry
			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				// A malformed or expired token on a public route is treated
				// as anonymous; protected routes reject downstream.
				next.ServeHTTP(writer, request)
				return
			}

			// 4. Inject the verified identity into the context
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth rejects unauthenticated requests with 401.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if ctxutil.GetAuthUser(request.Context()) == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// RequireRole rejects requests whose authenticated role is below the minimum.
//
// An anonymous request receives 401; an authenticated request with an
// insufficient role receives 403.
func RequireRole(minimum sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			role := sec.UserRole(claims.Role)
			if !role.AtLeast(minimum) {
				writeError(writer, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

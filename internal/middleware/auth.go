package middleware

import (
	"context"
	"net/http"

	"github.com/controlcar/backend/internal/auth"
)

// contextKey is a private type for context keys so other packages cannot
// collide with values stored by this middleware.
type contextKey string

const claimsContextKey contextKey = "auth_claims"

// NewAuthenticator returns a middleware that requires a valid bearer token on
// every request it wraps. The token is validated with the given auth service
// and the resulting claims are stored in the request context, retrievable via
// ClaimsFromContext.
func NewAuthenticator(authSvc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeUnauthorized(w, "authorization header required")
				return
			}

			claims, err := authSvc.ValidateToken(header)
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts the authenticated user's claims from the request
// context. The second return is false when the request did not pass through
// the authenticator.
func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(auth.Claims)
	return claims, ok
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":{"code":"unauthorized","message":"` + msg + `"}}`))
}

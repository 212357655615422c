// Package middleware provides HTTP middleware for the admin API,
// validating the session cookie issued at login.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iqmath/iqmath-server/pkg/config"
	"github.com/iqmath/iqmath-server/pkg/session"
)

type contextKey string

const claimsKey contextKey = "sessionClaims"

// SessionAuthenticator is middleware that validates the session cookie
type SessionAuthenticator struct{}

// NewSessionAuthenticator creates a new session authenticator middleware
func NewSessionAuthenticator() *SessionAuthenticator {
	return &SessionAuthenticator{}
}

// ClaimsFromContext returns the session claims stashed by the middleware,
// or nil when the request is unauthenticated.
func ClaimsFromContext(ctx context.Context) *session.Claims {
	claims, _ := ctx.Value(claimsKey).(*session.Claims)
	return claims
}

// verify reads and verifies the session cookie. Returns nil when the
// cookie is absent, expired or tampered with.
func verify(r *http.Request) *session.Claims {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return nil
	}
	return session.Verify(cookie.Value, config.Get().SessionSigningKey)
}

// Middleware returns an HTTP middleware that rejects requests without a
// valid session cookie.
func (a *SessionAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := verify(r)
		if claims == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "Unauthorized",
			})
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional returns an HTTP middleware that stashes session claims when a
// valid cookie is present but lets anonymous requests through. Public
// list endpoints use it to decide whether hidden records are included.
func (a *SessionAuthenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := verify(r); claims != nil {
			r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtinfra "github.com/finsync/mailer/internal/infrastructure/jwt"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// TriggerAuth returns middleware that validates the RS256 Bearer token the
// account system attaches to trigger webhook calls and injects its claims
// into the request context. Routes stay open when no verifier is configured;
// the router installs a passthrough instead of this middleware.
func TriggerAuth(verifier *jwtinfra.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				reject(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}
			claims, err := verifier.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				reject(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts trigger token claims from the request context.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*jwtinfra.Claims)
	return c, ok
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	h "alumninexus/internal/delivery/http/helpers"
	"alumninexus/internal/domain"
)

type contextKey string

const roleKey contextKey = "role"

// SetRole returns a context with the portal role set. Used by the role middleware.
func SetRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromContext returns the verified portal role from the context, if present.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

// RequireRole returns a wrapper that validates the Bearer role token and
// checks it carries one of the allowed roles. Disabled passes every request
// through untouched, leaving the API fully open.
func RequireRole(verifier domain.RoleTokenVerifier, disabled bool, allowed ...string) func(http.HandlerFunc) http.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if disabled {
				next(w, r)
				return
			}
			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, "missing or malformed authorization header")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, "missing token")
				return
			}
			role, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if _, ok := allowedSet[role]; !ok {
				h.WriteJSONError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next(w, r.WithContext(SetRole(r.Context(), role)))
		}
	}
}

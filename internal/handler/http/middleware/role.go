package middleware

import (
	"fmt"
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

// RequirePermission checks the guarded user's role against the permission table
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := session.UserFromContext(r.Context())
			if !ok {
				unauthenticated(w, r)
				return
			}

			if !user.HasPermission(u.Role, permission) {
				forbidden(w, r, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, u.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

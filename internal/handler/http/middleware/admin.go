package middleware

import (
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/response"
)

// AdminOnly must run after Guard.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := session.UserFromContext(r.Context())
		if !ok {
			unauthenticated(w, r)
			return
		}

		if !u.IsAdmin() {
			forbidden(w, r, user.ErrAdminAccessRequired.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func forbidden(w http.ResponseWriter, r *http.Request, message string) {
	if WantsJSON(r) {
		response.Forbidden(w, message)
		return
	}
	http.Error(w, message, http.StatusForbidden)
}

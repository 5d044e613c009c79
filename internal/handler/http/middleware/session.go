package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/jwt"
	"github.com/google/uuid"
)

// Session resolves the browser's session id from the signed cookie. A missing
// or tampered cookie starts a new, empty session. A cookie past half its
// lifetime is re-issued for the same session so it keeps pace with the
// sliding store TTL.
func Session(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			var (
				sid     string
				expires time.Time
			)
			if cookie, err := r.Cookie(jwtService.CookieName()); err == nil {
				sid, expires, _ = jwtService.Parse(cookie.Value)
			}

			renew := sid != "" && jwtService.NeedsRenewal(expires)
			if sid == "" {
				sid = uuid.NewString()
				renew = true
			}
			if renew {
				token, expiresAt, err := jwtService.Issue(sid)
				if err != nil {
					slog.Error("issue session cookie", "error", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, jwtService.Cookie(token, expiresAt))
			}

			next.ServeHTTP(w, r.WithContext(session.WithID(r.Context(), sid)))
		}
		return http.HandlerFunc(hfn)
	}
}

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/response"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/apiclient"
)

// Authenticator is the part of the session service the guard needs.
type Authenticator interface {
	Authenticate(ctx context.Context, id string) (*user.User, string, error)
}

// Guard validates the session token against the backend on every request it
// wraps. The profile and bearer token are put on the request context.
func Guard(sessions Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			u, token, err := sessions.Authenticate(ctx, session.IDFromContext(ctx))
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				if !errors.Is(err, session.ErrUnauthenticated) {
					slog.Error("session guard", "error", err)
				}
				unauthenticated(w, r)
				return
			}

			ctx = session.WithUser(ctx, u)
			ctx = apiclient.WithToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthenticated(w http.ResponseWriter, r *http.Request) {
	if WantsJSON(r) {
		response.Unauthorized(w, "Session expired")
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// WantsJSON is true for fetch calls from the layout script and the event stream.
func WantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") || strings.Contains(accept, "text/event-stream")
}

package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/flash"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/apiclient"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
)

// pages holds what every page handler needs to render and to react to a
// rejected token.
type pages struct {
	view     *view.Renderer
	sessions session.Service
}

// show renders page. A fetch error is shown as a flash on the same page.
func (p *pages) show(w http.ResponseWriter, r *http.Request, page view.Page, err error) {
	if err != nil {
		if p.expired(w, r, err) {
			return
		}
		slog.Error(page.Name+" fetch error", "error", err)
		f := flash.FromError(r.Context(), err)
		page.Flash = &f
	}
	p.view.Render(w, r, page)
}

// fail redirects back to the form with the error as a flash.
func (p *pages) fail(w http.ResponseWriter, r *http.Request, op string, err error, back string) {
	if p.expired(w, r, err) {
		return
	}

	var validationErrs validator.ValidationErrors
	var apiErr *apiclient.APIError
	switch {
	case errors.As(err, &validationErrs):
		slog.Debug(op+" validate error", "error", err)
	case errors.As(err, &apiErr) && apiErr.StatusCode < 500:
		slog.Info(op+" rejected by backend", "status", apiErr.StatusCode, "message", apiErr.Message)
	default:
		slog.Error(op+" service error", "error", err)
	}

	flash.Set(w, flash.FromError(r.Context(), err))
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// done is the success half of post/redirect/get.
func (p *pages) done(w http.ResponseWriter, r *http.Request, messageID string, back string, data ...map[string]any) {
	flash.Set(w, flash.Success(r.Context(), messageID, data...))
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// expired clears the session and sends the browser to /login when the backend
// rejected the token.
func (p *pages) expired(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, apiclient.ErrUnauthorized) && !errors.Is(err, session.ErrUnauthenticated) {
		return false
	}
	ctx := r.Context()
	if err := p.sessions.Expire(context.WithoutCancel(ctx), session.IDFromContext(ctx)); err != nil {
		slog.Error("expire session", "error", err)
	}
	flash.Set(w, flash.FromError(ctx, err))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

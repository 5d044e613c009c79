package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/auth"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/flash"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/apiclient"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/jwt"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/validator"
)

type AuthHandler interface {
	LoginPage(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	view          *view.Renderer
	jwtService    jwt.Service
	sessions      session.Service
	notifications notification.Service
}

type loginData struct {
	Email string
}

// LoginPage implements AuthHandler.
func (a *AuthHandlerImpl) LoginPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if token, err := a.sessions.Token(ctx, session.IDFromContext(ctx)); err == nil && token != "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	a.view.Render(w, r, view.Page{Name: "login", Title: "page.login", Data: loginData{}})
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Error("Login decode error", "error", err)
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	loginReq := auth.LoginRequest{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}

	ctx := r.Context()
	u, err := a.sessions.Login(ctx, session.IDFromContext(ctx), loginReq)
	if err != nil {
		status := http.StatusBadGateway
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, auth.ErrInvalidCredentials):
			status = http.StatusUnauthorized
		case errors.Is(err, apiclient.ErrUnavailable):
			slog.Error("Login service error", "error", err)
		default:
			if _, ok := apiclient.Message(err); ok {
				status = http.StatusBadRequest
			} else {
				slog.Error("Login service error", "error", err)
				status = http.StatusInternalServerError
			}
		}

		f := flash.FromError(ctx, err)
		a.view.Render(w, r, view.Page{
			Name:   "login",
			Title:  "page.login",
			Status: status,
			Data:   loginData{Email: loginReq.Email},
			Flash:  &f,
		})
		return
	}

	slog.Info("User logged in successfully", "user_id", u.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := session.IDFromContext(ctx)

	if err := a.sessions.Logout(ctx, sid); err != nil {
		slog.Error("Logout service error", "error", err)
	}
	a.notifications.Forget(sid)

	http.SetCookie(w, a.jwtService.ExpiredCookie())
	flash.Set(w, flash.Success(ctx, "flash.logged_out"))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func NewAuthHandler(renderer *view.Renderer, jwtService jwt.Service, sessions session.Service, notifications notification.Service) AuthHandler {
	return &AuthHandlerImpl{
		view:          renderer,
		jwtService:    jwtService,
		sessions:      sessions,
		notifications: notifications,
	}
}

package http

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/middleware"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/response"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/sse"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/viewmode"
)

const keepAliveInterval = 25 * time.Second

// shell builds the layout around every guarded page.
type shell struct {
	viewModes     viewmode.ViewModeService
	notifications notification.Service
}

func NewLayoutSource(viewModes viewmode.ViewModeService, notifications notification.Service) view.LayoutSource {
	return &shell{viewModes: viewModes, notifications: notifications}
}

func (s *shell) Layout(r *http.Request) view.Layout {
	ctx := r.Context()
	l := view.Layout{Path: r.URL.Path}

	u, ok := session.UserFromContext(ctx)
	if !ok {
		return l
	}
	sid := session.IDFromContext(ctx)

	userView, err := s.viewModes.Current(ctx, sid)
	if err != nil {
		slog.Warn("read view mode", "error", err)
	}
	l.User = u
	l.AdminView = viewmode.AdminView(u, userView)
	l.Nav = viewmode.NavItems(u, userView)

	snap := s.notifications.Snapshot(sid)
	l.Unread = snap.Unread
	if l.AdminView {
		l.Badge = snap.Badge
		l.Pending = snap.Pending
	}
	return l
}

type LayoutHandler interface {
	Events(w http.ResponseWriter, r *http.Request)
	ToggleViewMode(w http.ResponseWriter, r *http.Request)
	RefreshNotifications(w http.ResponseWriter, r *http.Request)
}

type LayoutHandlerImpl struct {
	pages
	hub             *sse.Hub
	viewModes       viewmode.ViewModeService
	notifications   notification.Service
	viewSwitchDelay time.Duration
}

// Events streams badge, tray and logout events of the caller's session. The
// background polls run while at least one stream of the session is open.
func (h *LayoutHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := session.IDFromContext(ctx)
	rc := http.NewResponseController(w)

	events, unsubscribe := h.hub.Subscribe(sid)
	defer unsubscribe()
	stop := h.notifications.Watch(sid)
	defer stop()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	snap := h.notifications.Snapshot(sid)
	initial := []sse.Event{
		{Event: sse.EventBadge, Data: notification.BadgeEvent{Total: snap.Badge.Total(), Badge: snap.Badge}},
		{Event: sse.EventNotifications, Data: notification.NotificationsEvent{Unread: snap.Unread}},
	}
	for _, ev := range initial {
		if err := ev.Write(w); err != nil {
			return
		}
	}
	if err := rc.Flush(); err != nil {
		slog.Error("Events flush unsupported", "error", err)
		return
	}

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-keepAlive.C:
			if _, err := w.Write([]byte(": ping\n\n")); err != nil {
				return
			}
			_ = rc.Flush()
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Event {
			case sse.EventBadge, sse.EventNotifications, sse.EventLogout:
			default:
				continue
			}
			if err := ev.Write(w); err != nil {
				slog.Debug("Events write error", "error", err)
				return
			}
			_ = rc.Flush()
			if ev.Event == sse.EventLogout {
				return
			}
		}
	}
}

// switchingData drives the interstitial. The script redirect honours the
// exact delay; the meta refresh fallback only takes whole seconds, so it is
// rounded up and never fires before the script.
type switchingData struct {
	Redirect     string
	DelayMillis  int64
	DelaySeconds int
}

func newSwitchingData(redirect string, delay time.Duration) switchingData {
	return switchingData{
		Redirect:     redirect,
		DelayMillis:  delay.Milliseconds(),
		DelaySeconds: int(math.Ceil(delay.Seconds())),
	}
}

// ToggleViewMode implements LayoutHandler.
func (h *LayoutHandlerImpl) ToggleViewMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := session.IDFromContext(ctx)
	u, _ := session.UserFromContext(ctx)

	path := r.PostFormValue("path")
	if path == "" {
		if ref, err := url.Parse(r.Referer()); err == nil {
			path = ref.Path
		}
	}

	transition, err := h.viewModes.Toggle(ctx, sid, u, path)
	if err != nil {
		switch {
		case middleware.WantsJSON(r):
			response.HandleError(w, err)
		case errors.Is(err, user.ErrAdminAccessRequired):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			h.fail(w, r, "ToggleViewMode", err, "/")
		}
		return
	}
	if !transition.UserView {
		// the badge is only maintained for the admin view
		h.notifications.Signal(sid)
	}

	if middleware.WantsJSON(r) {
		response.Success(w, transition)
		return
	}
	h.view.Render(w, r, view.Page{
		Name:  "switching",
		Title: "view.switching",
		Data:  newSwitchingData(transition.Redirect, h.viewSwitchDelay),
	})
}

type refreshResult struct {
	Total  int                `json:"total"`
	Badge  notification.Badge `json:"badge"`
	Unread int                `json:"unread"`
}

// RefreshNotifications refetches the badge lists and the tray right away.
func (h *LayoutHandlerImpl) RefreshNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := session.IDFromContext(ctx)

	badge, err := h.notifications.RefreshPending(ctx, sid)
	var unread int
	if err == nil {
		unread, err = h.notifications.RefreshNotifications(ctx, sid)
	}

	if middleware.WantsJSON(r) {
		if err != nil {
			slog.Error("RefreshNotifications service error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.Success(w, refreshResult{Total: badge.Total(), Badge: badge, Unread: unread})
		return
	}

	if err != nil {
		h.fail(w, r, "RefreshNotifications", err, "/notifications")
		return
	}
	http.Redirect(w, r, "/notifications", http.StatusSeeOther)
}

func NewLayoutHandler(renderer *view.Renderer, sessions session.Service, hub *sse.Hub, viewModes viewmode.ViewModeService, notifications notification.Service, viewSwitchDelay time.Duration) LayoutHandler {
	return &LayoutHandlerImpl{
		pages:           pages{view: renderer, sessions: sessions},
		hub:             hub,
		viewModes:       viewModes,
		notifications:   notifications,
		viewSwitchDelay: viewSwitchDelay,
	}
}

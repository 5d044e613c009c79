package http

import (
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	pages
	notifications notification.Service
}

type notificationsData struct {
	Items []notification.Notification
}

// List handles GET /notifications. It fetches the tray now instead of waiting
// for the next poll.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := session.IDFromContext(ctx)

	_, err := h.notifications.RefreshNotifications(ctx, sid)
	snap := h.notifications.Snapshot(sid)
	h.show(w, r, view.Page{
		Name:  "notifications",
		Title: "nav.notifications",
		Data:  notificationsData{Items: snap.Notifications},
	}, err)
}

func NewNotificationHandler(renderer *view.Renderer, sessions session.Service, notifications notification.Service) NotificationHandler {
	return &notificationHandlerImpl{
		pages:         pages{view: renderer, sessions: sessions},
		notifications: notifications,
	}
}

package http

import (
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)

	List(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	pages
	leaveService leave.LeaveService
}

type leaveData struct {
	Requests []leave.LeaveRequest
	Quota    leave.Quota
	Today    string
}

type adminLeaveData struct {
	Requests []leave.LeaveRequest
}

// Mine handles GET /leave. The quota comes from the cached profile, which the
// layout's profile poll keeps fresh.
func (l *LeaveHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, _ := session.UserFromContext(ctx)

	requests, err := l.leaveService.ListLeaveRequest(ctx)
	l.show(w, r, view.Page{
		Name:  "leave",
		Title: "nav.leave",
		Data: leaveData{
			Requests: requests,
			Quota:    leave.QuotaFor(profile),
			Today:    today(),
		},
	}, err)
}

// Create handles POST /leave
func (l *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := parseForm(r); err != nil {
		l.fail(w, r, "CreateLeaveRequest", err, "/leave")
		return
	}

	attachment, err := storage.FormFile(r, "attachment", storage.AttachmentOptions)
	if err != nil {
		l.fail(w, r, "CreateLeaveRequest", err, "/leave")
		return
	}
	req := leave.CreateLeaveRequest{
		StartDate:  r.PostFormValue("startDate"),
		EndDate:    r.PostFormValue("endDate"),
		Reason:     r.PostFormValue("reason"),
		Type:       leave.Type(r.PostFormValue("type")),
		Attachment: attachment,
	}

	profile, _ := session.UserFromContext(ctx)
	if _, err := l.leaveService.CreateLeaveRequest(ctx, profile, req); err != nil {
		l.fail(w, r, "CreateLeaveRequest", err, "/leave")
		return
	}
	l.done(w, r, "flash.leave_submitted", "/leave")
}

// Cancel handles POST /leave/{id}/cancel
func (l *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		l.fail(w, r, "CancelLeaveRequest", err, "/leave")
		return
	}
	current := request.Status(r.PostFormValue("current"))
	if err := l.leaveService.CancelLeaveRequest(r.Context(), chi.URLParam(r, "id"), current); err != nil {
		l.fail(w, r, "CancelLeaveRequest", err, "/leave")
		return
	}
	l.done(w, r, "flash.leave_cancelled", "/leave")
}

// List handles GET /admin/leave
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.ListLeaveRequest(r.Context())
	l.show(w, r, view.Page{
		Name:  "admin_leave",
		Title: "nav.leave",
		Data:  adminLeaveData{Requests: requests},
	}, err)
}

// Decide handles POST /admin/leave/{id}/decision
func (l *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/leave"
	if err := parseForm(r); err != nil {
		l.fail(w, r, "DecideLeaveRequest", err, back)
		return
	}
	decision, current, err := decisionForm(r)
	if err != nil {
		l.fail(w, r, "DecideLeaveRequest", err, back)
		return
	}

	req := leave.DecideLeaveRequest{
		ID:       chi.URLParam(r, "id"),
		Decision: decision,
		Current:  current,
	}
	if err := l.leaveService.DecideLeaveRequest(r.Context(), req); err != nil {
		l.fail(w, r, "DecideLeaveRequest", err, back)
		return
	}
	l.done(w, r, decidedMessage(decision), back)
}

func NewLeaveHandler(renderer *view.Renderer, sessions session.Service, leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		pages:        pages{view: renderer, sessions: sessions},
		leaveService: leaveService,
	}
}

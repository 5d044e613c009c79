package http

import (
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/attendance"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	RequestStatusChange(w http.ResponseWriter, r *http.Request)

	List(w http.ResponseWriter, r *http.Request)
	StatusRequests(w http.ResponseWriter, r *http.Request)
	DecideStatusRequest(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	pages
	attendanceService attendance.AttendanceService
}

type attendanceData struct {
	Rows     []attendance.Attendance
	Statuses []attendance.CheckInStatus
}

type adminAttendanceData struct {
	Rows   []attendance.Attendance
	Filter attendance.ListFilter
}

type statusRequestsData struct {
	Requests []attendance.StatusRequest
}

// Mine handles GET /attendance
func (h *AttendanceHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	rows, err := h.attendanceService.GetMyAttendance(r.Context())
	h.show(w, r, view.Page{
		Name:  "attendance",
		Title: "nav.attendance",
		Data:  attendanceData{Rows: rows, Statuses: attendance.AllCheckInStatuses()},
	}, err)
}

// RequestStatusChange handles POST /attendance/status-requests
func (h *AttendanceHandlerImpl) RequestStatusChange(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, "RequestStatusChange", err, "/attendance")
		return
	}
	req := attendance.CreateStatusRequest{
		AttendanceID:    r.PostFormValue("attendanceId"),
		CurrentStatus:   attendance.CheckInStatus(r.PostFormValue("currentStatus")),
		RequestedStatus: attendance.CheckInStatus(r.PostFormValue("requestedStatus")),
		Reason:          r.PostFormValue("reason"),
	}

	if _, err := h.attendanceService.RequestStatusChange(r.Context(), req); err != nil {
		h.fail(w, r, "RequestStatusChange", err, "/attendance")
		return
	}
	h.done(w, r, "flash.status_request_submitted", "/attendance")
}

// List handles GET /admin/attendance
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := attendance.ListFilter{
		UserID:    q.Get("userId"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}

	rows, err := h.attendanceService.ListAttendance(r.Context(), filter)
	h.show(w, r, view.Page{
		Name:  "admin_attendance",
		Title: "nav.attendance",
		Data:  adminAttendanceData{Rows: rows, Filter: filter},
	}, err)
}

// StatusRequests handles GET /admin/attendance-requests
func (h *AttendanceHandlerImpl) StatusRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.attendanceService.ListStatusRequests(r.Context())
	h.show(w, r, view.Page{
		Name:  "attendance_requests",
		Title: "nav.attendance_requests",
		Data:  statusRequestsData{Requests: requests},
	}, err)
}

// DecideStatusRequest handles POST /admin/attendance-requests/{id}/decision
func (h *AttendanceHandlerImpl) DecideStatusRequest(w http.ResponseWriter, r *http.Request) {
	const back = "/admin/attendance-requests"
	if err := parseForm(r); err != nil {
		h.fail(w, r, "DecideStatusRequest", err, back)
		return
	}
	decision, current, err := decisionForm(r)
	if err != nil {
		h.fail(w, r, "DecideStatusRequest", err, back)
		return
	}

	req := attendance.DecideStatusRequest{
		ID:        chi.URLParam(r, "id"),
		Decision:  decision,
		Current:   current,
		AdminNote: r.PostFormValue("adminNote"),
	}
	if err := h.attendanceService.DecideStatusRequest(r.Context(), req); err != nil {
		h.fail(w, r, "DecideStatusRequest", err, back)
		return
	}
	h.done(w, r, decidedMessage(decision), back)
}

func NewAttendanceHandler(renderer *view.Renderer, sessions session.Service, attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		pages:             pages{view: renderer, sessions: sessions},
		attendanceService: attendanceService,
	}
}

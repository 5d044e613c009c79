package http

import (
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/attendance"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/view"
	"golang.org/x/sync/errgroup"
)

// recentAttendance is how many rows the dashboard shows.
const recentAttendance = 5

type DashboardHandler interface {
	Show(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	pages
	attendanceService attendance.AttendanceService
}

type dashboardData struct {
	Profile    *user.User
	Quota      leave.Quota
	Attendance []attendance.Attendance
}

// Show handles GET /
func (h *dashboardHandlerImpl) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := session.IDFromContext(ctx)

	var data dashboardData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := h.sessions.RefreshProfile(gctx, sid)
		if err != nil {
			return err
		}
		data.Profile = profile
		return nil
	})
	g.Go(func() error {
		rows, err := h.attendanceService.GetMyAttendance(gctx)
		if err != nil {
			return err
		}
		if len(rows) > recentAttendance {
			rows = rows[:recentAttendance]
		}
		data.Attendance = rows
		return nil
	})
	err := g.Wait()

	if data.Profile == nil {
		data.Profile, _ = session.UserFromContext(ctx)
	}
	data.Quota = leave.QuotaFor(data.Profile)

	h.show(w, r, view.Page{Name: "dashboard", Title: "nav.dashboard", Data: data}, err)
}

func NewDashboardHandler(renderer *view.Renderer, sessions session.Service, attendanceService attendance.AttendanceService) DashboardHandler {
	return &dashboardHandlerImpl{
		pages:             pages{view: renderer, sessions: sessions},
		attendanceService: attendanceService,
	}
}

package viewmode

import (
	"context"
	"strings"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

// pairedRoutes have both an admin and a user view. Every other route keeps
// its path when the view flips.
var pairedRoutes = map[string]bool{
	"attendance":   true,
	"leave":        true,
	"daily-report": true,
	"payroll":      true,
	"performance":  true,
}

// PairedPath maps /admin/X to /X and back for the paired routes.
func PairedPath(path string) (string, bool) {
	trimmed := strings.TrimSuffix(path, "/")
	if rest, ok := strings.CutPrefix(trimmed, "/admin/"); ok {
		if pairedRoutes[rest] {
			return "/" + rest, true
		}
		return path, false
	}
	if rest, ok := strings.CutPrefix(trimmed, "/"); ok && pairedRoutes[rest] {
		return "/admin/" + rest, true
	}
	return path, false
}

// NavItem is one entry of the sidebar. Label is an i18n message id.
type NavItem struct {
	Label string
	Path  string
	// Badge marks the entry that shows the pending counter.
	Badge bool
}

type navEntry struct {
	item       NavItem
	permission user.Permission
	adminView  bool
}

var navigation = []navEntry{
	{NavItem{Label: "nav.dashboard", Path: "/"}, user.PermissionViewOwnProfile, false},
	{NavItem{Label: "nav.attendance", Path: "/attendance"}, user.PermissionAttendanceOwn, false},
	{NavItem{Label: "nav.leave", Path: "/leave"}, user.PermissionLeaveOwn, false},
	{NavItem{Label: "nav.daily_report", Path: "/daily-report"}, user.PermissionDailyReportOwn, false},
	{NavItem{Label: "nav.payroll", Path: "/payroll"}, user.PermissionPayrollOwn, false},
	{NavItem{Label: "nav.performance", Path: "/performance"}, user.PermissionPerformanceOwn, false},
	{NavItem{Label: "nav.notifications", Path: "/notifications"}, user.PermissionNotificationsOwn, false},

	{NavItem{Label: "nav.dashboard", Path: "/"}, user.PermissionAttendanceViewAll, true},
	{NavItem{Label: "nav.attendance", Path: "/admin/attendance"}, user.PermissionAttendanceViewAll, true},
	{NavItem{Label: "nav.attendance_requests", Path: "/admin/attendance-requests", Badge: true}, user.PermissionAttendanceApprove, true},
	{NavItem{Label: "nav.leave", Path: "/admin/leave", Badge: true}, user.PermissionLeaveApprove, true},
	{NavItem{Label: "nav.daily_report", Path: "/admin/daily-report"}, user.PermissionDailyReportManage, true},
	{NavItem{Label: "nav.edit_requests", Path: "/admin/daily-report-edit-requests", Badge: true}, user.PermissionDailyReportApprove, true},
	{NavItem{Label: "nav.payroll", Path: "/admin/payroll"}, user.PermissionPayrollManage, true},
	{NavItem{Label: "nav.performance", Path: "/admin/performance"}, user.PermissionPerformanceViewAll, true},
	{NavItem{Label: "nav.users", Path: "/admin/users"}, user.PermissionUserManage, true},
	{NavItem{Label: "nav.reports", Path: "/admin/reports"}, user.PermissionReportsView, true},
	{NavItem{Label: "nav.device", Path: "/admin/device"}, user.PermissionDeviceManage, true},
	{NavItem{Label: "nav.notifications", Path: "/notifications"}, user.PermissionNotificationsOwn, true},
}

// AdminView reports whether u sees the admin navigation: an admin who has
// not switched to the user view.
func AdminView(u *user.User, userView bool) bool {
	return u != nil && u.IsAdmin() && !userView
}

// NavItems returns the sidebar for u in the given mode.
func NavItems(u *user.User, userView bool) []NavItem {
	if u == nil {
		return nil
	}
	admin := AdminView(u, userView)
	items := make([]NavItem, 0, len(navigation))
	for _, e := range navigation {
		if e.adminView != admin {
			continue
		}
		if !user.HasPermission(u.Role, e.permission) {
			continue
		}
		items = append(items, e.item)
	}
	return items
}

// Transition is the outcome of a view flip.
type Transition struct {
	UserView bool   `json:"userView"`
	Redirect string `json:"redirect"`
}

type ViewModeService interface {
	Current(ctx context.Context, sessionID string) (bool, error)
	// Toggle flips the flag and returns where the browser should land.
	Toggle(ctx context.Context, sessionID string, u *user.User, currentPath string) (Transition, error)
}

type viewModeServiceImpl struct {
	sessions session.Service
}

func (s *viewModeServiceImpl) Current(ctx context.Context, sessionID string) (bool, error) {
	return s.sessions.UserViewMode(ctx, sessionID)
}

func (s *viewModeServiceImpl) Toggle(ctx context.Context, sessionID string, u *user.User, currentPath string) (Transition, error) {
	if u == nil || !u.IsAdmin() {
		return Transition{}, user.ErrAdminAccessRequired
	}

	current, err := s.sessions.UserViewMode(ctx, sessionID)
	if err != nil {
		return Transition{}, err
	}
	next := !current
	if err := s.sessions.SetUserViewMode(ctx, sessionID, next); err != nil {
		return Transition{}, err
	}

	redirect := currentPath
	if redirect == "" || !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
		redirect = "/"
	}
	if paired, ok := PairedPath(redirect); ok {
		toUser := !strings.HasPrefix(paired, "/admin/")
		// only move in the direction of the new mode
		if toUser == next {
			redirect = paired
		}
	}
	return Transition{UserView: next, Redirect: redirect}, nil
}

func NewViewModeService(sessions session.Service) ViewModeService {
	return &viewModeServiceImpl{sessions: sessions}
}

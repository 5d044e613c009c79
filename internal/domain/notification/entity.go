package notification

import (
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/common"
)

// Notification represents a notification shown in the tray
type Notification struct {
	ID        common.ID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// PendingKind identifies one of the three request lists behind the badge.
type PendingKind string

const (
	KindLeave            PendingKind = "leave"
	KindAttendanceStatus PendingKind = "attendanceStatus"
	KindDailyReportEdit  PendingKind = "dailyReportEdit"
)

// AllPendingKinds returns the kinds in display order
func AllPendingKinds() []PendingKind {
	return []PendingKind{KindLeave, KindAttendanceStatus, KindDailyReportEdit}
}

// Link is the admin page where requests of this kind are decided.
func (k PendingKind) Link() string {
	switch k {
	case KindLeave:
		return "/admin/leave"
	case KindAttendanceStatus:
		return "/admin/attendance-requests"
	case KindDailyReportEdit:
		return "/admin/daily-report-edit-requests"
	}
	return "/"
}

// PendingItem is one row of the notification tray.
type PendingItem struct {
	Kind      PendingKind
	ID        string
	UserName  string
	Summary   string
	CreatedAt *time.Time
}

// Badge holds the size of each pending list.
type Badge struct {
	Leave            int `json:"leave"`
	AttendanceStatus int `json:"attendanceStatus"`
	DailyReportEdit  int `json:"dailyReportEdit"`
}

// Total is the number shown on the bell. The lists never overlap.
func (b Badge) Total() int {
	return b.Leave + b.AttendanceStatus + b.DailyReportEdit
}

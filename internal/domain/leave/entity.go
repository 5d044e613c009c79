package leave

import (
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/common"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

// Type of leave. Izin is unpaid permission; Cuti consumes annual quota.
type Type string

const (
	TypeIzin Type = "Izin"
	TypeCuti Type = "Cuti"
)

func (t Type) ConsumesQuota() bool {
	return t == TypeCuti
}

type LeaveRequest struct {
	ID         common.ID      `json:"id"`
	UserID     common.ID      `json:"userId"`
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	Reason     string         `json:"reason"`
	Status     request.Status `json:"status"`
	Type       Type           `json:"type"`
	Attachment string         `json:"attachment,omitempty"`
	CreatedAt  *time.Time     `json:"createdAt,omitempty"`

	User *user.Summary `json:"user,omitempty"`
}

func (l LeaveRequest) RequestStatus() request.Status {
	return l.Status
}

// Days counts the calendar days covered by the request, both ends included.
func (l LeaveRequest) Days() int {
	start, err := time.Parse("2006-01-02", dateOnly(l.StartDate))
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", dateOnly(l.EndDate))
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Quota is the annual leave allowance as shown on the leave page.
type Quota struct {
	Total     int
	Used      int
	Remaining int
}

// QuotaFor derives the quota from the cached profile. Remaining keeps the raw
// difference, so an over-used quota is negative.
func QuotaFor(u *user.User) Quota {
	if u == nil {
		return Quota{}
	}
	return Quota{
		Total:     u.LeaveQuota,
		Used:      u.UsedLeaveQuota,
		Remaining: u.RemainingQuota(),
	}
}

// CutiAllowed reports whether the Cuti option may be selected.
func (q Quota) CutiAllowed() bool {
	return q.Remaining > 0
}

// Display clamps Remaining at zero for rendering.
func (q Quota) Display() int {
	if q.Remaining < 0 {
		return 0
	}
	return q.Remaining
}

func dateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

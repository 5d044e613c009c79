package attendance

import (
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/common"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

// CheckInStatus is derived by the backend from the check-in time.
type CheckInStatus string

const (
	CheckInEarly      CheckInStatus = "early"
	CheckInOnTime     CheckInStatus = "onTime"
	CheckInAlmostLate CheckInStatus = "almostLate"
	CheckInLate       CheckInStatus = "late"
)

// AllCheckInStatuses returns the statuses a change request may ask for.
func AllCheckInStatuses() []CheckInStatus {
	return []CheckInStatus{CheckInEarly, CheckInOnTime, CheckInAlmostLate, CheckInLate}
}

func (s CheckInStatus) Label() string {
	switch s {
	case CheckInEarly:
		return "Early"
	case CheckInOnTime:
		return "On time"
	case CheckInAlmostLate:
		return "Almost late"
	case CheckInLate:
		return "Late"
	}
	return string(s)
}

type Attendance struct {
	ID            common.ID     `json:"id"`
	UserID        common.ID     `json:"userId"`
	Date          string        `json:"date"`
	CheckIn       *time.Time    `json:"checkIn,omitempty"`
	CheckOut      *time.Time    `json:"checkOut,omitempty"`
	CheckInStatus CheckInStatus `json:"checkInStatus,omitempty"`
	BreakStart    *time.Time    `json:"breakStart,omitempty"`
	BreakEnd      *time.Time    `json:"breakEnd,omitempty"`
	BreakLate     bool          `json:"breakLate"`
	EarlyLeave    bool          `json:"earlyLeave"`
	Photo         string        `json:"photo,omitempty"`

	User *user.Summary `json:"user,omitempty"`
}

// Tags lists every status tag that applies to the row, check-in status first.
func (a *Attendance) Tags() []string {
	var tags []string
	if a.CheckInStatus != "" {
		tags = append(tags, string(a.CheckInStatus))
	}
	if a.BreakLate {
		tags = append(tags, "breakLate")
	}
	if a.EarlyLeave {
		tags = append(tags, "earlyLeave")
	}
	return tags
}

// StatusRequest proposes a current→requested check-in status change for one
// attendance row.
type StatusRequest struct {
	ID              common.ID      `json:"id"`
	AttendanceID    common.ID      `json:"attendanceId"`
	UserID          common.ID      `json:"userId"`
	CurrentStatus   CheckInStatus  `json:"currentStatus"`
	RequestedStatus CheckInStatus  `json:"requestedStatus"`
	Reason          string         `json:"reason"`
	Status          request.Status `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`

	User       *user.Summary `json:"user,omitempty"`
	Attendance *Attendance   `json:"attendance,omitempty"`
}

func (r StatusRequest) RequestStatus() request.Status {
	return r.Status
}

package performance

import (
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/common"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

// Performance is the backend's monthly scorecard for one employee.
type Performance struct {
	UserID          common.ID `json:"userId"`
	Period          string    `json:"period"`
	AttendanceRate  float64   `json:"attendanceRate"`
	PunctualityRate float64   `json:"punctualityRate"`
	LateCount       int       `json:"lateCount"`
	LeaveCount      int       `json:"leaveCount"`
	ReportCount     int       `json:"reportCount"`
	Score           float64   `json:"score"`

	User *user.Summary `json:"user,omitempty"`
}

// Grade buckets the score for display.
func (p Performance) Grade() string {
	switch {
	case p.Score >= 90:
		return "A"
	case p.Score >= 80:
		return "B"
	case p.Score >= 70:
		return "C"
	case p.Score >= 60:
		return "D"
	default:
		return "E"
	}
}

package attendance

import (
	"context"
)

// AttendanceService defines the attendance pages' operations
type AttendanceService interface {
	// GetMyAttendance returns the caller's own rows, newest first
	GetMyAttendance(ctx context.Context) ([]Attendance, error)

	// ListAttendance returns every employee's rows (admin)
	ListAttendance(ctx context.Context, filter ListFilter) ([]Attendance, error)

	// RequestStatusChange files a check-in status change request for one row
	RequestStatusChange(ctx context.Context, req CreateStatusRequest) (StatusRequest, error)

	ListStatusRequests(ctx context.Context) ([]StatusRequest, error)

	// DecideStatusRequest approves or rejects a request still Pending
	DecideStatusRequest(ctx context.Context, req DecideStatusRequest) error
}

package attendance

import (
	"context"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
)

// AttendanceRepository reads attendance rows from the backend.
type AttendanceRepository interface {
	ListMyAttendances(ctx context.Context) ([]Attendance, error)
	ListAttendances(ctx context.Context, filter ListFilter) ([]Attendance, error)
}

// StatusRequestRepository - interface for /api/attendance-status-requests
type StatusRequestRepository interface {
	ListAttendanceStatusRequests(ctx context.Context) ([]StatusRequest, error)
	ListPendingAttendanceStatusRequests(ctx context.Context) ([]StatusRequest, error)
	CreateAttendanceStatusRequest(ctx context.Context, req CreateStatusRequest) (StatusRequest, error)
	UpdateAttendanceStatusRequest(ctx context.Context, id string, status request.Status, adminNote string) error
}

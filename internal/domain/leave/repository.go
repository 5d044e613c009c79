package leave

import (
	"context"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
)

// LeaveRequestRepository - interface for /api/leaverequests
type LeaveRequestRepository interface {
	ListLeaveRequests(ctx context.Context) ([]LeaveRequest, error)
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequest) (LeaveRequest, error)
	UpdateLeaveRequestStatus(ctx context.Context, id string, status request.Status) error
	DeleteLeaveRequest(ctx context.Context, id string) error
}

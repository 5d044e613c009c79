package leave

import (
	"context"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

type LeaveService interface {
	// ListLeaveRequest returns what the backend lets the caller see: own
	// requests for employees, everything for admins.
	ListLeaveRequest(ctx context.Context) ([]LeaveRequest, error)
	// CreateLeaveRequest validates and checks quota against the caller's profile before submitting.
	CreateLeaveRequest(ctx context.Context, profile *user.User, req CreateLeaveRequest) (LeaveRequest, error)
	DecideLeaveRequest(ctx context.Context, req DecideLeaveRequest) error
	CancelLeaveRequest(ctx context.Context, id string, current request.Status) error
}

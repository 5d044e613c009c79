package leave

import (
	"context"
	"fmt"
	"sort"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

type LeaveServiceImpl struct {
	leaveRequestRepository leave.LeaveRequestRepository
	signaler               notification.Signaler
}

func (s *LeaveServiceImpl) ListLeaveRequest(ctx context.Context) ([]leave.LeaveRequest, error) {
	list, err := s.leaveRequestRepository.ListLeaveRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	// pending first, then newest start date
	sort.SliceStable(list, func(i, j int) bool {
		pi, pj := list[i].Status.Actionable(), list[j].Status.Actionable()
		if pi != pj {
			return pi
		}
		return list[i].StartDate > list[j].StartDate
	})
	return list, nil
}

func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, profile *user.User, req leave.CreateLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	if profile == nil {
		return leave.LeaveRequest{}, session.ErrUnauthenticated
	}
	if err := req.CheckQuota(leave.QuotaFor(profile)); err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.leaveRequestRepository.CreateLeaveRequest(ctx, req)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	s.signaler.Signal(session.IDFromContext(ctx))
	return created, nil
}

func (s *LeaveServiceImpl) DecideLeaveRequest(ctx context.Context, req leave.DecideLeaveRequest) error {
	if req.ID == "" {
		return leave.ErrLeaveRequestNotFound
	}
	if err := request.CheckTransition(req.Current, req.Decision); err != nil {
		return err
	}
	req.Status = req.Decision.Status()

	if err := s.leaveRequestRepository.UpdateLeaveRequestStatus(ctx, req.ID, req.Status); err != nil {
		return err
	}
	s.signaler.Signal(session.IDFromContext(ctx))
	return nil
}

// CancelLeaveRequest withdraws the caller's own request while it is still Pending.
func (s *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, id string, current request.Status) error {
	if id == "" {
		return leave.ErrLeaveRequestNotFound
	}
	if !current.Actionable() {
		return leave.ErrCancelNotAllowed
	}
	if err := s.leaveRequestRepository.DeleteLeaveRequest(ctx, id); err != nil {
		return err
	}
	s.signaler.Signal(session.IDFromContext(ctx))
	return nil
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository, signaler notification.Signaler) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRequestRepository: leaveRequestRepository,
		signaler:               signaler,
	}
}

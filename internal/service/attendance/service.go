package attendance

import (
	"context"
	"fmt"
	"sort"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/attendance"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
)

type AttendanceServiceImpl struct {
	attendanceRepository    attendance.AttendanceRepository
	statusRequestRepository attendance.StatusRequestRepository
	signaler                notification.Signaler
}

func newestFirst(list []attendance.Attendance) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date > list[j].Date
	})
}

func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context) ([]attendance.Attendance, error) {
	list, err := s.attendanceRepository.ListMyAttendances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list own attendances: %w", err)
	}
	newestFirst(list)
	return list, nil
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	list, err := s.attendanceRepository.ListAttendances(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	newestFirst(list)
	return list, nil
}

func (s *AttendanceServiceImpl) RequestStatusChange(ctx context.Context, req attendance.CreateStatusRequest) (attendance.StatusRequest, error) {
	if err := req.Validate(); err != nil {
		return attendance.StatusRequest{}, err
	}
	created, err := s.statusRequestRepository.CreateAttendanceStatusRequest(ctx, req)
	if err != nil {
		return attendance.StatusRequest{}, err
	}
	s.signaler.Signal(session.IDFromContext(ctx))
	return created, nil
}

func (s *AttendanceServiceImpl) ListStatusRequests(ctx context.Context) ([]attendance.StatusRequest, error) {
	list, err := s.statusRequestRepository.ListAttendanceStatusRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list status requests: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		pi, pj := list[i].Status.Actionable(), list[j].Status.Actionable()
		if pi != pj {
			return pi
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (s *AttendanceServiceImpl) DecideStatusRequest(ctx context.Context, req attendance.DecideStatusRequest) error {
	if req.ID == "" {
		return attendance.ErrStatusRequestNotFound
	}
	if err := request.CheckTransition(req.Current, req.Decision); err != nil {
		return err
	}
	req.Status = req.Decision.Status()

	if err := s.statusRequestRepository.UpdateAttendanceStatusRequest(ctx, req.ID, req.Status, req.AdminNote); err != nil {
		return err
	}
	s.signaler.Signal(session.IDFromContext(ctx))
	return nil
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	statusRequestRepository attendance.StatusRequestRepository,
	signaler notification.Signaler,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepository:    attendanceRepository,
		statusRequestRepository: statusRequestRepository,
		signaler:                signaler,
	}
}

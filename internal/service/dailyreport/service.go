package dailyreport

import (
	"context"
	"fmt"
	"sort"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/dailyreport"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
)

type DailyReportServiceImpl struct {
	dailyReportRepository dailyreport.DailyReportRepository
	editRequestRepository dailyreport.EditRequestRepository
	signaler              notification.Signaler
}

func (s *DailyReportServiceImpl) ListDailyReports(ctx context.Context) ([]dailyreport.DailyReport, error) {
	list, err := s.dailyReportRepository.ListDailyReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daily reports: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date > list[j].Date })
	return list, nil
}

func (s *DailyReportServiceImpl) SubmitDailyReport(ctx context.Context, req dailyreport.CreateDailyReportRequest) (dailyreport.DailyReport, error) {
	if err := req.Validate(); err != nil {
		return dailyreport.DailyReport{}, err
	}
	settings, err := s.dailyReportRepository.GetDailyReportSettings(ctx)
	if err != nil {
		return dailyreport.DailyReport{}, fmt.Errorf("load report settings: %w", err)
	}
	if !settings.Enabled {
		return dailyreport.DailyReport{}, dailyreport.ErrReportingDisabled
	}
	return s.dailyReportRepository.CreateDailyReport(ctx, req)
}

func (s *DailyReportServiceImpl) GetSettings(ctx context.Context) (dailyreport.Settings, error) {
	return s.dailyReportRepository.GetDailyReportSettings(ctx)
}

func (s *DailyReportServiceImpl) UpdateSettings(ctx context.Context, req dailyreport.UpdateSettingsRequest) (dailyreport.Settings, error) {
	if err := req.Validate(); err != nil {
		return dailyreport.Settings{}, err
	}
	return s.dailyReportRepository.UpdateDailyReportSettings(ctx, req)
}

func (s *DailyReportServiceImpl) ListEditRequests(ctx context.Context) ([]dailyreport.EditRequest, error) {
	list, err := s.editRequestRepository.ListEditRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list edit requests: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Status.Actionable() && !list[j].Status.Actionable()
	})
	return list, nil
}

func (s *DailyReportServiceImpl) RequestEdit(ctx context.Context, req dailyreport.CreateEditRequest) (dailyreport.EditRequest, error) {
	if err := req.Validate(); err != nil {
		return dailyreport.EditRequest{}, err
	}
	created, err := s.editRequestRepository.CreateEditRequest(ctx, req)
	if err != nil {
		return dailyreport.EditRequest{}, err
	}
	s.signaler.Signal(session.IDFromContext(ctx))
	return created, nil
}

func (s *DailyReportServiceImpl) DecideEditRequest(ctx context.Context, req dailyreport.DecideEditRequest) error {
	if req.ID == "" {
		return dailyreport.ErrEditRequestNotFound
	}
	if err := request.CheckTransition(req.Current, req.Decision); err != nil {
		return err
	}
	req.Status = req.Decision.Status()

	if err := s.editRequestRepository.UpdateEditRequestStatus(ctx, req.ID, req.Status); err != nil {
		return err
	}
	s.signaler.Signal(session.IDFromContext(ctx))
	return nil
}

func NewDailyReportService(
	dailyReportRepository dailyreport.DailyReportRepository,
	editRequestRepository dailyreport.EditRequestRepository,
	signaler notification.Signaler,
) dailyreport.DailyReportService {
	return &DailyReportServiceImpl{
		dailyReportRepository: dailyReportRepository,
		editRequestRepository: editRequestRepository,
		signaler:              signaler,
	}
}

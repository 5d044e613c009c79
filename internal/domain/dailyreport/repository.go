package dailyreport

import (
	"context"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
)

// DailyReportRepository - interface for /api/daily-reports
type DailyReportRepository interface {
	ListDailyReports(ctx context.Context) ([]DailyReport, error)
	CreateDailyReport(ctx context.Context, req CreateDailyReportRequest) (DailyReport, error)
	GetDailyReportSettings(ctx context.Context) (Settings, error)
	UpdateDailyReportSettings(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}

// EditRequestRepository - interface for /api/daily-report-edit-requests
type EditRequestRepository interface {
	ListEditRequests(ctx context.Context) ([]EditRequest, error)
	ListPendingEditRequests(ctx context.Context) ([]EditRequest, error)
	CreateEditRequest(ctx context.Context, req CreateEditRequest) (EditRequest, error)
	UpdateEditRequestStatus(ctx context.Context, id string, status request.Status) error
}

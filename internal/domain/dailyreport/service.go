package dailyreport

import (
	"context"
)

type DailyReportService interface {
	ListDailyReports(ctx context.Context) ([]DailyReport, error)
	// SubmitDailyReport refuses submissions while reporting is disabled
	SubmitDailyReport(ctx context.Context, req CreateDailyReportRequest) (DailyReport, error)
	GetSettings(ctx context.Context) (Settings, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (Settings, error)

	ListEditRequests(ctx context.Context) ([]EditRequest, error)
	RequestEdit(ctx context.Context, req CreateEditRequest) (EditRequest, error)
	DecideEditRequest(ctx context.Context, req DecideEditRequest) error
}

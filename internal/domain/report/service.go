package report

import "context"

// Repository opens the backend's CSV stream
type Repository interface {
	DownloadReport(ctx context.Context, req ExportRequest) (File, error)
}

// ReportService defines the interface for report export
type ReportService interface {
	Export(ctx context.Context, req ExportRequest) (File, error)
}

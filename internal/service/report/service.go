package report

import (
	"context"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo report.Repository
	now        func() time.Time
}

func NewReportService(reportRepo report.Repository) report.ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo, now: time.Now}
}

// Export opens the backend's CSV stream. Generation stays on the backend.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.File, error) {
	if _, err := report.ParseKind(string(req.Kind)); err != nil {
		return report.File{}, err
	}
	if err := req.Validate(); err != nil {
		return report.File{}, err
	}

	file, err := s.reportRepo.DownloadReport(ctx, req)
	if err != nil {
		return report.File{}, err
	}
	if file.Name == "" {
		file.Name = req.DefaultName(s.now())
	}
	if file.ContentType == "" {
		file.ContentType = "text/csv"
	}
	return file, nil
}

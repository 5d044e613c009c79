package report

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct{ calls int }

func (f *fakeRepo) DownloadReport(ctx context.Context, req report.ExportRequest) (report.File, error) {
	f.calls++
	return report.File{Body: io.NopCloser(strings.NewReader("id,name\n1,Rina\n"))}, nil
}

func TestExport(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewReportService(repo).(*ReportServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC) }

	file, err := svc.Export(context.Background(), report.ExportRequest{Kind: report.KindLeaves})
	require.NoError(t, err)
	defer file.Body.Close()
	assert.Equal(t, "leaves-20250307.csv", file.Name)
	assert.Equal(t, "text/csv", file.ContentType)

	_, err = svc.Export(context.Background(), report.ExportRequest{Kind: "payslips"})
	assert.ErrorIs(t, err, report.ErrUnknownReport)

	_, err = svc.Export(context.Background(), report.ExportRequest{Kind: report.KindAttendances, StartDate: "2025-03-10", EndDate: "2025-03-01"})
	assert.ErrorIs(t, err, report.ErrInvalidDateRange)
	assert.Equal(t, 1, repo.calls)
}

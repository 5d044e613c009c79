package dailyreport

import (
	"context"
	"testing"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/dailyreport"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	settings dailyreport.Settings
	reports  []dailyreport.CreateDailyReportRequest
	edits    []dailyreport.CreateEditRequest
	decided  map[string]request.Status
}

func (f *fakeRepo) ListDailyReports(ctx context.Context) ([]dailyreport.DailyReport, error) {
	return []dailyreport.DailyReport{{Date: "2025-01-01"}, {Date: "2025-01-09"}}, nil
}

func (f *fakeRepo) CreateDailyReport(ctx context.Context, req dailyreport.CreateDailyReportRequest) (dailyreport.DailyReport, error) {
	f.reports = append(f.reports, req)
	return dailyreport.DailyReport{ID: "1", Date: req.Date, Content: req.Content}, nil
}

func (f *fakeRepo) GetDailyReportSettings(ctx context.Context) (dailyreport.Settings, error) {
	return f.settings, nil
}

func (f *fakeRepo) UpdateDailyReportSettings(ctx context.Context, req dailyreport.UpdateSettingsRequest) (dailyreport.Settings, error) {
	f.settings = dailyreport.Settings{Enabled: req.Enabled, Deadline: req.Deadline}
	return f.settings, nil
}

func (f *fakeRepo) ListEditRequests(ctx context.Context) ([]dailyreport.EditRequest, error) {
	return []dailyreport.EditRequest{{ID: "1", Status: request.StatusApproved}, {ID: "2", Status: request.StatusPending}}, nil
}

func (f *fakeRepo) ListPendingEditRequests(ctx context.Context) ([]dailyreport.EditRequest, error) {
	return nil, nil
}

func (f *fakeRepo) CreateEditRequest(ctx context.Context, req dailyreport.CreateEditRequest) (dailyreport.EditRequest, error) {
	f.edits = append(f.edits, req)
	return dailyreport.EditRequest{ID: "3", Status: request.StatusPending}, nil
}

func (f *fakeRepo) UpdateEditRequestStatus(ctx context.Context, id string, status request.Status) error {
	if f.decided == nil {
		f.decided = map[string]request.Status{}
	}
	f.decided[id] = status
	return nil
}

type countingSignaler struct{ n int }

func (c *countingSignaler) Signal(string) { c.n++ }

func TestSubmitDailyReport(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDailyReportService(repo, repo, &countingSignaler{})
	req := dailyreport.CreateDailyReportRequest{Date: "2025-02-03", Content: "fixed payroll export"}

	_, err := svc.SubmitDailyReport(context.Background(), req)
	assert.ErrorIs(t, err, dailyreport.ErrReportingDisabled)
	assert.Empty(t, repo.reports)

	repo.settings.Enabled = true
	_, err = svc.SubmitDailyReport(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, repo.reports, 1)

	_, err = svc.SubmitDailyReport(context.Background(), dailyreport.CreateDailyReportRequest{Date: "2025-02-03"})
	assert.Error(t, err)
	assert.Len(t, repo.reports, 1)
}

func TestUpdateSettings(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDailyReportService(repo, repo, &countingSignaler{})

	_, err := svc.UpdateSettings(context.Background(), dailyreport.UpdateSettingsRequest{Enabled: true, Deadline: "25:00"})
	assert.Error(t, err)

	settings, err := svc.UpdateSettings(context.Background(), dailyreport.UpdateSettingsRequest{Enabled: true, Deadline: "17:30"})
	require.NoError(t, err)
	assert.Equal(t, "17:30", settings.Deadline)
}

func TestEditRequests(t *testing.T) {
	repo := &fakeRepo{}
	sig := &countingSignaler{}
	svc := NewDailyReportService(repo, repo, sig)
	ctx := context.Background()

	list, err := svc.ListEditRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", list[0].ID.String())

	_, err = svc.RequestEdit(ctx, dailyreport.CreateEditRequest{DailyReportID: "4", NewContent: "typo", Reason: "wrong date"})
	require.NoError(t, err)
	assert.Equal(t, 1, sig.n)

	require.NoError(t, svc.DecideEditRequest(ctx, dailyreport.DecideEditRequest{ID: "2", Decision: request.DecisionApprove, Current: request.StatusPending}))
	assert.Equal(t, request.StatusApproved, repo.decided["2"])

	err = svc.DecideEditRequest(ctx, dailyreport.DecideEditRequest{ID: "1", Decision: request.DecisionApprove, Current: request.StatusApproved})
	assert.ErrorIs(t, err, request.ErrNotActionable)
	assert.Equal(t, 2, sig.n)
}

package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/attendance"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mine     []attendance.Attendance
	requests []attendance.StatusRequest
	filter   attendance.ListFilter
	created  []attendance.CreateStatusRequest
	updates  []string
}

func (f *fakeRepo) ListMyAttendances(ctx context.Context) ([]attendance.Attendance, error) {
	return f.mine, nil
}

func (f *fakeRepo) ListAttendances(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	f.filter = filter
	return f.mine, nil
}

func (f *fakeRepo) ListAttendanceStatusRequests(ctx context.Context) ([]attendance.StatusRequest, error) {
	return f.requests, nil
}

func (f *fakeRepo) ListPendingAttendanceStatusRequests(ctx context.Context) ([]attendance.StatusRequest, error) {
	return request.FilterPending(f.requests, attendance.StatusRequest.RequestStatus), nil
}

func (f *fakeRepo) CreateAttendanceStatusRequest(ctx context.Context, req attendance.CreateStatusRequest) (attendance.StatusRequest, error) {
	f.created = append(f.created, req)
	return attendance.StatusRequest{ID: "1", Status: request.StatusPending}, nil
}

func (f *fakeRepo) UpdateAttendanceStatusRequest(ctx context.Context, id string, status request.Status, adminNote string) error {
	f.updates = append(f.updates, id+":"+string(status)+":"+adminNote)
	return nil
}

type countingSignaler struct{ n int }

func (c *countingSignaler) Signal(string) { c.n++ }

func TestGetMyAttendance_NewestFirst(t *testing.T) {
	repo := &fakeRepo{mine: []attendance.Attendance{{Date: "2025-01-02"}, {Date: "2025-01-05"}, {Date: "2025-01-03"}}}
	svc := NewAttendanceService(repo, repo, &countingSignaler{})

	list, err := svc.GetMyAttendance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", list[0].Date)
	assert.Equal(t, "2025-01-02", list[2].Date)
}

func TestListAttendance_ValidatesFilter(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewAttendanceService(repo, repo, &countingSignaler{})

	_, err := svc.ListAttendance(context.Background(), attendance.ListFilter{StartDate: "01/02/2025"})
	assert.Error(t, err)

	_, err = svc.ListAttendance(context.Background(), attendance.ListFilter{UserID: "4", StartDate: "2025-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "4", repo.filter.UserID)
}

func TestRequestStatusChange(t *testing.T) {
	repo := &fakeRepo{}
	sig := &countingSignaler{}
	svc := NewAttendanceService(repo, repo, sig)
	ctx := session.WithID(context.Background(), "s1")

	_, err := svc.RequestStatusChange(ctx, attendance.CreateStatusRequest{
		AttendanceID:    "12",
		CurrentStatus:   attendance.CheckInLate,
		RequestedStatus: attendance.CheckInLate,
		Reason:          "traffic",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.created)

	_, err = svc.RequestStatusChange(ctx, attendance.CreateStatusRequest{
		AttendanceID:    "12",
		CurrentStatus:   attendance.CheckInLate,
		RequestedStatus: attendance.CheckInOnTime,
		Reason:          "machine was down",
	})
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
	assert.Equal(t, 1, sig.n)
}

func TestDecideStatusRequest(t *testing.T) {
	repo := &fakeRepo{}
	sig := &countingSignaler{}
	svc := NewAttendanceService(repo, repo, sig)

	err := svc.DecideStatusRequest(context.Background(), attendance.DecideStatusRequest{
		ID: "8", Decision: request.DecisionReject, Current: request.StatusPending, AdminNote: "no proof",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"8:Rejected:no proof"}, repo.updates)

	err = svc.DecideStatusRequest(context.Background(), attendance.DecideStatusRequest{
		ID: "8", Decision: request.DecisionApprove, Current: request.StatusRejected,
	})
	assert.ErrorIs(t, err, request.ErrNotActionable)
	assert.Len(t, repo.updates, 1)
	assert.Equal(t, 1, sig.n)
}

func TestListStatusRequests_PendingFirst(t *testing.T) {
	now := time.Now()
	repo := &fakeRepo{requests: []attendance.StatusRequest{
		{ID: "1", Status: request.StatusApproved, CreatedAt: now},
		{ID: "2", Status: request.StatusPending, CreatedAt: now.Add(-time.Hour)},
	}}
	svc := NewAttendanceService(repo, repo, &countingSignaler{})

	list, err := svc.ListStatusRequests(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", list[0].ID.String())
}

package leave

import (
	"context"
	"testing"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	list    []leave.LeaveRequest
	created []leave.CreateLeaveRequest
	updated map[string]request.Status
	deleted []string
}

func (f *fakeRepo) ListLeaveRequests(ctx context.Context) ([]leave.LeaveRequest, error) {
	return f.list, nil
}

func (f *fakeRepo) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequest, error) {
	f.created = append(f.created, req)
	return leave.LeaveRequest{ID: "99", Type: req.Type, Status: request.StatusPending}, nil
}

func (f *fakeRepo) UpdateLeaveRequestStatus(ctx context.Context, id string, status request.Status) error {
	if f.updated == nil {
		f.updated = map[string]request.Status{}
	}
	f.updated[id] = status
	return nil
}

func (f *fakeRepo) DeleteLeaveRequest(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type recordingSignaler struct{ sessions []string }

func (r *recordingSignaler) Signal(sessionID string) { r.sessions = append(r.sessions, sessionID) }

func newService() (*LeaveServiceImpl, *fakeRepo, *recordingSignaler) {
	repo := &fakeRepo{}
	sig := &recordingSignaler{}
	return NewLeaveService(repo, sig).(*LeaveServiceImpl), repo, sig
}

func cuti() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{StartDate: "2025-03-10", EndDate: "2025-03-11", Reason: "family", Type: leave.TypeCuti}
}

func TestCreateLeaveRequest_QuotaGate(t *testing.T) {
	ctx := session.WithID(context.Background(), "s1")

	t.Run("cuti with quota left is sent", func(t *testing.T) {
		svc, repo, sig := newService()
		profile := &user.User{LeaveQuota: 12, UsedLeaveQuota: 10}

		_, err := svc.CreateLeaveRequest(ctx, profile, cuti())
		require.NoError(t, err)
		assert.Len(t, repo.created, 1)
		assert.Equal(t, []string{"s1"}, sig.sessions)
	})

	t.Run("cuti with quota used up never reaches the backend", func(t *testing.T) {
		for _, used := range []int{12, 13} {
			svc, repo, sig := newService()
			profile := &user.User{LeaveQuota: 12, UsedLeaveQuota: used}

			_, err := svc.CreateLeaveRequest(ctx, profile, cuti())
			assert.ErrorIs(t, err, leave.ErrQuotaExhausted)
			assert.Empty(t, repo.created)
			assert.Empty(t, sig.sessions)
		}
	})

	t.Run("izin ignores quota", func(t *testing.T) {
		svc, repo, _ := newService()
		req := cuti()
		req.Type = leave.TypeIzin

		_, err := svc.CreateLeaveRequest(ctx, &user.User{LeaveQuota: 12, UsedLeaveQuota: 12}, req)
		require.NoError(t, err)
		assert.Len(t, repo.created, 1)
	})

	t.Run("invalid form is rejected first", func(t *testing.T) {
		svc, repo, _ := newService()
		req := cuti()
		req.EndDate = "2025-03-01"

		_, err := svc.CreateLeaveRequest(ctx, &user.User{LeaveQuota: 12}, req)
		assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
		assert.Empty(t, repo.created)
	})
}

func TestDecideLeaveRequest(t *testing.T) {
	ctx := session.WithID(context.Background(), "s1")

	svc, repo, sig := newService()
	err := svc.DecideLeaveRequest(ctx, leave.DecideLeaveRequest{ID: "5", Decision: request.DecisionApprove, Current: request.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, repo.updated["5"])
	assert.Len(t, sig.sessions, 1)

	for _, current := range []request.Status{request.StatusApproved, request.StatusRejected} {
		svc, repo, sig := newService()
		err := svc.DecideLeaveRequest(ctx, leave.DecideLeaveRequest{ID: "5", Decision: request.DecisionReject, Current: current})
		assert.ErrorIs(t, err, request.ErrNotActionable)
		assert.Empty(t, repo.updated)
		assert.Empty(t, sig.sessions)
	}
}

func TestCancelLeaveRequest(t *testing.T) {
	ctx := session.WithID(context.Background(), "s1")
	svc, repo, _ := newService()

	require.NoError(t, svc.CancelLeaveRequest(ctx, "3", request.StatusPending))
	assert.Equal(t, []string{"3"}, repo.deleted)

	err := svc.CancelLeaveRequest(ctx, "4", request.StatusApproved)
	assert.ErrorIs(t, err, leave.ErrCancelNotAllowed)
}

func TestListLeaveRequest_PendingFirst(t *testing.T) {
	svc, repo, _ := newService()
	repo.list = []leave.LeaveRequest{
		{ID: "1", Status: request.StatusApproved, StartDate: "2025-05-01"},
		{ID: "2", Status: request.StatusPending, StartDate: "2025-01-01"},
		{ID: "3", Status: request.StatusPending, StartDate: "2025-02-01"},
	}
	list, err := svc.ListLeaveRequest(context.Background())
	require.NoError(t, err)
	ids := []string{list[0].ID.String(), list[1].ID.String(), list[2].ID.String()}
	assert.Equal(t, []string{"3", "2", "1"}, ids)
}

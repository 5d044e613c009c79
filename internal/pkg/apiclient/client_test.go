package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/attendance"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/auth"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/device"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/report"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestClient_InjectsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/users/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 1, "name": "Rina", "role": "user", "leaveQuota": 12, "usedLeaveQuota": 10}`))
	})

	u, err := c.Me(WithToken(context.Background(), "tok-123"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "Rina", u.Name)
	assert.Equal(t, 2, u.RemainingQuota())
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListNotifications(context.Background())
	require.NoError(t, err)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		message  string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message": "Token expired"}`, ErrUnauthorized, "Token expired"},
		{"forbidden", http.StatusForbidden, `{"error": "Admin only"}`, ErrUnauthorized, "Admin only"},
		{"not found", http.StatusNotFound, `{"error": {"message": "No such user"}}`, ErrNotFound, "No such user"},
		{"validation", http.StatusBadRequest, `{"message": "Sisa cuti tidak mencukupi"}`, nil, "Sisa cuti tidak mencukupi"},
		{"plain text", http.StatusConflict, "already exists", nil, "already exists"},
		{"html page", http.StatusBadGateway, "<html>bad gateway</html>", ErrUnavailable, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.ListUsers(WithToken(context.Background(), "tok"))
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			msg, ok := Message(err)
			assert.True(t, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestClient_NetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	_, err := c.ListLeaveRequests(WithToken(context.Background(), "tok"))
	assert.ErrorIs(t, err, ErrUnavailable)
	_, ok := Message(err)
	assert.False(t, ok)
}

func TestClient_CancelledContext(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(WithToken(context.Background(), "tok"))
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := c.ListPendingEditRequests(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestClient_LoginDropsStaleToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var body auth.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hr@hexa.co.id", body.Email)
		_, _ = w.Write([]byte(`{"token": "fresh", "user": {"id": "u-1", "name": "HR", "role": "admin"}}`))
	})

	resp, err := c.Login(WithToken(context.Background(), "stale"), auth.LoginRequest{Email: "hr@hexa.co.id", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.Token)
	assert.True(t, resp.User.IsAdmin())
}

func TestClient_LoginWithoutToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user": {"id": 1}}`))
	})

	_, err := c.Login(context.Background(), auth.LoginRequest{Email: "a@b.co", Password: "pw"})
	assert.ErrorIs(t, err, auth.ErrMissingToken)
}

func TestClient_ListAttendancesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/attendances", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("userId"))
		assert.Equal(t, "2025-01-01", r.URL.Query().Get("startDate"))
		assert.False(t, r.URL.Query().Has("endDate"))
		_, _ = w.Write([]byte(`[{"id": 1, "checkInStatus": "late"}]`))
	})

	rows, err := c.ListAttendances(WithToken(context.Background(), "tok"), attendance.ListFilter{UserID: "7", StartDate: "2025-01-01"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, attendance.CheckInLate, rows[0].CheckInStatus)
}

func TestClient_UpdateLeaveRequestStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/leaverequests/12", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status": "Approved"}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.UpdateLeaveRequestStatus(WithToken(context.Background(), "tok"), "12", request.StatusApproved)
	assert.NoError(t, err)
}

func TestClient_CreateLeaveRequestEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	_, err := c.CreateLeaveRequest(WithToken(context.Background(), "tok"), leave.CreateLeaveRequest{Type: leave.TypeIzin})
	assert.NoError(t, err)
}

func TestClient_DeviceHeaders(t *testing.T) {
	cfg := device.Config{BaseURL: "http://10.0.0.9:8090", Username: "admin", Password: "s3cret", DeviceSN: "PV-01"}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/palm/status", r.URL.Path)
		assert.Equal(t, cfg.BaseURL, r.Header.Get("X-Device-Url"))
		assert.Equal(t, cfg.Username, r.Header.Get("X-Device-Username"))
		assert.Equal(t, cfg.Password, r.Header.Get("X-Device-Password"))
		assert.Equal(t, cfg.DeviceSN, r.Header.Get("X-Device-Sn"))
		_, _ = w.Write([]byte(`{"online": true, "deviceSn": "PV-01", "personCount": 4}`))
	})

	status, err := c.GetDeviceStatus(WithToken(context.Background(), "tok"), cfg)
	require.NoError(t, err)
	assert.True(t, status.Online)
	assert.Equal(t, 4, status.PersonCount)
}

func TestClient_DownloadReport(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/attendances", r.URL.Path)
		assert.Equal(t, "2025-01-31", r.URL.Query().Get("endDate"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="attendance-jan.csv"`)
		_, _ = w.Write([]byte("name,date\nRina,2025-01-02\n"))
	})

	file, err := c.DownloadReport(WithToken(context.Background(), "tok"), report.ExportRequest{Kind: report.KindAttendances, EndDate: "2025-01-31"})
	require.NoError(t, err)
	defer file.Body.Close()

	assert.Equal(t, "attendance-jan.csv", file.Name)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	data, err := io.ReadAll(file.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Rina")
}

func TestClient_FileURL(t *testing.T) {
	c := NewClient("http://localhost:4000", time.Second)
	assert.Equal(t, "http://localhost:4000/uploads/a.png", c.FileURL("uploads/a.png"))
	assert.Equal(t, "http://localhost:4000/uploads/a.png", c.FileURL("/uploads/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", c.FileURL("https://cdn.example.com/a.png"))
	assert.Equal(t, "", c.FileURL(""))
}

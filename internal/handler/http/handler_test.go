package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/device"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/report"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/handler/http/flash"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/apiclient"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/i18n"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/service/viewmode"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := i18n.Init("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakes embed the interface so only the methods a test needs are implemented

type fakeSessions struct {
	session.Service
	expired []string
}

func (f *fakeSessions) Expire(ctx context.Context, id string) error {
	f.expired = append(f.expired, id)
	return nil
}

type fakeLeaveService struct {
	leave.LeaveService
	createErr error
	created   *leave.CreateLeaveRequest
}

func (f *fakeLeaveService) CreateLeaveRequest(ctx context.Context, profile *user.User, req leave.CreateLeaveRequest) (leave.LeaveRequest, error) {
	f.created = &req
	return leave.LeaveRequest{}, f.createErr
}

type fakeViewModes struct {
	viewmode.ViewModeService
	transition viewmode.Transition
	err        error
	gotPath    string
}

func (f *fakeViewModes) Toggle(ctx context.Context, sessionID string, u *user.User, currentPath string) (viewmode.Transition, error) {
	f.gotPath = currentPath
	return f.transition, f.err
}

type fakeNotifications struct {
	notification.Service
	signaled []string
}

func (f *fakeNotifications) Signal(sessionID string) {
	f.signaled = append(f.signaled, sessionID)
}

type fakeReportService struct {
	file report.File
	err  error
	got  report.ExportRequest
}

func (f *fakeReportService) Export(ctx context.Context, req report.ExportRequest) (report.File, error) {
	f.got = req
	return f.file, f.err
}

type fakeDeviceService struct {
	device.Service
	result device.SyncResult
}

func (f *fakeDeviceService) Sync(ctx context.Context) (device.SyncResult, error) {
	return f.result, nil
}

func formRequest(method, target string, values url.Values, u *user.User) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	ctx := session.WithID(req.Context(), "sid-1")
	ctx = i18n.WithLocale(ctx, "en")
	if u != nil {
		ctx = session.WithUser(ctx, u)
	}
	return req.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// popFlash reads the flash cookie the recorder received.
func popFlash(t *testing.T, rec *httptest.ResponseRecorder) *flash.Flash {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return flash.Pop(httptest.NewRecorder(), req)
}

func TestLeaveCreate_QuotaExhaustedRedirectsWithFlash(t *testing.T) {
	svc := &fakeLeaveService{createErr: leave.ErrQuotaExhausted}
	h := NewLeaveHandler(nil, &fakeSessions{}, svc)

	rec := httptest.NewRecorder()
	h.Create(rec, formRequest(http.MethodPost, "/leave", url.Values{
		"type":      {"Cuti"},
		"startDate": {"2026-01-05"},
		"endDate":   {"2026-01-06"},
		"reason":    {"family"},
	}, &user.User{ID: "u-1", Role: user.RoleUser}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/leave", rec.Header().Get("Location"))
	require.NotNil(t, svc.created)
	assert.Equal(t, "2026-01-05", svc.created.StartDate)
	assert.Empty(t, svc.created.Attachment)

	f := popFlash(t, rec)
	require.NotNil(t, f)
	assert.Equal(t, flash.KindError, f.Kind)
	assert.Equal(t, "Your annual leave (Cuti) quota is used up.", f.Message)
}

func TestLeaveCreate_SuccessFlash(t *testing.T) {
	h := NewLeaveHandler(nil, &fakeSessions{}, &fakeLeaveService{})

	rec := httptest.NewRecorder()
	h.Create(rec, formRequest(http.MethodPost, "/leave", url.Values{"type": {"Izin"}}, &user.User{ID: "u-1"}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	f := popFlash(t, rec)
	require.NotNil(t, f)
	assert.Equal(t, flash.KindSuccess, f.Kind)
	assert.Equal(t, "Leave request submitted.", f.Message)
}

func TestLeaveCreate_RejectedTokenExpiresSession(t *testing.T) {
	sessions := &fakeSessions{}
	h := NewLeaveHandler(nil, sessions, &fakeLeaveService{createErr: apiclient.ErrUnauthorized})

	rec := httptest.NewRecorder()
	h.Create(rec, formRequest(http.MethodPost, "/leave", url.Values{"type": {"Izin"}}, &user.User{ID: "u-1"}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, []string{"sid-1"}, sessions.expired)
	f := popFlash(t, rec)
	require.NotNil(t, f)
	assert.Equal(t, "Your session has expired. Please log in again.", f.Message)
}

func TestToggleViewMode_JSON(t *testing.T) {
	viewModes := &fakeViewModes{transition: viewmode.Transition{UserView: false, Redirect: "/admin/leave"}}
	notifications := &fakeNotifications{}
	h := NewLayoutHandler(nil, &fakeSessions{}, nil, viewModes, notifications, 0)

	req := formRequest(http.MethodPost, "/view-mode", url.Values{"path": {"/leave"}}, &user.User{ID: "a-1", Role: user.RoleAdmin})
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.ToggleViewMode(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/leave", viewModes.gotPath)
	assert.Equal(t, []string{"sid-1"}, notifications.signaled)

	var body struct {
		Success bool                `json:"success"`
		Data    viewmode.Transition `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "/admin/leave", body.Data.Redirect)
	assert.False(t, body.Data.UserView)
}

func TestToggleViewMode_UserViewDoesNotSignal(t *testing.T) {
	viewModes := &fakeViewModes{transition: viewmode.Transition{UserView: true, Redirect: "/leave"}}
	notifications := &fakeNotifications{}
	h := NewLayoutHandler(nil, &fakeSessions{}, nil, viewModes, notifications, 0)

	req := formRequest(http.MethodPost, "/view-mode", url.Values{}, &user.User{ID: "a-1", Role: user.RoleAdmin})
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "http://localhost:3000/admin/leave?page=2")
	rec := httptest.NewRecorder()
	h.ToggleViewMode(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/admin/leave", viewModes.gotPath)
	assert.Empty(t, notifications.signaled)
}

func TestToggleViewMode_EmployeeForbidden(t *testing.T) {
	viewModes := &fakeViewModes{err: user.ErrAdminAccessRequired}
	h := NewLayoutHandler(nil, &fakeSessions{}, nil, viewModes, &fakeNotifications{}, 0)

	rec := httptest.NewRecorder()
	h.ToggleViewMode(rec, formRequest(http.MethodPost, "/view-mode", url.Values{}, &user.User{ID: "u-1", Role: user.RoleUser}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReportDownload_StreamsCSV(t *testing.T) {
	svc := &fakeReportService{file: report.File{
		Name:        "attendances-20260105.csv",
		ContentType: "text/csv",
		Body:        io.NopCloser(strings.NewReader("name,date\nSari,2026-01-05\n")),
	}}
	h := NewReportHandler(nil, &fakeSessions{}, svc)

	req := formRequest(http.MethodGet, "/admin/reports/attendances?startDate=2026-01-01&endDate=2026-01-31", nil, &user.User{Role: user.RoleAdmin})
	req = withURLParam(req, "kind", "attendances")
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=attendances-20260105.csv`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "name,date\nSari,2026-01-05\n", rec.Body.String())
	assert.Equal(t, report.KindAttendances, svc.got.Kind)
	assert.Equal(t, "2026-01-01", svc.got.StartDate)
	assert.Equal(t, "2026-01-31", svc.got.EndDate)
}

func TestReportDownload_UnknownKindRedirects(t *testing.T) {
	h := NewReportHandler(nil, &fakeSessions{}, &fakeReportService{err: report.ErrUnknownReport})

	req := withURLParam(formRequest(http.MethodGet, "/admin/reports/salaries", nil, &user.User{Role: user.RoleAdmin}), "kind", "salaries")
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/reports", rec.Header().Get("Location"))
	f := popFlash(t, rec)
	require.NotNil(t, f)
	assert.Equal(t, "Unknown report.", f.Message)
}

func TestDeviceSync_FlashCounts(t *testing.T) {
	h := NewDeviceHandler(nil, &fakeSessions{}, &fakeDeviceService{result: device.SyncResult{Synced: 2, Failed: 1}}, nil)

	rec := httptest.NewRecorder()
	h.Sync(rec, formRequest(http.MethodPost, "/admin/device/sync", url.Values{}, &user.User{Role: user.RoleAdmin}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/device", rec.Header().Get("Location"))
	f := popFlash(t, rec)
	require.NotNil(t, f)
	assert.Equal(t, "2 synced, 1 failed.", f.Message)
}

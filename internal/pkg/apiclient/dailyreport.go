package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/dailyreport"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
)

func (c *Client) ListDailyReports(ctx context.Context) ([]dailyreport.DailyReport, error) {
	var reports []dailyreport.DailyReport
	if err := c.doJSON(ctx, http.MethodGet, "/api/daily-reports", nil, &reports); err != nil {
		return nil, fmt.Errorf("list daily reports: %w", err)
	}
	return reports, nil
}

func (c *Client) CreateDailyReport(ctx context.Context, req dailyreport.CreateDailyReportRequest) (dailyreport.DailyReport, error) {
	var created dailyreport.DailyReport
	if err := c.doJSON(ctx, http.MethodPost, "/api/daily-reports", req, &created); err != nil {
		return dailyreport.DailyReport{}, fmt.Errorf("create daily report: %w", err)
	}
	return created, nil
}

func (c *Client) GetDailyReportSettings(ctx context.Context) (dailyreport.Settings, error) {
	var settings dailyreport.Settings
	if err := c.doJSON(ctx, http.MethodGet, "/api/daily-reports/settings", nil, &settings); err != nil {
		return dailyreport.Settings{}, fmt.Errorf("get daily report settings: %w", err)
	}
	return settings, nil
}

func (c *Client) UpdateDailyReportSettings(ctx context.Context, req dailyreport.UpdateSettingsRequest) (dailyreport.Settings, error) {
	var settings dailyreport.Settings
	if err := c.doJSON(ctx, http.MethodPut, "/api/daily-reports/settings", req, &settings); err != nil {
		return dailyreport.Settings{}, fmt.Errorf("update daily report settings: %w", err)
	}
	return settings, nil
}

func (c *Client) ListEditRequests(ctx context.Context) ([]dailyreport.EditRequest, error) {
	var reqs []dailyreport.EditRequest
	if err := c.doJSON(ctx, http.MethodGet, "/api/daily-report-edit-requests", nil, &reqs); err != nil {
		return nil, fmt.Errorf("list daily report edit requests: %w", err)
	}
	return reqs, nil
}

func (c *Client) ListPendingEditRequests(ctx context.Context) ([]dailyreport.EditRequest, error) {
	var reqs []dailyreport.EditRequest
	if err := c.doJSON(ctx, http.MethodGet, "/api/daily-report-edit-requests/pending", nil, &reqs); err != nil {
		return nil, fmt.Errorf("list pending daily report edit requests: %w", err)
	}
	return reqs, nil
}

func (c *Client) CreateEditRequest(ctx context.Context, req dailyreport.CreateEditRequest) (dailyreport.EditRequest, error) {
	var created dailyreport.EditRequest
	if err := c.doJSON(ctx, http.MethodPost, "/api/daily-report-edit-requests", req, &created); err != nil {
		return dailyreport.EditRequest{}, fmt.Errorf("create daily report edit request: %w", err)
	}
	return created, nil
}

func (c *Client) UpdateEditRequestStatus(ctx context.Context, id string, status request.Status) error {
	body := map[string]string{"status": string(status)}
	if err := c.doJSON(ctx, http.MethodPut, "/api/daily-report-edit-requests/"+url.PathEscape(id), body, nil); err != nil {
		return fmt.Errorf("update daily report edit request: %w", err)
	}
	return nil
}

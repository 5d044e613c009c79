package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/attendance"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
)

func (c *Client) ListMyAttendances(ctx context.Context) ([]attendance.Attendance, error) {
	var rows []attendance.Attendance
	if err := c.doJSON(ctx, http.MethodGet, "/api/attendances/me", nil, &rows); err != nil {
		return nil, fmt.Errorf("list my attendances: %w", err)
	}
	return rows, nil
}

func (c *Client) ListAttendances(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	query := url.Values{}
	if filter.UserID != "" {
		query.Set("userId", filter.UserID)
	}
	if filter.StartDate != "" {
		query.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("endDate", filter.EndDate)
	}

	var rows []attendance.Attendance
	if err := c.doJSON(ctx, http.MethodGet, "/api/attendances", nil, &rows, withQuery(query)); err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	return rows, nil
}

func (c *Client) ListAttendanceStatusRequests(ctx context.Context) ([]attendance.StatusRequest, error) {
	var reqs []attendance.StatusRequest
	if err := c.doJSON(ctx, http.MethodGet, "/api/attendance-status-requests", nil, &reqs); err != nil {
		return nil, fmt.Errorf("list attendance status requests: %w", err)
	}
	return reqs, nil
}

func (c *Client) ListPendingAttendanceStatusRequests(ctx context.Context) ([]attendance.StatusRequest, error) {
	var reqs []attendance.StatusRequest
	if err := c.doJSON(ctx, http.MethodGet, "/api/attendance-status-requests/pending", nil, &reqs); err != nil {
		return nil, fmt.Errorf("list pending attendance status requests: %w", err)
	}
	return reqs, nil
}

func (c *Client) CreateAttendanceStatusRequest(ctx context.Context, req attendance.CreateStatusRequest) (attendance.StatusRequest, error) {
	var created attendance.StatusRequest
	if err := c.doJSON(ctx, http.MethodPost, "/api/attendance-status-requests", req, &created); err != nil {
		return attendance.StatusRequest{}, fmt.Errorf("create attendance status request: %w", err)
	}
	return created, nil
}

func (c *Client) UpdateAttendanceStatusRequest(ctx context.Context, id string, status request.Status, adminNote string) error {
	body := map[string]string{"status": string(status)}
	if adminNote != "" {
		body["adminNote"] = adminNote
	}
	if err := c.doJSON(ctx, http.MethodPut, "/api/attendance-status-requests/"+url.PathEscape(id), body, nil); err != nil {
		return fmt.Errorf("update attendance status request: %w", err)
	}
	return nil
}

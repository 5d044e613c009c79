package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
)

func (c *Client) ListLeaveRequests(ctx context.Context) ([]leave.LeaveRequest, error) {
	var reqs []leave.LeaveRequest
	if err := c.doJSON(ctx, http.MethodGet, "/api/leaverequests", nil, &reqs); err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	return reqs, nil
}

func (c *Client) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequest, error) {
	var created leave.LeaveRequest
	if err := c.doJSON(ctx, http.MethodPost, "/api/leaverequests", req, &created); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("create leave request: %w", err)
	}
	return created, nil
}

func (c *Client) UpdateLeaveRequestStatus(ctx context.Context, id string, status request.Status) error {
	body := map[string]string{"status": string(status)}
	if err := c.doJSON(ctx, http.MethodPut, "/api/leaverequests/"+url.PathEscape(id), body, nil); err != nil {
		return fmt.Errorf("update leave request: %w", err)
	}
	return nil
}

func (c *Client) DeleteLeaveRequest(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/leaverequests/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete leave request: %w", err)
	}
	return nil
}

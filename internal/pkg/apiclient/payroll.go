package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/payroll"
)

func (c *Client) ListMyPayrolls(ctx context.Context) ([]payroll.Payroll, error) {
	var records []payroll.Payroll
	if err := c.doJSON(ctx, http.MethodGet, "/api/payroll/me", nil, &records); err != nil {
		return nil, fmt.Errorf("list my payrolls: %w", err)
	}
	return records, nil
}

func (c *Client) ListPayrolls(ctx context.Context) ([]payroll.Payroll, error) {
	var records []payroll.Payroll
	if err := c.doJSON(ctx, http.MethodGet, "/api/payroll", nil, &records); err != nil {
		return nil, fmt.Errorf("list payrolls: %w", err)
	}
	return records, nil
}

func (c *Client) GeneratePayroll(ctx context.Context, req payroll.GenerateRequest) (payroll.Payroll, error) {
	var record payroll.Payroll
	if err := c.doJSON(ctx, http.MethodPost, "/api/payroll", req, &record); err != nil {
		return payroll.Payroll{}, fmt.Errorf("generate payroll: %w", err)
	}
	return record, nil
}

func (c *Client) ListPayrollSettings(ctx context.Context) ([]payroll.Setting, error) {
	var settings []payroll.Setting
	if err := c.doJSON(ctx, http.MethodGet, "/api/payroll-settings", nil, &settings); err != nil {
		return nil, fmt.Errorf("list payroll settings: %w", err)
	}
	return settings, nil
}

func (c *Client) GetPayrollSetting(ctx context.Context, userID string) (payroll.Setting, error) {
	var setting payroll.Setting
	if err := c.doJSON(ctx, http.MethodGet, "/api/payroll-settings/user/"+url.PathEscape(userID), nil, &setting); err != nil {
		return payroll.Setting{}, fmt.Errorf("get payroll setting: %w", err)
	}
	return setting, nil
}

func (c *Client) UpdatePayrollSetting(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.Setting, error) {
	var setting payroll.Setting
	if err := c.doJSON(ctx, http.MethodPut, "/api/payroll-settings/user/"+url.PathEscape(req.UserID), req, &setting); err != nil {
		return payroll.Setting{}, fmt.Errorf("update payroll setting: %w", err)
	}
	return setting, nil
}

func (c *Client) CalculatePayroll(ctx context.Context, req payroll.CalculateRequest) (payroll.Calculation, error) {
	var calc payroll.Calculation
	if err := c.doJSON(ctx, http.MethodPost, "/api/payroll-settings/calculate", req, &calc); err != nil {
		return payroll.Calculation{}, fmt.Errorf("calculate payroll: %w", err)
	}
	return calc, nil
}

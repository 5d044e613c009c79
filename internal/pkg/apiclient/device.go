package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/device"
)

// deviceHeaders forwards the middleware credentials; the backend proxies to the device with them.
func deviceHeaders(cfg device.Config) requestOption {
	return func(req *http.Request) {
		req.Header.Set("X-Device-Url", cfg.BaseURL)
		req.Header.Set("X-Device-Username", cfg.Username)
		req.Header.Set("X-Device-Password", cfg.Password)
		req.Header.Set("X-Device-Sn", cfg.DeviceSN)
	}
}

func (c *Client) GetDeviceStatus(ctx context.Context, cfg device.Config) (device.Status, error) {
	var status device.Status
	if err := c.doJSON(ctx, http.MethodGet, "/api/palm/status", nil, &status, deviceHeaders(cfg)); err != nil {
		return device.Status{}, fmt.Errorf("get device status: %w", err)
	}
	return status, nil
}

func (c *Client) ListDevicePersons(ctx context.Context, cfg device.Config) ([]device.Person, error) {
	var persons []device.Person
	if err := c.doJSON(ctx, http.MethodGet, "/api/device/persons", nil, &persons, deviceHeaders(cfg)); err != nil {
		return nil, fmt.Errorf("list device persons: %w", err)
	}
	return persons, nil
}

func (c *Client) RegisterPalm(ctx context.Context, cfg device.Config, req device.RegisterPalmRequest) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/palm/register", req, nil, deviceHeaders(cfg)); err != nil {
		return fmt.Errorf("register palm: %w", err)
	}
	return nil
}

func (c *Client) SyncPalms(ctx context.Context, cfg device.Config) (device.SyncResult, error) {
	var result device.SyncResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/palm/sync", nil, &result, deviceHeaders(cfg)); err != nil {
		return device.SyncResult{}, fmt.Errorf("sync palms: %w", err)
	}
	return result, nil
}

func (c *Client) DeletePalm(ctx context.Context, cfg device.Config, personID string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/palm/"+url.PathEscape(personID), nil, nil, deviceHeaders(cfg)); err != nil {
		return fmt.Errorf("delete palm: %w", err)
	}
	return nil
}

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/performance"
)

func periodQuery(filter performance.Filter) url.Values {
	query := url.Values{}
	if filter.Period != "" {
		query.Set("period", filter.Period)
	}
	return query
}

func (c *Client) GetMyPerformance(ctx context.Context, filter performance.Filter) (performance.Performance, error) {
	var p performance.Performance
	if err := c.doJSON(ctx, http.MethodGet, "/api/performance/me", nil, &p, withQuery(periodQuery(filter))); err != nil {
		return performance.Performance{}, fmt.Errorf("get my performance: %w", err)
	}
	return p, nil
}

func (c *Client) ListPerformance(ctx context.Context, filter performance.Filter) ([]performance.Performance, error) {
	var list []performance.Performance
	if err := c.doJSON(ctx, http.MethodGet, "/api/performance", nil, &list, withQuery(periodQuery(filter))); err != nil {
		return nil, fmt.Errorf("list performance: %w", err)
	}
	return list, nil
}

func (c *Client) GetUserPerformance(ctx context.Context, userID string, filter performance.Filter) (performance.Performance, error) {
	var p performance.Performance
	path := "/api/performance/user/" + url.PathEscape(userID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &p, withQuery(periodQuery(filter))); err != nil {
		return performance.Performance{}, fmt.Errorf("get user performance: %w", err)
	}
	return p, nil
}

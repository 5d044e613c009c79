package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
)

func (c *Client) ListNotifications(ctx context.Context) ([]notification.Notification, error) {
	var items []notification.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/api/notifications", nil, &items); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

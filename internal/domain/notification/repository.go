package notification

import (
	"context"
)

// Repository - interface for /api/notifications
type Repository interface {
	ListNotifications(ctx context.Context) ([]Notification, error)
}

package notification

import "errors"

// Notification domain errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotWatched           = errors.New("session has no notification watcher")
)

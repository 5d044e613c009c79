package notification

// Snapshot is the layout's view of one session's notification state.
type Snapshot struct {
	Badge         Badge
	Pending       []PendingItem
	Notifications []Notification
	Unread        int
}

// BadgeEvent is the payload streamed to the browser on every badge change.
type BadgeEvent struct {
	Total int   `json:"total"`
	Badge Badge `json:"badge"`
}

// NotificationsEvent carries the tray's unread counter.
type NotificationsEvent struct {
	Unread int `json:"unread"`
}

// UnreadCount counts notifications not yet read.
func UnreadCount(items []Notification) int {
	n := 0
	for _, item := range items {
		if !item.Read {
			n++
		}
	}
	return n
}

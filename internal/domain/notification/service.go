package notification

import (
	"context"
	"time"
)

// Service defines the shell layout's notification aggregator
type Service interface {
	// Snapshot returns the last known state for a session
	Snapshot(sessionID string) Snapshot

	// RefreshPending fetches the three pending lists now and publishes the badge.
	// ctx must carry the session's bearer token.
	RefreshPending(ctx context.Context, sessionID string) (Badge, error)

	// RefreshNotifications fetches the tray notifications now.
	RefreshNotifications(ctx context.Context, sessionID string) (int, error)

	// Watch starts the background polls for a session while a layout stream is
	// open. The returned func stops them once the last stream closes.
	Watch(sessionID string) func()

	// Signal asks the aggregator to refetch the pending lists out of band.
	Signal(sessionID string)

	// Forget drops all state for a session. It runs on logout and whenever
	// the session loses its token.
	Forget(sessionID string)

	// Sweep drops the state of sessions without an open stream that were
	// not touched within idle, and returns how many were dropped.
	Sweep(idle time.Duration) int
}

// Signaler publishes the out-of-band "refresh now" signal after a request was
// created or decided.
type Signaler interface {
	Signal(sessionID string)
}

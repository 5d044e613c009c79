package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Event names used on the dashboard stream
const (
	// EventRefresh asks the notification aggregator to refetch. Never sent to browsers.
	EventRefresh       = "refresh"
	EventBadge         = "badge"
	EventNotifications = "notifications"
	EventSession       = "session"
	// EventLogout tells open tabs that the session is gone.
	EventLogout = "logout"
)

// Event represents an SSE event to be sent to subscribers
type Event struct {
	SessionID string
	Event     string
	Data      interface{}
}

// Write encodes the event in text/event-stream framing.
func (e Event) Write(w io.Writer) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.Event, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Event, data)
	return err
}

// Hub fans events out to the subscribers of one browser session
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber for a session and returns the event channel and cleanup function
func (h *Hub) Subscribe(sessionID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)

	if h.subscribers[sessionID] == nil {
		h.subscribers[sessionID] = make(map[chan Event]struct{})
	}
	h.subscribers[sessionID][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[sessionID], ch)
			close(ch)
			if len(h.subscribers[sessionID]) == 0 {
				delete(h.subscribers, sessionID)
			}
		})
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a session
func (h *Hub) Publish(sessionID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event.SessionID = sessionID
	if subs, ok := h.subscribers[sessionID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for a session
func (h *Hub) SubscriberCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[sessionID]; ok {
		return len(subs)
	}
	return 0
}

// TotalSubscribers returns the total number of active subscribers across all sessions
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}

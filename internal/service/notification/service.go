package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/attendance"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/dailyreport"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/apiclient"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/sse"
	"golang.org/x/sync/errgroup"
)

// Config holds the poll periods of the layout jobs
type Config struct {
	PendingInterval      time.Duration // default: 15 seconds
	NotificationInterval time.Duration // default: 30 seconds
	ProfileInterval      time.Duration // default: 30 seconds
}

// Sources are the backend endpoints behind the badge and the tray.
type Sources struct {
	Leave         leave.LeaveRequestRepository
	Attendance    attendance.StatusRequestRepository
	EditRequests  dailyreport.EditRequestRepository
	Notifications notification.Repository
}

// Scheduler is the subset of the cron scheduler the aggregator drives.
type Scheduler interface {
	AddJob(name string, interval time.Duration, fn func(ctx context.Context) error)
	RemoveJob(name string) bool
}

// sessionState is the last known notification state of one browser session.
// issued/applied implement the per-list sequence guard: a response is only
// applied when no newer response for the same list has been applied.
type sessionState struct {
	mu sync.Mutex

	lists   map[notification.PendingKind][]notification.PendingItem
	issued  map[notification.PendingKind]uint64
	applied map[notification.PendingKind]uint64

	notifications    []notification.Notification
	notifIssued      uint64
	notifApplied     uint64
	notificationsSet bool

	watchers int
	stop     func()
	lastSeen time.Time
}

func newSessionState() *sessionState {
	return &sessionState{
		lists:   make(map[notification.PendingKind][]notification.PendingItem),
		issued:  make(map[notification.PendingKind]uint64),
		applied: make(map[notification.PendingKind]uint64),
	}
}

func (st *sessionState) next(kind notification.PendingKind) uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.issued[kind]++
	return st.issued[kind]
}

// apply stores items unless a newer response was applied already.
func (st *sessionState) apply(kind notification.PendingKind, seq uint64, items []notification.PendingItem) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if seq <= st.applied[kind] {
		return false
	}
	st.applied[kind] = seq
	st.lists[kind] = items
	return true
}

func (st *sessionState) badge() notification.Badge {
	st.mu.Lock()
	defer st.mu.Unlock()
	return notification.Badge{
		Leave:            len(st.lists[notification.KindLeave]),
		AttendanceStatus: len(st.lists[notification.KindAttendanceStatus]),
		DailyReportEdit:  len(st.lists[notification.KindDailyReportEdit]),
	}
}

// reset clears the lists and retires every sequence number handed out so
// far, so a fetch still in flight cannot bring the old lists back.
func (st *sessionState) reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, kind := range notification.AllPendingKinds() {
		delete(st.lists, kind)
		st.issued[kind]++
		st.applied[kind] = st.issued[kind]
	}
	st.notifications = nil
	st.notificationsSet = false
	st.notifIssued++
	st.notifApplied = st.notifIssued
}

type service struct {
	sources   Sources
	sessions  session.Service
	hub       *sse.Hub
	scheduler Scheduler
	config    Config
	now       func() time.Time

	mu     sync.Mutex
	states map[string]*sessionState
}

func (s *service) state(sessionID string) *sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[sessionID]
	if !ok {
		st = newSessionState()
		s.states[sessionID] = st
	}
	st.lastSeen = s.now()
	return st
}

// lookup returns the state of a session without creating one.
func (s *service) lookup(sessionID string) *sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[sessionID]
}

// authorize returns a ctx carrying the session token, or ok=false when the
// session has no admin to aggregate for.
func (s *service) authorize(ctx context.Context, sessionID string) (context.Context, bool, error) {
	token, err := s.sessions.Token(ctx, sessionID)
	if err != nil {
		return ctx, false, err
	}
	u, err := s.sessions.CachedUser(ctx, sessionID)
	if err != nil {
		return ctx, false, err
	}
	return apiclient.WithToken(ctx, token), u.IsAdmin(), nil
}

func (s *service) RefreshPending(ctx context.Context, sessionID string) (notification.Badge, error) {
	ctx, isAdmin, err := s.authorize(ctx, sessionID)
	if err != nil {
		return notification.Badge{}, err
	}
	st := s.state(sessionID)
	if !isAdmin {
		return st.badge(), nil
	}

	fetchers := map[notification.PendingKind]func(ctx context.Context) ([]notification.PendingItem, error){
		notification.KindLeave: func(ctx context.Context) ([]notification.PendingItem, error) {
			list, err := s.sources.Leave.ListLeaveRequests(ctx)
			return leaveItems(list), err
		},
		notification.KindAttendanceStatus: func(ctx context.Context) ([]notification.PendingItem, error) {
			list, err := s.sources.Attendance.ListPendingAttendanceStatusRequests(ctx)
			return attendanceItems(list), err
		},
		notification.KindDailyReportEdit: func(ctx context.Context) ([]notification.PendingItem, error) {
			list, err := s.sources.EditRequests.ListPendingEditRequests(ctx)
			return editItems(list), err
		},
	}

	// One list failing must not cancel the others, so no errgroup context.
	var g errgroup.Group
	for _, kind := range notification.AllPendingKinds() {
		fetch := fetchers[kind]
		seq := st.next(kind)
		g.Go(func() error {
			items, err := fetch(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				slog.Warn("pending list refresh failed, keeping last value", "kind", kind, "error", err)
				return nil
			}
			if !st.apply(kind, seq, items) {
				slog.Debug("stale pending list response dropped", "kind", kind, "seq", seq)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return st.badge(), err
	}

	badge := st.badge()
	s.hub.Publish(sessionID, sse.Event{
		Event: sse.EventBadge,
		Data:  notification.BadgeEvent{Total: badge.Total(), Badge: badge},
	})
	return badge, nil
}

func (s *service) RefreshNotifications(ctx context.Context, sessionID string) (int, error) {
	token, err := s.sessions.Token(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	st := s.state(sessionID)

	st.mu.Lock()
	st.notifIssued++
	seq := st.notifIssued
	st.mu.Unlock()

	items, err := s.sources.Notifications.ListNotifications(apiclient.WithToken(ctx, token))
	if err != nil {
		return 0, err
	}

	st.mu.Lock()
	if seq > st.notifApplied {
		st.notifApplied = seq
		st.notifications = items
		st.notificationsSet = true
	}
	unread := notification.UnreadCount(st.notifications)
	st.mu.Unlock()

	s.hub.Publish(sessionID, sse.Event{
		Event: sse.EventNotifications,
		Data:  notification.NotificationsEvent{Unread: unread},
	})
	return unread, nil
}

func (s *service) Snapshot(sessionID string) notification.Snapshot {
	st := s.lookup(sessionID)
	if st == nil {
		return notification.Snapshot{}
	}
	badge := st.badge()

	st.mu.Lock()
	defer st.mu.Unlock()

	snap := notification.Snapshot{Badge: badge}
	for _, kind := range notification.AllPendingKinds() {
		snap.Pending = append(snap.Pending, st.lists[kind]...)
	}
	snap.Notifications = append(snap.Notifications, st.notifications...)
	snap.Unread = notification.UnreadCount(st.notifications)
	return snap
}

func (s *service) Signal(sessionID string) {
	s.hub.Publish(sessionID, sse.Event{Event: sse.EventRefresh})
}

func jobNames(sessionID string) (pending, notifications, profile string) {
	return "pending:" + sessionID, "notifications:" + sessionID, "profile:" + sessionID
}

// quiet drops the errors a background poll is expected to hit.
func quiet(name string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrUnauthenticated), errors.Is(err, context.Canceled):
		slog.Debug("poll skipped", "job", name, "error", err)
	default:
		slog.Warn("poll failed", "job", name, "error", err)
	}
	return nil
}

func (s *service) Watch(sessionID string) func() {
	st := s.state(sessionID)

	st.mu.Lock()
	st.watchers++
	first := st.watchers == 1
	st.mu.Unlock()

	if first {
		s.start(sessionID, st)
	}

	var once sync.Once
	return func() {
		once.Do(func() { s.unwatch(sessionID, st) })
	}
}

func (s *service) start(sessionID string, st *sessionState) {
	pendingJob, notificationsJob, profileJob := jobNames(sessionID)

	ctx, cancel := context.WithCancel(context.Background())
	events, unsubscribe := s.hub.Subscribe(sessionID)
	changes, unsubscribeSession := s.sessions.Subscribe(sessionID)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if ev.Event == sse.EventRefresh {
					_, err := s.RefreshPending(ctx, sessionID)
					_ = quiet("refresh", err)
				}
			case change, ok := <-changes:
				if !ok {
					return
				}
				if change.Key == session.KeyToken && change.Removed {
					st.reset()
				}
			}
		}
	}()

	s.scheduler.AddJob(pendingJob, s.config.PendingInterval, func(ctx context.Context) error {
		_, err := s.RefreshPending(ctx, sessionID)
		return quiet(pendingJob, err)
	})
	s.scheduler.AddJob(notificationsJob, s.config.NotificationInterval, func(ctx context.Context) error {
		_, err := s.RefreshNotifications(ctx, sessionID)
		return quiet(notificationsJob, err)
	})
	s.scheduler.AddJob(profileJob, s.config.ProfileInterval, func(ctx context.Context) error {
		_, err := s.sessions.RefreshProfile(ctx, sessionID)
		return quiet(profileJob, err)
	})

	st.mu.Lock()
	st.stop = func() {
		s.scheduler.RemoveJob(pendingJob)
		s.scheduler.RemoveJob(notificationsJob)
		s.scheduler.RemoveJob(profileJob)
		cancel()
		unsubscribe()
		unsubscribeSession()
	}
	st.mu.Unlock()
	slog.Debug("layout polls started", "session_id", sessionID)
}

func (s *service) unwatch(sessionID string, st *sessionState) {
	st.mu.Lock()
	st.watchers--
	var stop func()
	if st.watchers <= 0 {
		st.watchers = 0
		stop, st.stop = st.stop, nil
	}
	st.mu.Unlock()

	if stop != nil {
		stop()
		slog.Debug("layout polls stopped", "session_id", sessionID)
	}
}

func (s *service) Forget(sessionID string) {
	s.mu.Lock()
	st, ok := s.states[sessionID]
	delete(s.states, sessionID)
	s.mu.Unlock()
	if !ok {
		return
	}

	st.mu.Lock()
	stop := st.stop
	st.stop = nil
	st.watchers = 0
	st.mu.Unlock()
	if stop != nil {
		stop()
	}
	st.reset()
}

func (s *service) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, st := range s.states {
		st.mu.Lock()
		stale := st.watchers == 0 && st.lastSeen.Before(cutoff)
		st.mu.Unlock()
		if stale {
			delete(s.states, id)
			n++
		}
	}
	return n
}

// NewNotificationService creates the layout aggregator
func NewNotificationService(sources Sources, sessions session.Service, hub *sse.Hub, scheduler Scheduler, cfg Config) notification.Service {
	if cfg.PendingInterval == 0 {
		cfg.PendingInterval = 15 * time.Second
	}
	if cfg.NotificationInterval == 0 {
		cfg.NotificationInterval = 30 * time.Second
	}
	if cfg.ProfileInterval == 0 {
		cfg.ProfileInterval = 30 * time.Second
	}

	s := &service{
		sources:   sources,
		sessions:  sessions,
		hub:       hub,
		scheduler: scheduler,
		config:    cfg,
		now:       time.Now,
		states:    make(map[string]*sessionState),
	}
	sessions.OnSignOut(s.Forget)
	return s
}

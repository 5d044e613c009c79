package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/auth"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/device"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/apiclient"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/secret"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/sse"
)

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

type SessionServiceImpl struct {
	repo     session.Repository
	authRepo auth.Repository
	box      *secret.Box
	hub      *sse.Hub

	locksMu sync.Mutex
	locks   map[string]*keyedLock

	subsMu sync.RWMutex
	subs   map[string]map[chan session.Change]struct{}

	hooksMu  sync.RWMutex
	signOuts []func(id string)
}

// lock serializes writers of one session.
func (s *SessionServiceImpl) lock(id string) func() {
	s.locksMu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &keyedLock{}
		s.locks[id] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.locksMu.Unlock()
	}
}

func (s *SessionServiceImpl) notify(id string, changes ...session.Change) {
	s.subsMu.RLock()
	for ch := range s.subs[id] {
		for _, c := range changes {
			select {
			case ch <- c:
			default:
			}
		}
	}
	s.subsMu.RUnlock()

	for _, c := range changes {
		s.hub.Publish(id, sse.Event{Event: sse.EventSession, Data: c})
	}

	for _, c := range changes {
		if c.Key == session.KeyToken && c.Removed {
			s.signedOut(id)
			break
		}
	}
}

func (s *SessionServiceImpl) signedOut(id string) {
	s.hooksMu.RLock()
	hooks := append([]func(string){}, s.signOuts...)
	s.hooksMu.RUnlock()
	for _, fn := range hooks {
		fn(id)
	}
}

func (s *SessionServiceImpl) OnSignOut(fn func(id string)) {
	s.hooksMu.Lock()
	s.signOuts = append(s.signOuts, fn)
	s.hooksMu.Unlock()
}

func (s *SessionServiceImpl) Subscribe(id string) (<-chan session.Change, func()) {
	ch := make(chan session.Change, 8)

	s.subsMu.Lock()
	if s.subs[id] == nil {
		s.subs[id] = make(map[chan session.Change]struct{})
	}
	s.subs[id][ch] = struct{}{}
	s.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs[id], ch)
			if len(s.subs[id]) == 0 {
				delete(s.subs, id)
			}
			s.subsMu.Unlock()
			close(ch)
		})
	}
}

func (s *SessionServiceImpl) write(ctx context.Context, id string, values session.Values) error {
	if id == "" {
		return session.ErrMissingID
	}
	unlock := s.lock(id)
	err := s.repo.SetMany(ctx, id, values)
	unlock()
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	changes := make([]session.Change, 0, len(values))
	for k := range values {
		changes = append(changes, session.Change{Key: k})
	}
	s.notify(id, changes...)
	return nil
}

func (s *SessionServiceImpl) remove(ctx context.Context, id string, keys ...session.Key) error {
	if id == "" {
		return session.ErrMissingID
	}
	unlock := s.lock(id)
	err := s.repo.Delete(ctx, id, keys...)
	unlock()
	if err != nil {
		return fmt.Errorf("delete session keys: %w", err)
	}

	changes := make([]session.Change, 0, len(keys))
	for _, k := range keys {
		changes = append(changes, session.Change{Key: k, Removed: true})
	}
	s.notify(id, changes...)
	return nil
}

func (s *SessionServiceImpl) load(ctx context.Context, id string) (session.Values, error) {
	if id == "" {
		return nil, session.ErrMissingID
	}
	values, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return values, nil
}

func (s *SessionServiceImpl) storeUser(ctx context.Context, id string, values session.Values, u user.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	values[session.KeyUser] = string(raw)
	return s.write(ctx, id, values)
}

func (s *SessionServiceImpl) Authenticate(ctx context.Context, id string) (*user.User, string, error) {
	values, err := s.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	token := values[session.KeyToken]
	if token == "" {
		return nil, "", session.ErrUnauthenticated
	}

	me, err := s.authRepo.Me(apiclient.WithToken(ctx, token))
	if err != nil {
		// An aborted page load says nothing about the token.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", ctxErr
		}
		slog.Info("session token rejected, clearing session", "error", err)
		if clearErr := s.Expire(context.WithoutCancel(ctx), id); clearErr != nil {
			slog.Error("failed to clear session", "error", clearErr)
		}
		return nil, "", fmt.Errorf("%w: %w", session.ErrUnauthenticated, err)
	}

	if err := s.storeUser(ctx, id, session.Values{}, me); err != nil {
		return nil, "", err
	}
	return &me, token, nil
}

func (s *SessionServiceImpl) Login(ctx context.Context, id string, req auth.LoginRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.authRepo.Login(apiclient.WithToken(ctx, ""), req)
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %w", auth.ErrInvalidCredentials, err)
		}
		return nil, err
	}
	if resp.Token == "" {
		return nil, auth.ErrMissingToken
	}

	// login responses do not always carry the full profile
	profile := resp.User
	if profile.ID.IsZero() {
		profile, err = s.authRepo.Me(apiclient.WithToken(ctx, resp.Token))
		if err != nil {
			return nil, err
		}
	}

	if err := s.storeUser(ctx, id, session.Values{session.KeyToken: resp.Token}, profile); err != nil {
		return nil, err
	}
	slog.Info("user logged in", "user_id", profile.ID, "role", profile.Role)
	return &profile, nil
}

func (s *SessionServiceImpl) Logout(ctx context.Context, id string) error {
	if id == "" {
		return session.ErrMissingID
	}
	unlock := s.lock(id)
	err := s.repo.Destroy(ctx, id)
	unlock()
	if err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}

	changes := make([]session.Change, 0, len(session.AllKeys()))
	for _, k := range session.AllKeys() {
		changes = append(changes, session.Change{Key: k, Removed: true})
	}
	s.notify(id, changes...)
	s.hub.Publish(id, sse.Event{Event: sse.EventLogout, Data: map[string]string{"redirect": "/login"}})
	return nil
}

func (s *SessionServiceImpl) Expire(ctx context.Context, id string) error {
	if err := s.remove(ctx, id, session.KeyToken, session.KeyUser); err != nil {
		return err
	}
	s.hub.Publish(id, sse.Event{Event: sse.EventLogout, Data: map[string]string{"redirect": "/login"}})
	return nil
}

func (s *SessionServiceImpl) Token(ctx context.Context, id string) (string, error) {
	values, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	token := values[session.KeyToken]
	if token == "" {
		return "", session.ErrUnauthenticated
	}
	return token, nil
}

func (s *SessionServiceImpl) CachedUser(ctx context.Context, id string) (*user.User, error) {
	values, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	raw := values[session.KeyUser]
	if raw == "" {
		return nil, session.ErrUnauthenticated
	}
	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode cached user: %w", err)
	}
	return &u, nil
}

func (s *SessionServiceImpl) RefreshProfile(ctx context.Context, id string) (*user.User, error) {
	token, err := s.Token(ctx, id)
	if err != nil {
		return nil, err
	}
	me, err := s.authRepo.Me(apiclient.WithToken(ctx, token))
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			if clearErr := s.Expire(context.WithoutCancel(ctx), id); clearErr != nil {
				slog.Error("failed to clear session", "error", clearErr)
			}
		}
		return nil, err
	}
	if err := s.storeUser(ctx, id, session.Values{}, me); err != nil {
		return nil, err
	}
	return &me, nil
}

// UserViewMode reports whether an admin is browsing the user views. A
// missing or malformed value reads as false.
func (s *SessionServiceImpl) UserViewMode(ctx context.Context, id string) (bool, error) {
	values, err := s.load(ctx, id)
	if err != nil {
		return false, err
	}
	enabled, _ := strconv.ParseBool(values[session.KeyAdminUserViewMode])
	return enabled, nil
}

func (s *SessionServiceImpl) SetUserViewMode(ctx context.Context, id string, enabled bool) error {
	return s.write(ctx, id, session.Values{session.KeyAdminUserViewMode: strconv.FormatBool(enabled)})
}

func (s *SessionServiceImpl) DeviceConfig(ctx context.Context, id string) (device.Config, error) {
	values, err := s.load(ctx, id)
	if err != nil {
		return device.Config{}, err
	}
	sealed := values[session.KeyDeviceConfig]
	if sealed == "" {
		return device.Config{}, device.ErrNotConfigured
	}
	raw, err := s.box.Open(sealed)
	if err != nil {
		slog.Warn("stored device config cannot be opened", "error", err)
		return device.Config{}, device.ErrNotConfigured
	}
	var cfg device.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return device.Config{}, fmt.Errorf("decode device config: %w", err)
	}
	return cfg, nil
}

func (s *SessionServiceImpl) SetDeviceConfig(ctx context.Context, id string, cfg device.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal device config: %w", err)
	}
	sealed, err := s.box.Seal(raw)
	if err != nil {
		return err
	}
	return s.write(ctx, id, session.Values{session.KeyDeviceConfig: sealed})
}

func (s *SessionServiceImpl) ClearDeviceConfig(ctx context.Context, id string) error {
	return s.remove(ctx, id, session.KeyDeviceConfig)
}

func NewSessionService(repo session.Repository, authRepo auth.Repository, box *secret.Box, hub *sse.Hub) session.Service {
	return &SessionServiceImpl{
		repo:     repo,
		authRepo: authRepo,
		box:      box,
		hub:      hub,
		locks:    make(map[string]*keyedLock),
		subs:     make(map[string]map[chan session.Change]struct{}),
	}
}

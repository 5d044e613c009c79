package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
)

type entry struct {
	values   session.Values
	lastSeen time.Time
}

// SessionStore keeps sessions in process memory. Sessions are lost on restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *SessionStore) Load(ctx context.Context, id string) (session.Values, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return session.Values{}, nil
	}
	if s.ttl > 0 && s.now().Sub(e.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return session.Values{}, nil
	}
	e.lastSeen = s.now()

	out := make(session.Values, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out, nil
}

func (s *SessionStore) Set(ctx context.Context, id string, key session.Key, value string) error {
	return s.SetMany(ctx, id, session.Values{key: value})
}

func (s *SessionStore) SetMany(ctx context.Context, id string, values session.Values) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		e = &entry{values: make(session.Values)}
		s.sessions[id] = e
	}
	for k, v := range values {
		e.values[k] = v
	}
	e.lastSeen = s.now()
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string, keys ...session.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(e.values, k)
	}
	if len(e.values) == 0 {
		delete(s.sessions, id)
	}
	return nil
}

func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) Purge(ctx context.Context, idleFor time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	cutoff := s.now().Add(-idleFor)
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	goredis "github.com/go-redis/redis/v8"
)

const keyPrefix = "hexasuite:session:"

// SessionStore keeps one hash per session. Every read or write pushes the
// expiry out by ttl, so idle sessions vanish without a purge job.
type SessionStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func NewSessionStore(rdb *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func hashKey(id string) string {
	return keyPrefix + id
}

func (s *SessionStore) Load(ctx context.Context, id string) (session.Values, error) {
	raw, err := s.rdb.HGetAll(ctx, hashKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	values := make(session.Values, len(raw))
	for k, v := range raw {
		values[session.Key(k)] = v
	}
	if len(values) > 0 {
		if err := s.rdb.Expire(ctx, hashKey(id), s.ttl).Err(); err != nil {
			return nil, fmt.Errorf("touch session: %w", err)
		}
	}
	return values, nil
}

func (s *SessionStore) Set(ctx context.Context, id string, key session.Key, value string) error {
	return s.SetMany(ctx, id, session.Values{key: value})
}

func (s *SessionStore) SetMany(ctx context.Context, id string, values session.Values) error {
	if len(values) == 0 {
		return nil
	}
	fields := make(map[string]interface{}, len(values))
	for k, v := range values {
		fields[string(k)] = v
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, hashKey(id), fields)
		pipe.Expire(ctx, hashKey(id), s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string, keys ...session.Key) error {
	if len(keys) == 0 {
		return nil
	}
	fields := make([]string, len(keys))
	for i, k := range keys {
		fields[i] = string(k)
	}
	if err := s.rdb.HDel(ctx, hashKey(id), fields...).Err(); err != nil {
		return fmt.Errorf("delete session keys: %w", err)
	}
	return nil
}

func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, hashKey(id)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

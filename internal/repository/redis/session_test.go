package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *SessionStore {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb, err := NewClient(context.Background(), addr, os.Getenv("TEST_REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })
	return NewSessionStore(rdb, ttl)
}

func TestSessionStore(t *testing.T) {
	store := newTestStore(t, time.Minute)
	ctx := context.Background()
	id := uuid.NewString()
	t.Cleanup(func() { _ = store.Destroy(ctx, id) })

	require.NoError(t, store.SetMany(ctx, id, session.Values{
		session.KeyToken: "tok",
		session.KeyUser:  `{"id":7}`,
	}))

	values, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "tok", values[session.KeyToken])

	ttl, err := store.rdb.TTL(ctx, hashKey(id)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)

	require.NoError(t, store.Delete(ctx, id, session.KeyToken))
	values, err = store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, session.Values{session.KeyUser: `{"id":7}`}, values)

	require.NoError(t, store.Destroy(ctx, id))
	values, err = store.Load(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestSessionStore_Expires(t *testing.T) {
	store := newTestStore(t, time.Second)
	ctx := context.Background()
	id := uuid.NewString()

	require.NoError(t, store.Set(ctx, id, session.KeyToken, "tok"))
	time.Sleep(1500 * time.Millisecond)

	values, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, values)
}

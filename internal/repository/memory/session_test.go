package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SetLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Hour)

	values, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, values)

	require.NoError(t, store.SetMany(ctx, "s1", session.Values{
		session.KeyToken: "tok",
		session.KeyUser:  `{"id":1}`,
	}))
	require.NoError(t, store.Set(ctx, "s1", session.KeyAdminUserViewMode, "true"))

	values, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok", values[session.KeyToken])
	assert.Equal(t, "true", values[session.KeyAdminUserViewMode])

	// returned map is a copy
	values[session.KeyToken] = "mutated"
	again, _ := store.Load(ctx, "s1")
	assert.Equal(t, "tok", again[session.KeyToken])

	require.NoError(t, store.Delete(ctx, "s1", session.KeyToken, session.KeyUser))
	values, _ = store.Load(ctx, "s1")
	assert.Equal(t, session.Values{session.KeyAdminUserViewMode: "true"}, values)

	require.NoError(t, store.Destroy(ctx, "s1"))
	values, _ = store.Load(ctx, "s1")
	assert.Empty(t, values)
}

func TestSessionStore_ExpiresIdleSessions(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "old", session.KeyToken, "a"))
	require.NoError(t, store.Set(ctx, "fresh", session.KeyToken, "b"))

	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Set(ctx, "fresh", session.KeyToken, "b"))

	values, _ := store.Load(ctx, "old")
	assert.Empty(t, values)

	require.NoError(t, store.Set(ctx, "idle", session.KeyToken, "c"))
	now = now.Add(30 * time.Second)
	removed, err := store.Purge(ctx, 20*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

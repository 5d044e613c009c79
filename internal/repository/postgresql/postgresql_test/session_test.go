package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	defer setup.Close()
	ctx := context.Background()

	repo := postgresql.NewSessionRepository(setup.DB, time.Hour)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, setup.TruncateAllTables(ctx))

	t.Run("set many and load", func(t *testing.T) {
		require.NoError(t, repo.SetMany(ctx, "s1", session.Values{
			session.KeyToken: "tok",
			session.KeyUser:  `{"id":1}`,
		}))
		require.NoError(t, repo.Set(ctx, "s1", session.KeyToken, "tok2"))

		values, err := repo.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "tok2", values[session.KeyToken])
		assert.Equal(t, `{"id":1}`, values[session.KeyUser])
	})

	t.Run("delete keys", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "s1", session.KeyToken))
		values, err := repo.Load(ctx, "s1")
		require.NoError(t, err)
		_, ok := values[session.KeyToken]
		assert.False(t, ok)
		assert.Len(t, values, 1)
	})

	t.Run("destroy", func(t *testing.T) {
		require.NoError(t, repo.Destroy(ctx, "s1"))
		values, err := repo.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("purge idle", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "s2", session.KeyToken, "x"))
		_, err := setup.DB.Exec(ctx, `UPDATE dashboard_sessions SET updated_at = NOW() - INTERVAL '2 hours' WHERE id = 's2'`)
		require.NoError(t, err)

		values, err := repo.Load(ctx, "s2")
		require.NoError(t, err)
		assert.Empty(t, values)

		removed, err := repo.Purge(ctx, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)
	})
}

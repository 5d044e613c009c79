package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/session"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS dashboard_sessions (
	id         TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (id, key)
);
CREATE INDEX IF NOT EXISTS dashboard_sessions_updated_at_idx ON dashboard_sessions (updated_at);
`

type SessionRepository struct {
	db  *database.DB
	ttl time.Duration
}

// NewSessionRepository stores one row per session key. Rows idle longer than
// ttl are invisible to Load and removed by Purge.
func NewSessionRepository(db *database.DB, ttl time.Duration) *SessionRepository {
	return &SessionRepository{db: db, ttl: ttl}
}

// EnsureSchema creates the sessions table when missing.
func (r *SessionRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, sessionSchema); err != nil {
		return fmt.Errorf("create dashboard_sessions: %w", err)
	}
	return nil
}

func (r *SessionRepository) Load(ctx context.Context, id string) (session.Values, error) {
	values := make(session.Values)
	err := WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		q := GetQuerier(ctx, r.db)
		rows, err := q.Query(ctx, `
			SELECT key, value FROM dashboard_sessions
			WHERE id = $1 AND updated_at > NOW() - make_interval(secs => $2)`,
			id, r.ttl.Seconds())
		if err != nil {
			return fmt.Errorf("query session: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var key, value string
			if err := rows.Scan(&key, &value); err != nil {
				return fmt.Errorf("scan session: %w", err)
			}
			values[session.Key(key)] = value
		}
		if err := rows.Err(); err != nil {
			return err
		}
		if len(values) == 0 {
			return nil
		}

		// sliding expiry
		if _, err := q.Exec(ctx, `UPDATE dashboard_sessions SET updated_at = NOW() WHERE id = $1`, id); err != nil {
			return fmt.Errorf("touch session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *SessionRepository) Set(ctx context.Context, id string, key session.Key, value string) error {
	return r.SetMany(ctx, id, session.Values{key: value})
}

func (r *SessionRepository) SetMany(ctx context.Context, id string, values session.Values) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		q := GetQuerier(ctx, r.db)
		for key, value := range values {
			_, err := q.Exec(ctx, `
				INSERT INTO dashboard_sessions (id, key, value, updated_at)
				VALUES ($1, $2, $3, NOW())
				ON CONFLICT (id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
				id, string(key), value)
			if err != nil {
				return fmt.Errorf("upsert session key %s: %w", key, err)
			}
		}
		return nil
	})
}

func (r *SessionRepository) Delete(ctx context.Context, id string, keys ...session.Key) error {
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, `DELETE FROM dashboard_sessions WHERE id = $1 AND key = ANY($2)`, id, names); err != nil {
		return fmt.Errorf("delete session keys: %w", err)
	}
	return nil
}

func (r *SessionRepository) Destroy(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, `DELETE FROM dashboard_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Purge(ctx context.Context, idleFor time.Duration) (int64, error) {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM dashboard_sessions WHERE updated_at < NOW() - make_interval(secs => $1)`, idleFor.Seconds())
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

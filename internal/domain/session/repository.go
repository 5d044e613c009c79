package session

import (
	"context"
	"time"
)

// Repository persists session values. Implementations: memory, postgres, redis.
type Repository interface {
	Load(ctx context.Context, id string) (Values, error)
	Set(ctx context.Context, id string, key Key, value string) error
	// SetMany writes all values atomically.
	SetMany(ctx context.Context, id string, values Values) error
	Delete(ctx context.Context, id string, keys ...Key) error
	Destroy(ctx context.Context, id string) error
}

// Purger is implemented by stores that need expired sessions removed by a job.
type Purger interface {
	Purge(ctx context.Context, idleFor time.Duration) (int64, error)
}

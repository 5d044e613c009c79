package performance

import "context"

type PerformanceService interface {
	GetMine(ctx context.Context, filter Filter) (Performance, error)
	// List returns every employee's scorecard sorted by score, best first
	List(ctx context.Context, filter Filter) ([]Performance, error)
	GetForUser(ctx context.Context, userID string, filter Filter) (Performance, error)
}

package performance

import "context"

// PerformanceRepository - interface for /api/performance
type PerformanceRepository interface {
	GetMyPerformance(ctx context.Context, filter Filter) (Performance, error)
	ListPerformance(ctx context.Context, filter Filter) ([]Performance, error)
	GetUserPerformance(ctx context.Context, userID string, filter Filter) (Performance, error)
}

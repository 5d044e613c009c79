package performance

import (
	"context"
	"fmt"
	"sort"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/performance"
)

type PerformanceServiceImpl struct {
	performanceRepo performance.PerformanceRepository
}

func NewPerformanceService(performanceRepo performance.PerformanceRepository) performance.PerformanceService {
	return &PerformanceServiceImpl{performanceRepo: performanceRepo}
}

func (s *PerformanceServiceImpl) GetMine(ctx context.Context, filter performance.Filter) (performance.Performance, error) {
	if err := filter.Validate(); err != nil {
		return performance.Performance{}, err
	}
	return s.performanceRepo.GetMyPerformance(ctx, filter)
}

func (s *PerformanceServiceImpl) List(ctx context.Context, filter performance.Filter) ([]performance.Performance, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	list, err := s.performanceRepo.ListPerformance(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list performance: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	return list, nil
}

func (s *PerformanceServiceImpl) GetForUser(ctx context.Context, userID string, filter performance.Filter) (performance.Performance, error) {
	if userID == "" {
		return performance.Performance{}, performance.ErrPerformanceNotFound
	}
	if err := filter.Validate(); err != nil {
		return performance.Performance{}, err
	}
	return s.performanceRepo.GetUserPerformance(ctx, userID, filter)
}

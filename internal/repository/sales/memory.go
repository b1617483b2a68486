package sales

import (
	"context"
	"sync"

	"alanshor-pos/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	weekly []domain.SalesPoint
	daily  []domain.SalesReportRow
	stats  domain.DashboardStats
}

func NewMemory(weekly []domain.SalesPoint, daily []domain.SalesReportRow, stats domain.DashboardStats) Repository {
	return &memoryRepo{weekly: weekly, daily: daily, stats: stats}
}

func (r *memoryRepo) WeeklySales(_ context.Context) ([]domain.SalesPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SalesPoint, len(r.weekly))
	copy(out, r.weekly)
	return out, nil
}

func (r *memoryRepo) DailyReports(_ context.Context) ([]domain.SalesReportRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SalesReportRow, len(r.daily))
	copy(out, r.daily)
	return out, nil
}

func (r *memoryRepo) DashboardStats(_ context.Context) (*domain.DashboardStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := r.stats
	return &stats, nil
}

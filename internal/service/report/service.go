package report

import (
	"context"
	"errors"
	"time"

	"alanshor-pos/internal/domain"
)

type salesRepo interface {
	WeeklySales(ctx context.Context) ([]domain.SalesPoint, error)
	DailyReports(ctx context.Context) ([]domain.SalesReportRow, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type Service struct {
	repo salesRepo
}

func New(repo salesRepo) *Service {
	return &Service{repo: repo}
}

// Daily returns the report rows for a single date, or all rows when the date
// is empty. A date with no rows is an empty result, not an error.
func (s *Service) Daily(ctx context.Context, date string) ([]domain.SalesReportRow, error) {
	rows, err := s.repo.DailyReports(ctx)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return rows, nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}
	out := make([]domain.SalesReportRow, 0, 1)
	for _, row := range rows {
		if row.Date == date {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *Service) Weekly(ctx context.Context) ([]domain.SalesPoint, error) {
	return s.repo.WeeklySales(ctx)
}

// Dashboard bundles the stat cards and the weekly series for the dashboard
// panel.
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardStats, []domain.SalesPoint, error) {
	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return nil, nil, err
	}
	weekly, err := s.repo.WeeklySales(ctx)
	if err != nil {
		return nil, nil, err
	}
	return stats, weekly, nil
}

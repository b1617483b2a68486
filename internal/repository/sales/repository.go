package sales

import (
	"context"

	"alanshor-pos/internal/domain"
)

type Repository interface {
	WeeklySales(ctx context.Context) ([]domain.SalesPoint, error)
	DailyReports(ctx context.Context) ([]domain.SalesReportRow, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

package customer

import (
	"context"

	"alanshor-pos/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, term string) ([]domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}

package catalog

import (
	"context"

	"alanshor-pos/internal/domain"
)

// Repository is the read/write contract over the product catalog. The
// checkout engine only consumes the lookup side; the inventory panel uses
// the full surface.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	Search(ctx context.Context, term string) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
}

package settings

import (
	"context"

	"alanshor-pos/internal/domain"
)

type Repository interface {
	StoreProfile(ctx context.Context) (*domain.StoreProfile, error)
	SaveStoreProfile(ctx context.Context, p domain.StoreProfile) (*domain.StoreProfile, error)
	Users(ctx context.Context) ([]domain.User, error)
}

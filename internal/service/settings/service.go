package settings

import (
	"context"
	"errors"
	"strings"

	"alanshor-pos/internal/domain"
)

type settingsRepo interface {
	StoreProfile(ctx context.Context) (*domain.StoreProfile, error)
	SaveStoreProfile(ctx context.Context, p domain.StoreProfile) (*domain.StoreProfile, error)
	Users(ctx context.Context) ([]domain.User, error)
}

type Service struct {
	repo settingsRepo
}

func New(repo settingsRepo) *Service {
	return &Service{repo: repo}
}

type StoreProfileInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (s *Service) StoreProfile(ctx context.Context) (*domain.StoreProfile, error) {
	return s.repo.StoreProfile(ctx)
}

func (s *Service) UpdateStoreProfile(ctx context.Context, in StoreProfileInput) (*domain.StoreProfile, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("store name required")
	}
	return s.repo.SaveStoreProfile(ctx, domain.StoreProfile{
		Name:    strings.TrimSpace(in.Name),
		Address: strings.TrimSpace(in.Address),
		Phone:   strings.TrimSpace(in.Phone),
	})
}

func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	return s.repo.Users(ctx)
}

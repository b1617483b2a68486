package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"alanshor-pos/internal/domain"
)

type catalogRepo interface {
	Search(ctx context.Context, term string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
}

type Service struct {
	repo catalogRepo
}

func New(repo catalogRepo) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name     string `json:"name"`
	Barcode  string `json:"barcode"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"imageUrl"`
}

type UpdateInput struct {
	Name     string `json:"name"`
	Barcode  string `json:"barcode"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"imageUrl"`
}

// List returns catalog entries matching the panel's search box; an empty
// term returns everything, newest first.
func (s *Service) List(ctx context.Context, term string) ([]domain.Product, error) {
	return s.repo.Search(ctx, term)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if err := validate(in.Name, in.Barcode, in.Category, in.Price, in.Stock); err != nil {
		return nil, err
	}
	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		imageURL = fmt.Sprintf("https://picsum.photos/seed/%s/100", strings.TrimSpace(in.Name))
	}
	return s.repo.Create(ctx, domain.Product{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Price:    in.Price,
		Stock:    in.Stock,
		ImageURL: imageURL,
		Barcode:  strings.TrimSpace(in.Barcode),
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	if err := validate(in.Name, in.Barcode, in.Category, in.Price, in.Stock); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		imageURL = existing.ImageURL
	}
	return s.repo.Update(ctx, domain.Product{
		ID:       existing.ID,
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Price:    in.Price,
		Stock:    in.Stock,
		ImageURL: imageURL,
		Barcode:  strings.TrimSpace(in.Barcode),
	})
}

func validate(name, barcode, category string, price int64, stock int) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(barcode) == "" {
		return errors.New("barcode required")
	}
	if strings.TrimSpace(category) == "" {
		return errors.New("category required")
	}
	if price <= 0 {
		return errors.New("price must be positive")
	}
	if stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

package customer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"alanshor-pos/internal/domain"
)

type customerRepo interface {
	Search(ctx context.Context, term string) ([]domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}

type Service struct {
	repo customerRepo
	now  func() time.Time
}

func New(repo customerRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (s *Service) List(ctx context.Context, term string) ([]domain.Customer, error) {
	return s.repo.Search(ctx, term)
}

// Create registers a new loyalty record. Membership starts today and total
// spend starts at zero.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, errors.New("phone required")
	}
	return s.repo.Create(ctx, domain.Customer{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		MemberSince: s.now().Format("2006-01-02"),
		TotalSpent:  0,
	})
}

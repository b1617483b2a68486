package customer

import (
	"context"
	"strings"
	"sync"

	"alanshor-pos/internal/domain"
)

type memoryRepo struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
	order     []string
}

func NewMemory(seed []domain.Customer) Repository {
	r := &memoryRepo{customers: make(map[string]domain.Customer, len(seed))}
	for _, c := range seed {
		r.customers[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.customers[id])
	}
	return out, nil
}

// Search matches a case-insensitive substring of the name or phone number.
func (r *memoryRepo) Search(ctx context.Context, term string) ([]domain.Customer, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return r.List(ctx)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Customer
	for _, id := range r.order {
		c := r.customers[id]
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[c.ID] = c
	r.order = append([]string{c.ID}, r.order...)
	return &c, nil
}

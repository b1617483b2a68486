package catalog

import (
	"context"
	"strings"
	"sync"

	"alanshor-pos/internal/domain"
)

// memoryRepo keeps the catalog in process memory, seeded at startup.
// Listing order is newest first: seed order is preserved and newly created
// products are prepended.
type memoryRepo struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	order    []string
}

func NewMemory(seed []domain.Product) Repository {
	r := &memoryRepo{products: make(map[string]domain.Product, len(seed))}
	for _, p := range seed {
		r.products[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(), nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) GetByBarcode(_ context.Context, barcode string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if p := r.products[id]; p.Barcode == barcode {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Search matches a case-insensitive substring of the name, barcode or
// category. An empty term returns the full catalog.
func (r *memoryRepo) Search(_ context.Context, term string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return r.snapshot(), nil
	}
	var out []domain.Product
	for _, id := range r.order {
		p := r.products[id]
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Barcode), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	r.order = append([]string{p.ID}, r.order...)
	return &p, nil
}

func (r *memoryRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	r.products[p.ID] = p
	return &p, nil
}

func (r *memoryRepo) snapshot() []domain.Product {
	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out
}

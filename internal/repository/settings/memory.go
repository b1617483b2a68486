package settings

import (
	"context"
	"sync"

	"alanshor-pos/internal/domain"
)

type memoryRepo struct {
	mu      sync.RWMutex
	profile domain.StoreProfile
	users   []domain.User
}

func NewMemory(profile domain.StoreProfile, users []domain.User) Repository {
	return &memoryRepo{profile: profile, users: users}
}

func (r *memoryRepo) StoreProfile(_ context.Context) (*domain.StoreProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p := r.profile
	return &p, nil
}

func (r *memoryRepo) SaveStoreProfile(_ context.Context, p domain.StoreProfile) (*domain.StoreProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = p
	return &p, nil
}

func (r *memoryRepo) Users(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

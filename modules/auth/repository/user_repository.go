package repository

import (
	"context"
	"strings"
	"sync"

	"vetcare-api/modules/auth/entity"
)

// UserRepository is the read-only in-memory user catalog. It is seeded once
// at startup and never mutated afterwards, but reads still copy so callers
// can't reach the backing records.
type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.User
	order []string
}

// UserRepositoryInterface defines the repository contract.
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	ListByRole(ctx context.Context, role entity.UserRole) ([]entity.User, error)
}

func NewUserRepository(seed []entity.User) *UserRepository {
	r := &UserRepository{
		byID:  make(map[string]*entity.User, len(seed)),
		order: make([]string, 0, len(seed)),
	}
	for i := range seed {
		u := seed[i]
		if _, dup := r.byID[u.ID]; dup {
			continue
		}
		r.byID[u.ID] = &u
		r.order = append(r.order, u.ID)
	}
	return r
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if strings.EqualFold(r.byID[id].Email, email) {
			cp := *r.byID[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out, nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role entity.UserRole) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.User
	for _, id := range r.order {
		if r.byID[id].Role == role {
			out = append(out, *r.byID[id])
		}
	}
	return out, nil
}

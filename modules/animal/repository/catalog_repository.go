package repository

import (
	"context"
	"sync"

	"vetcare-api/modules/animal/entity"

	"github.com/gosimple/slug"
)

// CatalogRepository is the in-memory animal catalog: members (species
// groups) and their animals, seeded at startup. Reads return deep copies.
type CatalogRepository struct {
	mu           sync.RWMutex
	members      []entity.Member
	memberBySlug map[string]int
	animalByID   map[string]entity.Animal
}

// CatalogRepositoryInterface defines the repository contract.
type CatalogRepositoryInterface interface {
	ListMembers(ctx context.Context) ([]entity.Member, error)
	GetMemberBySlug(ctx context.Context, s string) (*entity.Member, error)
	GetAnimalByID(ctx context.Context, id string) (*entity.Animal, error)
	AnimalExists(ctx context.Context, id string) (bool, error)
	ListAnimals(ctx context.Context) ([]entity.Animal, error)
}

func NewCatalogRepository(seed []entity.Member) *CatalogRepository {
	r := &CatalogRepository{
		members:      make([]entity.Member, 0, len(seed)),
		memberBySlug: make(map[string]int),
		animalByID:   make(map[string]entity.Animal),
	}

	for _, m := range seed {
		m.Slug = slug.Make(m.Name)
		for i := range m.Animals {
			a := &m.Animals[i]
			if a.Slug == "" {
				a.Slug = slug.Make(a.UniqueName)
			}
			if a.Slug == "" {
				a.Slug = slug.Make(a.Name)
			}
			r.animalByID[a.ID] = *a
		}
		r.memberBySlug[m.Slug] = len(r.members)
		r.members = append(r.members, m)
	}
	return r
}

func cloneMember(m entity.Member) entity.Member {
	cp := m
	cp.Animals = make([]entity.Animal, len(m.Animals))
	copy(cp.Animals, m.Animals)
	return cp
}

func (r *CatalogRepository) ListMembers(ctx context.Context) ([]entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, cloneMember(m))
	}
	return out, nil
}

func (r *CatalogRepository) GetMemberBySlug(ctx context.Context, s string) (*entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.memberBySlug[s]
	if !ok {
		return nil, nil
	}
	cp := cloneMember(r.members[idx])
	return &cp, nil
}

func (r *CatalogRepository) GetAnimalByID(ctx context.Context, id string) (*entity.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.animalByID[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *CatalogRepository) AnimalExists(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.animalByID[id]
	return ok, nil
}

func (r *CatalogRepository) ListAnimals(ctx context.Context) ([]entity.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Animal
	for _, m := range r.members {
		out = append(out, m.Animals...)
	}
	return out, nil
}

package repository

import (
	"sync"

	"vetcare-api/modules/caselog/entity"
)

type CaseRepositoryInterface interface {
	Insert(c *entity.Case)
	GetByID(id string) *entity.Case
	Replace(c *entity.Case) bool
	List() []*entity.Case
	ListUrgent() []*entity.Case
}

// CaseRepository is an in-memory store, insertion order preserved.
type CaseRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Case
	order []string
}

func NewCaseRepository() *CaseRepository {
	return &CaseRepository{
		byID: make(map[string]*entity.Case),
	}
}

// Seed installs initial cases. Call before serving traffic.
func (r *CaseRepository) Seed(cases []*entity.Case) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range cases {
		if _, ok := r.byID[c.ID]; ok {
			continue
		}
		r.byID[c.ID] = c.Clone()
		r.order = append(r.order, c.ID)
	}
}

func (r *CaseRepository) Insert(c *entity.Case) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[c.ID] = c.Clone()
	r.order = append(r.order, c.ID)
}

func (r *CaseRepository) GetByID(id string) *entity.Case {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil
	}
	return c.Clone()
}

func (r *CaseRepository) Replace(c *entity.Case) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return false
	}
	r.byID[c.ID] = c.Clone()
	return true
}

func (r *CaseRepository) List() []*entity.Case {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Case, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

// ListUrgent returns active high and critical severity cases.
func (r *CaseRepository) ListUrgent() []*entity.Case {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Case
	for _, id := range r.order {
		c := r.byID[id]
		if c.Status != entity.CaseActive {
			continue
		}
		if c.Severity == entity.SeverityHigh || c.Severity == entity.SeverityCritical {
			out = append(out, c.Clone())
		}
	}
	return out
}

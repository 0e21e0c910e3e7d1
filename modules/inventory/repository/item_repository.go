package repository

import (
	"sync"

	"vetcare-api/modules/inventory/entity"
)

type ItemRepositoryInterface interface {
	Insert(item *entity.Item)
	GetByID(id string) *entity.Item
	Replace(item *entity.Item) bool
	List() []*entity.Item
	ListLowStock() []*entity.Item
}

// ItemRepository is an in-memory store, insertion order preserved.
type ItemRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Item
	order []string
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		byID: make(map[string]*entity.Item),
	}
}

// Seed installs initial stock. Call before serving traffic.
func (r *ItemRepository) Seed(items []*entity.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		if _, ok := r.byID[it.ID]; ok {
			continue
		}
		r.byID[it.ID] = it.Clone()
		r.order = append(r.order, it.ID)
	}
}

func (r *ItemRepository) Insert(item *entity.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[item.ID] = item.Clone()
	r.order = append(r.order, item.ID)
}

func (r *ItemRepository) GetByID(id string) *entity.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.byID[id]
	if !ok {
		return nil
	}
	return it.Clone()
}

func (r *ItemRepository) Replace(item *entity.Item) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[item.ID]; !ok {
		return false
	}
	r.byID[item.ID] = item.Clone()
	return true
}

func (r *ItemRepository) List() []*entity.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

func (r *ItemRepository) ListLowStock() []*entity.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Item
	for _, id := range r.order {
		if it := r.byID[id]; it.LowStock() {
			out = append(out, it.Clone())
		}
	}
	return out
}

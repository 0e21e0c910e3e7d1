package repository

import (
	"sync"

	"vetcare-api/modules/healthrecord/entity"
)

type HealthRecordRepositoryInterface interface {
	Insert(record *entity.HealthRecord)
	GetByID(id string) *entity.HealthRecord
	Replace(record *entity.HealthRecord) bool
	ListByAnimal(animalID string) []*entity.HealthRecord
	Exists(id string) bool
}

// HealthRecordRepository is an in-memory store keyed by record id,
// insertion order preserved.
type HealthRecordRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.HealthRecord
	order []string
}

func NewHealthRecordRepository() *HealthRecordRepository {
	return &HealthRecordRepository{
		byID: make(map[string]*entity.HealthRecord),
	}
}

// Seed installs initial records. Call before serving traffic.
func (r *HealthRecordRepository) Seed(records []*entity.HealthRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range records {
		if _, ok := r.byID[rec.ID]; ok {
			continue
		}
		r.byID[rec.ID] = rec.Clone()
		r.order = append(r.order, rec.ID)
	}
}

func (r *HealthRecordRepository) Insert(record *entity.HealthRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[record.ID] = record.Clone()
	r.order = append(r.order, record.ID)
}

func (r *HealthRecordRepository) GetByID(id string) *entity.HealthRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return nil
	}
	return rec.Clone()
}

func (r *HealthRecordRepository) Replace(record *entity.HealthRecord) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[record.ID]; !ok {
		return false
	}
	r.byID[record.ID] = record.Clone()
	return true
}

func (r *HealthRecordRepository) ListByAnimal(animalID string) []*entity.HealthRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.HealthRecord
	for _, id := range r.order {
		if rec := r.byID[id]; rec.AnimalID == animalID {
			out = append(out, rec.Clone())
		}
	}
	return out
}

func (r *HealthRecordRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}

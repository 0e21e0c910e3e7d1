package repository

import (
	"sync"

	"vetcare-api/modules/appointment/entity"
)

type AppointmentRepositoryInterface interface {
	Insert(appointment *entity.Appointment)
	GetByID(id string) *entity.Appointment
	Replace(appointment *entity.Appointment) bool
	Remove(id string) bool
	List() []*entity.Appointment
	ListByDate(date string) []*entity.Appointment
	Exists(id string) bool
	HasDateTime(date, timeSlot, excludeID string) bool
}

// AppointmentRepository is an in-memory store. Reads hand out clones so
// callers can never mutate stored state; writes replace whole records.
type AppointmentRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Appointment
	order []string
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		byID: make(map[string]*entity.Appointment),
	}
}

// Seed installs initial appointments without clone overhead. Call before
// serving traffic.
func (r *AppointmentRepository) Seed(appointments []*entity.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range appointments {
		if _, ok := r.byID[a.ID]; ok {
			continue
		}
		r.byID[a.ID] = a.Clone()
		r.order = append(r.order, a.ID)
	}
}

func (r *AppointmentRepository) Insert(appointment *entity.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[appointment.ID] = appointment.Clone()
	r.order = append(r.order, appointment.ID)
}

func (r *AppointmentRepository) GetByID(id string) *entity.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil
	}
	return a.Clone()
}

// Replace swaps the stored record for one with the same ID. Returns false
// when the ID is unknown.
func (r *AppointmentRepository) Replace(appointment *entity.Appointment) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[appointment.ID]; !ok {
		return false
	}
	r.byID[appointment.ID] = appointment.Clone()
	return true
}

func (r *AppointmentRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all appointments in insertion order.
func (r *AppointmentRepository) List() []*entity.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Appointment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

func (r *AppointmentRepository) ListByDate(date string) []*entity.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Appointment
	for _, id := range r.order {
		if a := r.byID[id]; a.Date == date {
			out = append(out, a.Clone())
		}
	}
	return out
}

func (r *AppointmentRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}

// HasDateTime reports whether any appointment other than excludeID already
// occupies the (date, time) slot. The slot is global: assignee and animals
// do not matter.
func (r *AppointmentRepository) HasDateTime(date, timeSlot, excludeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.byID {
		if a.ID == excludeID {
			continue
		}
		if a.Date == date && a.Time == timeSlot {
			return true
		}
	}
	return false
}

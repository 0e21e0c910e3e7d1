package repository

import (
	"sort"
	"sync"

	"vetcare-api/modules/task/entity"
)

type TaskRepositoryInterface interface {
	Insert(task *entity.Task)
	GetByID(id string) *entity.Task
	Replace(task *entity.Task) bool
	ListByAssignee(userID string) []*entity.Task
}

// TaskRepository is an in-memory store. Listings put urgent tasks first,
// then keep creation order.
type TaskRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Task
	order []string
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		byID: make(map[string]*entity.Task),
	}
}

// Seed installs initial tasks. Call before serving traffic.
func (r *TaskRepository) Seed(tasks []*entity.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range tasks {
		if _, ok := r.byID[t.ID]; ok {
			continue
		}
		r.byID[t.ID] = t.Clone()
		r.order = append(r.order, t.ID)
	}
}

func (r *TaskRepository) Insert(task *entity.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[task.ID] = task.Clone()
	r.order = append(r.order, task.ID)
}

func (r *TaskRepository) GetByID(id string) *entity.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return nil
	}
	return t.Clone()
}

func (r *TaskRepository) Replace(task *entity.Task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[task.ID]; !ok {
		return false
	}
	r.byID[task.ID] = task.Clone()
	return true
}

// ListByAssignee returns the user's tasks, urgent first. The sort is stable
// so creation order survives within each group.
func (r *TaskRepository) ListByAssignee(userID string) []*entity.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Task
	for _, id := range r.order {
		if t := r.byID[id]; t.AssignedTo == userID {
			out = append(out, t.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsUrgent && !out[j].IsUrgent
	})
	return out
}

package repository

import (
	"sync"

	"vetcare-api/modules/notification/entity"
)

type NotificationRepositoryInterface interface {
	Insert(n *entity.Notification)
	GetByID(id string) *entity.Notification
	ListByUser(userID string) []*entity.Notification
	MarkRead(id string) bool
	MarkAllRead(userID string) int
	CountUnread(userID string) int
}

// NotificationRepository is an in-memory store. Newest notifications list
// first.
type NotificationRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Notification
	order []string
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{
		byID: make(map[string]*entity.Notification),
	}
}

func (r *NotificationRepository) Insert(n *entity.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[n.ID] = n.Clone()
	r.order = append(r.order, n.ID)
}

func (r *NotificationRepository) GetByID(id string) *entity.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.byID[id]
	if !ok {
		return nil
	}
	return n.Clone()
}

// ListByUser returns the user's notifications newest first.
func (r *NotificationRepository) ListByUser(userID string) []*entity.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Notification
	for i := len(r.order) - 1; i >= 0; i-- {
		if n := r.byID[r.order[i]]; n.UserID == userID {
			out = append(out, n.Clone())
		}
	}
	return out
}

func (r *NotificationRepository) MarkRead(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.byID[id]
	if !ok {
		return false
	}
	n.Read = true
	return true
}

// MarkAllRead flags every unread notification for the user and returns how
// many were flipped.
func (r *NotificationRepository) MarkAllRead(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, n := range r.byID {
		if n.UserID == userID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count
}

func (r *NotificationRepository) CountUnread(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, n := range r.byID {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

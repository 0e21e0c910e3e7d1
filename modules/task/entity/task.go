package entity

import "time"

// TaskStatus is the two-state daily task lifecycle.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssignedTo  string     `json:"assigned_to"`
	Status      TaskStatus `json:"status"`
	DueDate     string     `json:"due_date"`
	IsUrgent    bool       `json:"is_urgent"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (t *Task) Clone() *Task {
	cp := *t
	return &cp
}

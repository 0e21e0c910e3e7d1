package dto

import (
	"time"

	"vetcare-api/modules/task/entity"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	DueDate     string `json:"due_date"`
	IsUrgent    bool   `json:"is_urgent"`
}

type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AssignedTo  string    `json:"assigned_to"`
	Status      string    `json:"status"`
	DueDate     string    `json:"due_date"`
	IsUrgent    bool      `json:"is_urgent"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToTaskResponse(t *entity.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		IsUrgent:    t.IsUrgent,
		CreatedAt:   t.CreatedAt,
	}
}

func ToTaskResponses(tasks []*entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *ToTaskResponse(t))
	}
	return out
}

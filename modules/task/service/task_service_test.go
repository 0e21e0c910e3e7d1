package service_test

import (
	"context"
	"testing"

	"vetcare-api/core/errors"
	authentity "vetcare-api/modules/auth/entity"
	"vetcare-api/modules/task/dto"
	"vetcare-api/modules/task/entity"
	"vetcare-api/modules/task/repository"
	"vetcare-api/modules/task/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	known map[string]bool
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*authentity.User, error) {
	if !f.known[id] {
		return nil, nil
	}
	return &authentity.User{ID: id, Role: authentity.RoleCaretakerA}, nil
}

func newTaskFixture() (service.TaskServiceInterface, *repository.TaskRepository) {
	repo := repository.NewTaskRepository()
	svc := service.NewTaskService(repo, &fakeUsers{known: map[string]bool{"3": true}})
	return svc, repo
}

func TestTaskCreate(t *testing.T) {
	svc, _ := newTaskFixture()

	resp, appErr := svc.Create(context.Background(), &dto.CreateTaskRequest{
		Title: "Morning feed", AssignedTo: "3", DueDate: "2026-09-01", IsUrgent: true,
	})

	require.Nil(t, appErr)
	assert.Equal(t, string(entity.TaskPending), resp.Status)
	assert.True(t, resp.IsUrgent)
}

func TestTaskCreateValidation(t *testing.T) {
	svc, _ := newTaskFixture()

	tests := []struct {
		name string
		req  dto.CreateTaskRequest
	}{
		{"no title", dto.CreateTaskRequest{AssignedTo: "3", DueDate: "2026-09-01"}},
		{"no due date", dto.CreateTaskRequest{Title: "Feed", AssignedTo: "3"}},
		{"bad due date", dto.CreateTaskRequest{Title: "Feed", AssignedTo: "3", DueDate: "01/09/2026"}},
		{"unknown assignee", dto.CreateTaskRequest{Title: "Feed", AssignedTo: "99", DueDate: "2026-09-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.Create(context.Background(), &tt.req)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
		})
	}
}

func TestTaskListUrgentFirst(t *testing.T) {
	svc, repo := newTaskFixture()
	repo.Seed([]*entity.Task{
		{ID: "t1", Title: "Routine A", AssignedTo: "3", Status: entity.TaskPending, DueDate: "2026-09-01"},
		{ID: "t2", Title: "Urgent", AssignedTo: "3", Status: entity.TaskPending, DueDate: "2026-09-01", IsUrgent: true},
		{ID: "t3", Title: "Routine B", AssignedTo: "3", Status: entity.TaskPending, DueDate: "2026-09-01"},
		{ID: "t4", Title: "Someone else's", AssignedTo: "4", Status: entity.TaskPending, DueDate: "2026-09-01"},
	})

	got, appErr := svc.ListMine(context.Background(), "3")
	require.Nil(t, appErr)
	require.Len(t, got, 3)
	assert.Equal(t, "t2", got[0].ID)
	assert.Equal(t, "t1", got[1].ID)
	assert.Equal(t, "t3", got[2].ID)
}

func TestTaskComplete(t *testing.T) {
	svc, repo := newTaskFixture()
	repo.Seed([]*entity.Task{
		{ID: "t1", Title: "Feed", AssignedTo: "3", Status: entity.TaskPending, DueDate: "2026-09-01"},
	})

	resp, appErr := svc.Complete(context.Background(), "3", "t1")
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.TaskCompleted), resp.Status)

	// Completing twice is an invalid transition.
	_, appErr = svc.Complete(context.Background(), "3", "t1")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidTransition, appErr.Code)

	// Another user's task reads as absent.
	_, appErr = svc.Complete(context.Background(), "4", "t1")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

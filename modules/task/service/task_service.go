package service

import (
	"context"
	"time"

	"vetcare-api/core/constants"
	"vetcare-api/core/errors"
	"vetcare-api/core/logger"
	"vetcare-api/core/utils"
	authentity "vetcare-api/modules/auth/entity"
	"vetcare-api/modules/task/dto"
	"vetcare-api/modules/task/entity"
	"vetcare-api/modules/task/repository"
)

// UserCatalog validates task assignees against the user directory.
type UserCatalog interface {
	GetByID(ctx context.Context, id string) (*authentity.User, error)
}

type TaskServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, *errors.AppError)
	ListMine(ctx context.Context, userID string) ([]dto.TaskResponse, *errors.AppError)
	Complete(ctx context.Context, userID, taskID string) (*dto.TaskResponse, *errors.AppError)
}

type taskService struct {
	repo  repository.TaskRepositoryInterface
	users UserCatalog
}

func NewTaskService(repo repository.TaskRepositoryInterface, users UserCatalog) TaskServiceInterface {
	return &taskService{
		repo:  repo,
		users: users,
	}
}

func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, *errors.AppError) {
	logger.Info("TaskService:Create:Start", "assigned_to", req.AssignedTo, "urgent", req.IsUrgent)

	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title is required", nil)
	}
	if req.DueDate == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Due date is required", nil)
	}
	if _, err := time.Parse(constants.DateLayout, req.DueDate); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid due date, expected YYYY-MM-DD", err)
	}

	assignee, err := s.users.GetByID(ctx, req.AssignedTo)
	if err != nil {
		logger.Error("TaskService:Create:GetAssignee:Error", "error", err, "assigned_to", req.AssignedTo)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up assignee", err)
	}
	if assignee == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown assignee: "+req.AssignedTo, nil)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate task id", err)
	}

	task := &entity.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      entity.TaskPending,
		DueDate:     req.DueDate,
		IsUrgent:    req.IsUrgent,
		CreatedAt:   time.Now().UTC(),
	}
	s.repo.Insert(task)

	logger.Info("TaskService:Create:Success", "task_id", task.ID)
	return dto.ToTaskResponse(task), nil
}

func (s *taskService) ListMine(ctx context.Context, userID string) ([]dto.TaskResponse, *errors.AppError) {
	return dto.ToTaskResponses(s.repo.ListByAssignee(userID)), nil
}

// Complete marks one of the caller's own tasks done.
func (s *taskService) Complete(ctx context.Context, userID, taskID string) (*dto.TaskResponse, *errors.AppError) {
	task := s.repo.GetByID(taskID)
	if task == nil || task.AssignedTo != userID {
		return nil, errors.NewAppError(errors.ErrNotFound, "Task not found", nil)
	}
	if task.Status == entity.TaskCompleted {
		return nil, errors.NewAppError(errors.ErrInvalidTransition, "Task is already completed", nil)
	}

	task.Status = entity.TaskCompleted
	s.repo.Replace(task)

	logger.Info("TaskService:Complete:Success", "task_id", taskID, "user_id", userID)
	return dto.ToTaskResponse(task), nil
}

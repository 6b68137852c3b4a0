package service

import (
	"context"
	"time"

	dtohttp "github.com/vibast-solutions/ms-go-tasks/app/dto/http"
	"github.com/vibast-solutions/ms-go-tasks/app/entity"
)

type taskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, id uint64) (*entity.Task, error)
	FindAll(ctx context.Context) ([]*entity.Task, error)
	FindByUserID(ctx context.Context, userID uint64) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uint64) error
}

type TaskService struct {
	taskRepo taskRepository
}

func NewTaskService(taskRepo taskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) Create(ctx context.Context, userID uint64, req *dtohttp.CreateTaskRequest) (*entity.Task, error) {
	status := req.Status
	if status == "" {
		status = entity.TaskStatusPending
	}

	now := time.Now()
	task := &entity.Task{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Status:      status,
		IsImportant: req.IsImportant,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) All(ctx context.Context) ([]*entity.Task, error) {
	return s.taskRepo.FindAll(ctx)
}

func (s *TaskService) One(ctx context.Context, id uint64) (*entity.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Update applies the non-nil fields of req to the task. Only the owner
// may mutate a task.
func (s *TaskService) Update(ctx context.Context, userID, id uint64, req *dtohttp.UpdateTaskRequest) (*entity.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Date != nil {
		task.Date = *req.Date
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.IsImportant != nil {
		task.IsImportant = *req.IsImportant
	}

	if err = s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Destroy(ctx context.Context, userID, id uint64) error {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	if task.UserID != userID {
		return ErrNotOwner
	}

	return s.taskRepo.Delete(ctx, id)
}

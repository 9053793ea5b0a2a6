package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/task-api/internal/core/domain"
	"github.com/taskhub/task-api/internal/core/ports"
)

// TaskService implements the ownership-scoped task operations.
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

// List returns every task owned by ownerID.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create stores a new task owned by ownerID. The owner always comes from
// the authenticated caller; a user_id in the request body has no effect.
func (s *TaskService) Create(ctx context.Context, ownerID int64, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, domain.NewValidationError("title", "title is required")
	}

	status := domain.TaskStatus(input.Status)
	if input.Status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "status must be one of: pending in_progress done")
	}

	now := time.Now().UTC()
	task := &domain.Task{
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", ownerID).Msg("failed to create task")
		return nil, err
	}

	s.log.Info().Int64("task_id", created.ID).Int64("user_id", ownerID).Msg("task created")
	return created, nil
}

// FindOwned fetches the task only when it belongs to ownerID. Absent and
// not-owned collapse into the same ErrTaskNotFound.
func (s *TaskService) FindOwned(ctx context.Context, id, ownerID int64) (*domain.Task, error) {
	return s.repo.FindOwned(ctx, id, ownerID)
}

// Update applies only the fields present in input to the task resolved
// via FindOwned. The owner id is not part of the input and never changes.
func (s *TaskService) Update(ctx context.Context, task *domain.Task, input ports.UpdateTaskInput) (*domain.Task, error) {
	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.NewValidationError("title", "title is required")
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Status != nil {
		status := domain.TaskStatus(*input.Status)
		if !status.Valid() {
			return nil, domain.NewValidationError("status", "status must be one of: pending in_progress done")
		}
		task.Status = status
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		s.log.Error().Err(err).Int64("task_id", task.ID).Msg("failed to update task")
		return nil, err
	}
	return task, nil
}

// Delete hard-deletes the task resolved via FindOwned. A row that is
// already gone is a storage no-op, not an error.
func (s *TaskService) Delete(ctx context.Context, task *domain.Task) error {
	deleted, err := s.repo.Delete(ctx, task.ID)
	if err != nil {
		s.log.Error().Err(err).Int64("task_id", task.ID).Msg("failed to delete task")
		return err
	}
	if !deleted {
		s.log.Debug().Int64("task_id", task.ID).Msg("delete matched no rows")
	}
	return nil
}

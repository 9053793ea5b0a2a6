package ports

import (
	"context"

	"github.com/taskhub/task-api/internal/core/domain"
)

// CreateTaskInput carries the client-supplied fields for a new task.
// The owner is never part of the input; it is always taken from the
// authenticated caller.
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      string
}

// UpdateTaskInput carries a partial update. Nil fields are left
// unchanged on the task.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskService defines the ownership-scoped task operations. Every call
// takes the resolved caller identity explicitly; there is no ambient
// authentication state.
type TaskService interface {
	List(ctx context.Context, ownerID int64) ([]*domain.Task, error)
	Create(ctx context.Context, ownerID int64, input CreateTaskInput) (*domain.Task, error)
	FindOwned(ctx context.Context, id, ownerID int64) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, task *domain.Task) error
}

package ports

import (
	"context"

	"github.com/taskhub/task-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	// ListByOwner returns every task whose user_id equals ownerID,
	// ordered by id ascending (insertion order).
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// FindOwned retrieves a task by id AND owner id in a single query
	// predicate, so a task owned by someone else resolves exactly like a
	// nonexistent one (domain.ErrTaskNotFound in both cases).
	FindOwned(ctx context.Context, id, ownerID int64) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	// Delete removes the task row. Returns false when no row matched.
	Delete(ctx context.Context, id int64) (bool, error)
}

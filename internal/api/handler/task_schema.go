package handler

import "github.com/taskhub/task-api/internal/core/domain"

// createTaskRequest deliberately has no user_id field: the owner is
// always the authenticated caller, so a spoofed owner in the body is
// dropped at bind time.
type createTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status"      validate:"omitempty,oneof=pending in_progress done"`
}

// updateTaskRequest carries a partial update: nil fields are left
// untouched. user_id is likewise absent and cannot be changed.
type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in_progress done"`
}

type taskData struct {
	Task *domain.Task `json:"task"`
}

type taskListData struct {
	Tasks []*domain.Task `json:"tasks"`
}

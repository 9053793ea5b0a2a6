package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

var ErrTaskNotFound = errors.New("task not found")

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is an owned resource: exactly one user can see or mutate it.
// UserID is set once at creation from the authenticated caller and is
// never writable afterwards.
type Task struct {
	ID          int64      `json:"id" bson:"_id"`
	UserID      int64      `json:"user_id" bson:"user_id"`
	Title       string     `json:"title" bson:"title"`
	Description *string    `json:"description" bson:"description,omitempty"`
	Status      TaskStatus `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}

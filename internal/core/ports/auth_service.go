package ports

import (
	"context"
	"time"

	"github.com/taskhub/task-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService defines the identity operations: credential verification,
// token issuance, token-subject resolution, and session invalidation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID int64) (*domain.User, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

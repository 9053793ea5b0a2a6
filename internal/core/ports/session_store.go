package ports

import (
	"context"
	"time"
)

// SessionStore tracks revoked bearer tokens. Tokens are keyed by their
// jti claim; entries expire on their own once the token would have.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

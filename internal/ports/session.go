package ports

import (
	"context"

	"github.com/fixhire/fixhire-api/internal/domain/model"
)

// SessionStore persists bearer sessions. Get returns a not-found error for
// unknown or expired tokens.
type SessionStore interface {
	Save(ctx context.Context, sess model.Session) error
	Get(ctx context.Context, token string) (model.Session, error)
	Delete(ctx context.Context, token string) error
}

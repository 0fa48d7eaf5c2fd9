package repository

import (
	"context"
	"time"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
)

// SessionRepository stores authenticated console sessions by token.
type SessionRepository interface {
	// Save stores the session, replacing any session with the same token.
	Save(ctx context.Context, session *entity.Session) error

	// GetByToken returns the session for token.
	//
	// Returns:
	//   - error: ErrSessionNotFound if the token is unknown
	GetByToken(ctx context.Context, token string) (*entity.Session, error)

	// Delete removes the session. Unknown tokens are not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes every session expired at now.
	//
	// Returns:
	//   - []string: tokens of the removed sessions
	DeleteExpired(ctx context.Context, now time.Time) ([]string, error)

	// Count returns the number of stored sessions.
	Count(ctx context.Context) (int64, error)
}

package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores browser sessions.
type SessionRepository interface {
	Find(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes sessions that expired before now and returns how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

package domain

import (
	"context"
	"time"
)

// Session represents an active user session. The token is the only
// reference the client ever holds.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionRepository defines the port for session persistence operations.
// Implementations exist for process memory, PostgreSQL and Redis; all of
// them must treat an expired binding as absent.
type SessionRepository interface {
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

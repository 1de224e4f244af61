package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tosinajy/carrier-code-verify/internal/shared/biztime"
)

// Session is a server-side login record; the session cookie carries its ID inside a signed token.
type Session struct {
	ID        string
	UserID    uint
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewSession(userID uint, ipAddress, userAgent string, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		CreatedAt: biztime.NowUTC(),
	}, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

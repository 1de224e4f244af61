package usecases

import (
	"context"
	"time"

	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/auth"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/ratelimit"
	"github.com/tosinajy/carrier-code-verify/internal/shared/authorization"
)

type TokenService interface {
	Generate(userID uint, sessionID string, role authorization.UserRole) (string, time.Time, error)
	Verify(tokenString string) (*auth.Claims, error)
}

// LoginLimiter throttles failed logins per client.
type LoginLimiter interface {
	Allow(ctx context.Context, key string, rule ratelimit.Rule) (bool, error)
	Reset(ctx context.Context, key string) error
}

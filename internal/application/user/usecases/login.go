package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/ratelimit"
	"github.com/tosinajy/carrier-code-verify/internal/shared/biztime"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

const msgInvalidCredentials = "Invalid credentials"

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User      *user.AdminUser
	SessionID string
	Token     string
	ExpiresAt time.Time
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	userRepo     user.Repository
	sessionRepo  user.SessionRepository
	hasher       user.PasswordHasher
	tokens       TokenService
	limiter      LoginLimiter
	limitRule    ratelimit.Rule
	sessionHours int
	logger       logger.Interface
}

// NewLoginUseCase accepts a nil limiter; logins are then never throttled.
func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	tokens TokenService,
	limiter LoginLimiter,
	limitRule ratelimit.Rule,
	sessionHours int,
	logger logger.Interface,
) *LoginUseCase {
	if sessionHours <= 0 {
		sessionHours = 12
	}
	return &LoginUseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		tokens:       tokens,
		limiter:      limiter,
		limitRule:    limitRule,
		sessionHours: sessionHours,
		logger:       logger,
	}
}

// Execute checks the credentials and opens a session. Unknown usernames and
// wrong passwords fail the same way.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "username", cmd.Username, "ip", cmd.IPAddress)

	limitKey := "login:" + cmd.IPAddress
	if uc.limiter != nil {
		allowed, err := uc.limiter.Allow(ctx, limitKey, uc.limitRule)
		if err != nil {
			uc.logger.Warnw("login rate limiter unavailable", "error", err)
		} else if !allowed {
			return nil, sharedErrors.NewRateLimitedError("Too many login attempts. Try again later.")
		}
	}

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, sharedErrors.NewUnauthorizedError(msgInvalidCredentials)
		}
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, sharedErrors.NewInternalError("failed to log in", err.Error())
	}

	if err := u.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("failed login", "username", cmd.Username, "ip", cmd.IPAddress)
		return nil, sharedErrors.NewUnauthorizedError(msgInvalidCredentials)
	}

	expiresAt := biztime.NowUTC().Add(time.Duration(uc.sessionHours) * time.Hour)
	session, err := user.NewSession(u.ID(), cmd.IPAddress, cmd.UserAgent, expiresAt)
	if err != nil {
		return nil, sharedErrors.NewInternalError("failed to log in", err.Error())
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to create session", "user_id", u.ID(), "error", err)
		return nil, sharedErrors.NewInternalError("failed to log in", err.Error())
	}

	token, tokenExpiry, err := uc.tokens.Generate(u.ID(), session.ID, u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, sharedErrors.NewInternalError("failed to log in", err.Error())
	}
	if tokenExpiry.After(expiresAt) {
		tokenExpiry = expiresAt
	}

	if uc.limiter != nil {
		if err := uc.limiter.Reset(ctx, limitKey); err != nil {
			uc.logger.Warnw("failed to reset login rate limit", "error", err)
		}
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID(), "session_id", session.ID)
	return &LoginResult{
		User:      u,
		SessionID: session.ID,
		Token:     token,
		ExpiresAt: tokenExpiry,
	}, nil
}

package usecases

import (
	"context"
	"errors"

	"github.com/tosinajy/carrier-code-verify/internal/application/user/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// ValidateSessionUseCase resolves a session cookie to the signed-in user. The
// token alone is not enough: the session row must still exist and be unexpired.
type ValidateSessionUseCase struct {
	tokens      TokenService
	sessionRepo user.SessionRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewValidateSessionUseCase(
	tokens TokenService,
	sessionRepo user.SessionRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ValidateSessionUseCase {
	return &ValidateSessionUseCase{
		tokens:      tokens,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *ValidateSessionUseCase) Execute(ctx context.Context, token string) (*dto.CurrentUser, error) {
	if token == "" {
		return nil, sharedErrors.NewUnauthorizedError("Login required")
	}

	claims, err := uc.tokens.Verify(token)
	if err != nil {
		uc.logger.Debugw("rejected session token", "error", err)
		return nil, sharedErrors.NewUnauthorizedError("Login required")
	}

	session, err := uc.sessionRepo.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, user.ErrSessionNotFound) {
			return nil, sharedErrors.NewUnauthorizedError("Login required")
		}
		return nil, sharedErrors.NewInternalError("failed to validate session", err.Error())
	}
	if session.IsExpired() || session.UserID != claims.UserID {
		return nil, sharedErrors.NewUnauthorizedError("Login required")
	}

	u, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, sharedErrors.NewUnauthorizedError("Login required")
		}
		return nil, sharedErrors.NewInternalError("failed to validate session", err.Error())
	}

	return &dto.CurrentUser{
		UserID:    u.ID(),
		Username:  u.Username(),
		Role:      u.Role().String(),
		SessionID: session.ID,
	}, nil
}

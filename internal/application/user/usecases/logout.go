package usecases

import (
	"context"
	"fmt"

	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := uc.sessionRepo.Delete(ctx, sessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "error", err, "session_id", sessionID)
		return fmt.Errorf("failed to logout: %w", err)
	}

	uc.logger.Infow("user logged out successfully", "session_id", sessionID)
	return nil
}

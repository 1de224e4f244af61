package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// CleanupSessionsUseCase purges expired login sessions.
type CleanupSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewCleanupSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *CleanupSessionsUseCase {
	return &CleanupSessionsUseCase{sessionRepo: sessionRepo, logger: logger}
}

func (uc *CleanupSessionsUseCase) Execute(ctx context.Context) (int64, error) {
	n, err := uc.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		uc.logger.Errorw("failed to delete expired sessions", "error", err)
		return 0, err
	}
	if n > 0 {
		uc.logger.Infow("expired sessions removed", "count", n)
	}
	return n, nil
}

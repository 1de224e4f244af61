package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/application/admin/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	"github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: log}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users", err.Error())
	}
	return dto.ToUserDTOList(users), nil
}

package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	vo "github.com/tosinajy/carrier-code-verify/internal/domain/user/valueobjects"
	"github.com/tosinajy/carrier-code-verify/internal/shared/authorization"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type CreateUserCommand struct {
	Username string
	Password string
	Role     string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute creates an account. An empty role means admin.
func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*user.AdminUser, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username, "role", cmd.Role)

	role := authorization.RoleAdmin
	if r := strings.TrimSpace(cmd.Role); r != "" {
		role = authorization.UserRole(r)
		if !role.IsValid() {
			return nil, sharedErrors.NewValidationError("invalid role", r)
		}
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, sharedErrors.NewValidationError("invalid password", err.Error())
	}

	u, err := user.NewAdminUser(cmd.Username, password, role, uc.hasher)
	if err != nil {
		if errors.Is(err, user.ErrUsernameRequired) {
			return nil, sharedErrors.NewValidationError(err.Error())
		}
		return nil, sharedErrors.NewInternalError("failed to create user", err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return nil, sharedErrors.NewConflictError("username already exists", u.Username())
		}
		uc.logger.Errorw("failed to create user", "username", u.Username(), "error", err)
		return nil, sharedErrors.NewInternalError("failed to create user", err.Error())
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "username", u.Username(), "role", role)
	return u, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/mappers"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// UserRepository implements user.Repository
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.AdminUser) error {
	model := r.mapper.ToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return user.ErrUsernameTaken
		}
		r.logger.Errorw("failed to create user", "username", u.Username(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.SetID(model.UserID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.AdminUser, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.AdminUser, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.AdminUser, error) {
	var modelList []*models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Order("username ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return r.mapper.ToDomainList(modelList), nil
}

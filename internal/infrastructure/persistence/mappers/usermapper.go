package mappers

import (
	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
	"github.com/tosinajy/carrier-code-verify/internal/shared/authorization"
)

type UserMapper interface {
	ToDomain(model *models.UserModel) *user.AdminUser
	ToModel(u *user.AdminUser) *models.UserModel
	ToDomainList(modelList []*models.UserModel) []*user.AdminUser
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) *user.AdminUser {
	if model == nil {
		return nil
	}
	return user.ReconstructAdminUser(
		model.UserID,
		model.Username,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		model.CreatedAt,
	)
}

func (m *UserMapperImpl) ToModel(u *user.AdminUser) *models.UserModel {
	if u == nil {
		return nil
	}
	return &models.UserModel{
		UserID:       u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt(),
	}
}

func (m *UserMapperImpl) ToDomainList(modelList []*models.UserModel) []*user.AdminUser {
	return toDomainList(modelList, m.ToDomain)
}

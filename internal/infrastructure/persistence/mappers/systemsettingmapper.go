package mappers

import (
	"github.com/tosinajy/carrier-code-verify/internal/domain/setting"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
)

// SystemSettingMapper provides methods for converting between domain and model
type SystemSettingMapper interface {
	ToDomain(model *models.SystemSettingModel) *setting.SystemSetting
	ToModel(domain *setting.SystemSetting) *models.SystemSettingModel
	ToDomainList(modelList []*models.SystemSettingModel) []*setting.SystemSetting
}

type SystemSettingMapperImpl struct{}

func NewSystemSettingMapper() SystemSettingMapper {
	return &SystemSettingMapperImpl{}
}

func (m *SystemSettingMapperImpl) ToDomain(model *models.SystemSettingModel) *setting.SystemSetting {
	if model == nil {
		return nil
	}

	return setting.ReconstructSystemSetting(
		model.ID,
		model.Category,
		model.SettingKey,
		model.Value,
		setting.ValueType(model.ValueType),
		model.Description,
		model.UpdatedBy,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SystemSettingMapperImpl) ToModel(domain *setting.SystemSetting) *models.SystemSettingModel {
	if domain == nil {
		return nil
	}

	return &models.SystemSettingModel{
		ID:          domain.ID(),
		Category:    domain.Category(),
		SettingKey:  domain.Key(),
		Value:       domain.Value(),
		ValueType:   string(domain.ValueType()),
		Description: domain.Description(),
		UpdatedBy:   domain.UpdatedBy(),
		Version:     domain.Version(),
		CreatedAt:   domain.CreatedAt(),
		UpdatedAt:   domain.UpdatedAt(),
	}
}

func (m *SystemSettingMapperImpl) ToDomainList(modelList []*models.SystemSettingModel) []*setting.SystemSetting {
	return toDomainList(modelList, m.ToDomain)
}

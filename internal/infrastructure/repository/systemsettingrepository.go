package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tosinajy/carrier-code-verify/internal/domain/setting"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/mappers"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// SystemSettingRepository implements setting.Repository
type SystemSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SystemSettingMapper
}

func NewSystemSettingRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SystemSettingRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSystemSettingMapper(),
	}
}

func (r *SystemSettingRepository) GetByKey(ctx context.Context, category, key string) (*setting.SystemSetting, error) {
	var model models.SystemSettingModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("category = ? AND setting_key = ?", category, key).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		r.logger.Errorw("failed to get setting by key", "category", category, "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *SystemSettingRepository) GetByCategory(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	var modelList []*models.SystemSettingModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("category = ?", category).
		Order("setting_key ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get settings by category", "category", category, "error", err)
		return nil, fmt.Errorf("failed to get settings by category: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Upsert inserts the setting or overwrites the row with the same (category, key).
func (r *SystemSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	model := r.mapper.ToModel(s)

	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "value_type", "description", "updated_by", "version", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "category", s.Category(), "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	if s.ID() == 0 {
		s.SetID(model.ID)
	}
	return nil
}

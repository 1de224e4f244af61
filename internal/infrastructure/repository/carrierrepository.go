package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tosinajy/carrier-code-verify/internal/domain/carrier"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
	"github.com/tosinajy/carrier-code-verify/internal/shared/biztime"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// CarrierRepository implements carrier.Repository
type CarrierRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCarrierRepository(db *gorm.DB, logger logger.Interface) carrier.Repository {
	return &CarrierRepository{db: db, logger: logger}
}

func carrierToDomain(m *models.CarrierModel) *carrier.Carrier {
	return &carrier.Carrier{
		ID:        m.CarrierID,
		PayerID:   m.PayerID,
		NaicID:    m.NaicID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *CarrierRepository) GetByID(ctx context.Context, id uint) (*carrier.Carrier, error) {
	return r.first(ctx, "carrier_id = ?", id)
}

func (r *CarrierRepository) GetByPayerID(ctx context.Context, payerID uint) (*carrier.Carrier, error) {
	return r.first(ctx, "payer_id = ?", payerID)
}

func (r *CarrierRepository) first(ctx context.Context, cond string, arg uint) (*carrier.Carrier, error) {
	var model models.CarrierModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, carrier.ErrCarrierNotFound
		}
		return nil, fmt.Errorf("failed to get carrier: %w", err)
	}
	return carrierToDomain(&model), nil
}

func (r *CarrierRepository) UpsertForPayer(ctx context.Context, payerID, naicID uint) (*carrier.Carrier, *uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.CarrierModel
	err := tx.Where("payer_id = ?", payerID).First(&model).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		now := biztime.NowUTC()
		model = models.CarrierModel{PayerID: payerID, NaicID: naicID, CreatedAt: now, UpdatedAt: now}
		if err := tx.Create(&model).Error; err != nil {
			r.logger.Errorw("failed to create carrier", "payer_id", payerID, "error", err)
			return nil, nil, fmt.Errorf("failed to create carrier: %w", err)
		}
		return carrierToDomain(&model), nil, nil
	case err != nil:
		return nil, nil, fmt.Errorf("failed to get carrier by payer: %w", err)
	}

	previous := model.NaicID
	if previous != naicID {
		model.NaicID = naicID
		model.UpdatedAt = biztime.NowUTC()
		if err := tx.Model(&models.CarrierModel{}).
			Where("carrier_id = ?", model.CarrierID).
			Updates(map[string]interface{}{"naic_id": naicID, "updated_at": model.UpdatedAt}).Error; err != nil {
			r.logger.Errorw("failed to update carrier", "carrier_id", model.CarrierID, "error", err)
			return nil, nil, fmt.Errorf("failed to update carrier: %w", err)
		}
	}
	return carrierToDomain(&model), &previous, nil
}

// Count counts the carriers the directory shows, those whose payer is approved.
func (r *CarrierRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).
		Table("carriers AS c").
		Joins("JOIN payers AS p ON p.payer_id = c.payer_id").
		Where("p.mapping_status = ?", payer.StatusApproved.String()).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count carriers: %w", err)
	}
	return total, nil
}

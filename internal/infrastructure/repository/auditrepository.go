package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/mappers"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// AuditRepository implements audit.Repository. Rows are only ever inserted.
type AuditRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAuditRepository(db *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditRepository{db: db, logger: logger}
}

func (r *AuditRepository) Append(ctx context.Context, entries ...*audit.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	modelList := make([]*models.AuditLogModel, 0, len(entries))
	for _, e := range entries {
		m, err := mappers.AuditEntryToModel(e)
		if err != nil {
			return err
		}
		modelList = append(modelList, m)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(&modelList).Error; err != nil {
		r.logger.Errorw("failed to append audit entries", "count", len(entries), "error", err)
		return fmt.Errorf("failed to append audit entries: %w", err)
	}

	for i, m := range modelList {
		entries[i].ID = m.AuditID
	}
	return nil
}

func (r *AuditRepository) ListByCarrier(ctx context.Context, carrierID uint, limit int) ([]*audit.Entry, error) {
	var modelList []*models.AuditLogModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("carrier_id = ?", carrierID).
		Order("changed_at DESC, audit_id DESC").
		Limit(limit).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*audit.Entry, 0, len(modelList))
	for _, m := range modelList {
		entries = append(entries, mappers.AuditEntryToDomain(m))
	}
	return entries, nil
}

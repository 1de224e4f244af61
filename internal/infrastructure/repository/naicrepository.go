package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/mappers"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

// NaicRepository implements naic.Repository
type NaicRepository struct {
	db     *gorm.DB
	mapper mappers.NaicMapper
	logger logger.Interface
}

func NewNaicRepository(db *gorm.DB, logger logger.Interface) naic.Repository {
	return &NaicRepository{
		db:     db,
		mapper: mappers.NewNaicMapper(),
		logger: logger,
	}
}

func (r *NaicRepository) GetByID(ctx context.Context, id uint) (*naic.Record, error) {
	var model models.NaicModel
	if err := db.GetTxFromContext(ctx, r.db).Where("naic_id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, naic.ErrNaicNotFound
		}
		return nil, fmt.Errorf("failed to get naic by id: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *NaicRepository) GetByCocode(ctx context.Context, cocode string) (*naic.Record, error) {
	var model models.NaicModel
	if err := db.GetTxFromContext(ctx, r.db).Where("cocode = ?", cocode).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, naic.ErrNaicNotFound
		}
		return nil, fmt.Errorf("failed to get naic by cocode: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *NaicRepository) Create(ctx context.Context, record *naic.Record) error {
	model := r.mapper.ToModel(record)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create naic record", "cocode", record.Cocode(), "error", err)
		return fmt.Errorf("failed to create naic record: %w", err)
	}
	record.SetID(model.NaicID)
	return nil
}

func (r *NaicRepository) UpdateName(ctx context.Context, record *naic.Record) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NaicModel{}).
		Where("naic_id = ?", record.ID()).
		Update("company_name", record.CompanyName()).Error
	if err != nil {
		r.logger.Errorw("failed to update naic name", "naic_id", record.ID(), "error", err)
		return fmt.Errorf("failed to update naic name: %w", err)
	}
	return nil
}

func (r *NaicRepository) List(ctx context.Context, filter naic.ListFilter) ([]*naic.Record, int64, error) {
	base := func() *gorm.DB {
		tx := db.GetTxFromContext(ctx, r.db).Model(&models.NaicModel{})
		if filter.HasTerm() {
			tx = tx.Scopes(db.LikeAny(filter.LikePattern(), "company_name", "cocode"))
		}
		return tx
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count naic records: %w", err)
	}

	var modelList []*models.NaicModel
	if err := base().
		Order("company_name ASC").
		Scopes(db.Paginate(filter.PageFilter)).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list naic records: %w", err)
	}

	return r.mapper.ToDomainList(modelList), total, nil
}

func (r *NaicRepository) Lookup(ctx context.Context, term string, limit int) ([]*naic.Record, error) {
	var modelList []*models.NaicModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.LikeAny(query.Contains(term), "company_name", "cocode")).
		Order("company_name ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up naic records: %w", err)
	}
	return r.mapper.ToDomainList(modelList), nil
}

func (r *NaicRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.NaicModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count naic records: %w", err)
	}
	return total, nil
}

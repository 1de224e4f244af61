package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/mappers"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

const payerViewColumns = "p.payer_id, p.payer_code, p.payer_name, p.clearing_house, p.naic_id, p.mapping_status, " +
	"COALESCE(n.cocode, '') AS cocode, COALESCE(n.company_name, '') AS company_name"

// PayerRepository implements payer.Repository
type PayerRepository struct {
	db     *gorm.DB
	mapper mappers.PayerMapper
	logger logger.Interface
}

func NewPayerRepository(db *gorm.DB, logger logger.Interface) payer.Repository {
	return &PayerRepository{
		db:     db,
		mapper: mappers.NewPayerMapper(),
		logger: logger,
	}
}

type payerViewRow struct {
	PayerID       uint
	PayerCode     string
	PayerName     string
	ClearingHouse string
	NaicID        *uint
	MappingStatus string
	Cocode        string
	CompanyName   string
}

func (row payerViewRow) toView() *payer.View {
	return &payer.View{
		PayerID:       row.PayerID,
		PayerCode:     row.PayerCode,
		PayerName:     row.PayerName,
		ClearingHouse: row.ClearingHouse,
		NaicID:        row.NaicID,
		Cocode:        row.Cocode,
		CompanyName:   row.CompanyName,
		Status:        payer.MappingStatus(row.MappingStatus),
	}
}

func toViews(rows []payerViewRow) []*payer.View {
	views := make([]*payer.View, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}
	return views
}

func (r *PayerRepository) GetByID(ctx context.Context, id uint) (*payer.Payer, error) {
	var model models.PayerModel
	if err := db.GetTxFromContext(ctx, r.db).Where("payer_id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payer.ErrPayerNotFound
		}
		return nil, fmt.Errorf("failed to get payer by id: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *PayerRepository) GetByNaturalKey(ctx context.Context, code, clearingHouse string) (*payer.Payer, error) {
	var model models.PayerModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("payer_code = ? AND clearing_house = ?", code, clearingHouse).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payer.ErrPayerNotFound
		}
		return nil, fmt.Errorf("failed to get payer by natural key: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *PayerRepository) GetByIDs(ctx context.Context, ids []uint) ([]*payer.Payer, error) {
	if len(ids) == 0 {
		return []*payer.Payer{}, nil
	}
	var modelList []*models.PayerModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("payer_id IN ?", ids).
		Order("payer_id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get payers by ids: %w", err)
	}
	return r.mapper.ToDomainList(modelList), nil
}

func (r *PayerRepository) Create(ctx context.Context, p *payer.Payer) error {
	model := r.mapper.ToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create payer", "payer_code", p.Code(), "clearing_house", p.ClearingHouse(), "error", err)
		return fmt.Errorf("failed to create payer: %w", err)
	}
	p.SetID(model.PayerID)
	return nil
}

func (r *PayerRepository) UpdateName(ctx context.Context, p *payer.Payer) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PayerModel{}).
		Where("payer_id = ?", p.ID()).
		Update("payer_name", p.Name()).Error
	if err != nil {
		r.logger.Errorw("failed to update payer name", "payer_id", p.ID(), "error", err)
		return fmt.Errorf("failed to update payer name: %w", err)
	}
	return nil
}

func (r *PayerRepository) UpdateMapping(ctx context.Context, p *payer.Payer) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PayerModel{}).
		Where("payer_id = ?", p.ID()).
		Updates(map[string]interface{}{
			"naic_id":        p.NaicID(),
			"mapping_status": p.Status().String(),
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update payer mapping", "payer_id", p.ID(), "error", err)
		return fmt.Errorf("failed to update payer mapping: %w", err)
	}
	return nil
}

// SetStatusBulk issues a single UPDATE ... WHERE payer_id IN (...) with one
// placeholder per id.
func (r *PayerRepository) SetStatusBulk(ctx context.Context, ids []uint, status payer.MappingStatus, requireNaic bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.PayerModel{}).
		Where("payer_id IN ?", ids)
	if requireNaic {
		tx = tx.Where("naic_id IS NOT NULL")
	}

	result := tx.Update("mapping_status", status.String())
	if result.Error != nil {
		r.logger.Errorw("failed to update payer statuses", "count", len(ids), "status", status, "error", result.Error)
		return 0, fmt.Errorf("failed to update payer statuses: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *PayerRepository) viewQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("payers AS p").
		Joins("LEFT JOIN naic AS n ON n.naic_id = p.naic_id")
}

func (r *PayerRepository) List(ctx context.Context, filter payer.ListFilter) ([]*payer.View, int64, error) {
	base := func() *gorm.DB {
		tx := r.viewQuery(ctx)
		switch filter.Status {
		case payer.FilterUnassigned:
			tx = tx.Where("p.naic_id IS NULL")
		case payer.FilterAssigned:
			tx = tx.Where("p.naic_id IS NOT NULL")
		case payer.FilterPending, payer.FilterApproved, payer.FilterRejected:
			tx = tx.Where("p.mapping_status = ?", string(filter.Status))
		}
		if filter.HasTerm() {
			tx = tx.Scopes(db.LikeAny(filter.LikePattern(), "p.payer_name", "p.payer_code", "p.clearing_house"))
		}
		return tx
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payers: %w", err)
	}

	var rows []payerViewRow
	if err := base().
		Select(payerViewColumns).
		Order("p.payer_name ASC, p.payer_id ASC").
		Scopes(db.Paginate(filter.PageFilter)).
		Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payers: %w", err)
	}

	return toViews(rows), total, nil
}

func (r *PayerRepository) ListByStatus(ctx context.Context, status payer.MappingStatus) ([]*payer.View, error) {
	var rows []payerViewRow
	if err := r.viewQuery(ctx).
		Select(payerViewColumns).
		Where("p.mapping_status = ?", status.String()).
		Order("p.payer_name ASC, p.payer_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list payers by status: %w", err)
	}
	return toViews(rows), nil
}

func (r *PayerRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

func (r *PayerRepository) CountByStatus(ctx context.Context, status payer.MappingStatus) (int64, error) {
	return r.count(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("mapping_status = ?", status.String())
	})
}

func (r *PayerRepository) CountUnassigned(ctx context.Context) (int64, error) {
	return r.count(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("naic_id IS NULL AND mapping_status != ?", payer.StatusApproved.String())
	})
}

func (r *PayerRepository) count(ctx context.Context, scope func(*gorm.DB) *gorm.DB) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.PayerModel{})
	if scope != nil {
		tx = tx.Scopes(scope)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count payers: %w", err)
	}
	return total, nil
}

package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/tosinajy/carrier-code-verify/internal/domain/carrier"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

const (
	// clearingHouseSeparator joins the aggregate in SQL; no tag carries a control character.
	clearingHouseSeparator = "\x1f"
	clearingHouseListSep   = ", "
)

// DirectoryQueryRepository implements directory.QueryRepository over carriers ⨝ payers ⨝ naic.
// Only carriers whose payer is currently approved are visible.
type DirectoryQueryRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewDirectoryQueryRepository(db *gorm.DB, logger logger.Interface) directory.QueryRepository {
	return &DirectoryQueryRepository{db: db, logger: logger}
}

func (r *DirectoryQueryRepository) carriers(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("carriers AS c").
		Joins("JOIN payers AS p ON p.payer_id = c.payer_id").
		Joins("JOIN naic AS n ON n.naic_id = c.naic_id").
		Where("p.mapping_status = ?", payer.StatusApproved.String())
}

type directoryRow struct {
	CarrierID      uint
	PayerCode      string
	PayerName      string
	Cocode         string
	ClearingHouses string
}

func (r *DirectoryQueryRepository) ListCarriers(ctx context.Context, filter directory.ListFilter) ([]*directory.Entry, int64, error) {
	grouped := func() *gorm.DB {
		tx := r.carriers(ctx)
		if filter.HasTerm() {
			tx = tx.Scopes(db.LikeAny(filter.LikePattern(), "p.payer_name", "p.payer_code", "n.cocode"))
		}
		return tx.
			Select("c.carrier_id, p.payer_code, p.payer_name, n.cocode, " +
				db.GroupConcatDistinct(r.db, "p.clearing_house", clearingHouseSeparator) + " AS clearing_houses").
			Group("c.carrier_id, p.payer_code, p.payer_name, n.cocode")
	}

	var total int64
	if err := db.GetTxFromContext(ctx, r.db).
		Table("(?) AS sub", grouped()).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count directory entries: %w", err)
	}

	var rows []directoryRow
	if err := grouped().
		Order("p.payer_name ASC, c.carrier_id ASC").
		Scopes(db.Paginate(filter.PageFilter)).
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list directory", "error", err)
		return nil, 0, fmt.Errorf("failed to list directory entries: %w", err)
	}

	entries := make([]*directory.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &directory.Entry{
			CarrierID:      row.CarrierID,
			PayerName:      row.PayerName,
			PayerCode:      row.PayerCode,
			Cocode:         row.Cocode,
			ClearingHouses: joinClearingHouses(row.ClearingHouses),
		})
	}
	return entries, total, nil
}

// joinClearingHouses turns the aggregate into a sorted ", " list. Tags are
// kept whole even when they contain a comma.
func joinClearingHouses(raw string) string {
	if raw == "" {
		return ""
	}
	parts := strings.Split(raw, clearingHouseSeparator)
	sort.Strings(parts)
	return strings.Join(parts, clearingHouseListSep)
}

func (r *DirectoryQueryRepository) Search(ctx context.Context, term string, limit int) ([]*directory.SearchHit, error) {
	var rows []*directory.SearchHit
	if err := r.carriers(ctx).
		Select("c.carrier_id, p.payer_name, p.payer_code, n.cocode, n.company_name").
		Scopes(db.LikeAny(query.Contains(term), "p.payer_code", "p.payer_name", "n.cocode")).
		Order("p.payer_name ASC, c.carrier_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search carriers: %w", err)
	}
	return rows, nil
}

func (r *DirectoryQueryRepository) Suggest(ctx context.Context, field directory.SuggestionField, term string, limit int) ([]string, error) {
	var table, column string
	switch field {
	case directory.FieldPayerName:
		table, column = "payers", "payer_name"
	case directory.FieldPayerCode:
		table, column = "payers", "payer_code"
	case directory.FieldCocode:
		table, column = "naic", "cocode"
	default:
		return nil, fmt.Errorf("unknown suggestion field %q", field)
	}

	var values []string
	if err := db.GetTxFromContext(ctx, r.db).
		Table(table).
		Scopes(db.LikeAny(query.Contains(term), column)).
		Limit(limit).
		Pluck(column, &values).Error; err != nil {
		return nil, fmt.Errorf("failed to suggest %s: %w", field, err)
	}
	return values, nil
}

func (r *DirectoryQueryRepository) GetCarrierDetail(ctx context.Context, carrierID uint) (*directory.CarrierDetail, error) {
	var rows []carrierDetailRow
	if err := r.carriers(ctx).
		Select("c.carrier_id, p.payer_id, p.payer_name, p.payer_code, p.clearing_house, p.mapping_status, " +
			"n.naic_id, n.cocode, n.company_name").
		Where("c.carrier_id = ?", carrierID).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get carrier detail: %w", err)
	}
	if len(rows) == 0 {
		return nil, carrier.ErrCarrierNotFound
	}
	row := rows[0]
	return &directory.CarrierDetail{
		CarrierID:     row.CarrierID,
		PayerID:       row.PayerID,
		PayerName:     row.PayerName,
		PayerCode:     row.PayerCode,
		ClearingHouse: row.ClearingHouse,
		MappingStatus: row.MappingStatus,
		NaicID:        row.NaicID,
		Cocode:        row.Cocode,
		CompanyName:   row.CompanyName,
	}, nil
}

type carrierDetailRow struct {
	CarrierID     uint
	PayerID       uint
	PayerName     string
	PayerCode     string
	ClearingHouse string
	MappingStatus string
	NaicID        uint
	Cocode        string
	CompanyName   string
}

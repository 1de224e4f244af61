package payer

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

// Repository defines the interface for payer persistence
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Payer, error)

	// GetByNaturalKey finds the payer for (code, clearing house); nil, ErrPayerNotFound when absent.
	GetByNaturalKey(ctx context.Context, code, clearingHouse string) (*Payer, error)

	GetByIDs(ctx context.Context, ids []uint) ([]*Payer, error)

	Create(ctx context.Context, payer *Payer) error

	UpdateName(ctx context.Context, payer *Payer) error

	// UpdateMapping persists naic_id and mapping_status.
	UpdateMapping(ctx context.Context, payer *Payer) error

	// SetStatusBulk moves every listed payer to status in one statement. When
	// requireNaic is set, payers without a NAIC link are left unchanged.
	SetStatusBulk(ctx context.Context, ids []uint, status MappingStatus, requireNaic bool) (int64, error)

	// List returns payers joined to their NAIC company for the admin screens.
	List(ctx context.Context, filter ListFilter) ([]*View, int64, error)

	// ListByStatus returns every payer in status, ordered by name.
	ListByStatus(ctx context.Context, status MappingStatus) ([]*View, error)

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status MappingStatus) (int64, error)

	// CountUnassigned counts payers without a NAIC link that are not approved.
	CountUnassigned(ctx context.Context) (int64, error)
}

type ListFilter struct {
	query.BaseFilter
	Status StatusFilter
}

// View is a payer row with its linked NAIC company, if any.
type View struct {
	PayerID       uint
	PayerCode     string
	PayerName     string
	ClearingHouse string
	NaicID        *uint
	Cocode        string
	CompanyName   string
	Status        MappingStatus
}

package naic

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

// Repository defines the interface for NAIC record persistence
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Record, error)
	GetByCocode(ctx context.Context, cocode string) (*Record, error)
	Create(ctx context.Context, record *Record) error
	UpdateName(ctx context.Context, record *Record) error

	// List pages records ordered by company name, filtered on name or cocode.
	List(ctx context.Context, filter ListFilter) ([]*Record, int64, error)

	// Lookup returns at most limit records whose name or cocode contains term.
	Lookup(ctx context.Context, term string, limit int) ([]*Record, error)

	Count(ctx context.Context) (int64, error)
}

type ListFilter struct {
	query.BaseFilter
}

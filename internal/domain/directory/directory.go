// Package directory defines the read side of the public carrier directory.
package directory

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

// Entry is one carrier row in the directory grid.
type Entry struct {
	CarrierID      uint
	PayerName      string
	PayerCode      string
	Cocode         string
	ClearingHouses string
}

// SearchHit is one row of the JSON search API.
type SearchHit struct {
	CarrierID   uint
	PayerName   string
	PayerCode   string
	Cocode      string
	CompanyName string
}

// SuggestionField chooses the column an autocomplete lookup matches on.
type SuggestionField string

const (
	FieldPayerName SuggestionField = "payer_name"
	FieldPayerCode SuggestionField = "payer_code"
	FieldCocode    SuggestionField = "cocode"
)

// Label is the group heading shown next to a suggestion.
func (f SuggestionField) Label() string {
	switch f {
	case FieldPayerName:
		return "Payer"
	case FieldPayerCode:
		return "Payer ID"
	case FieldCocode:
		return "NAIC"
	default:
		return ""
	}
}

// Suggestion is one autocomplete entry: the matched value and its group heading.
type Suggestion struct {
	Label    string
	Category string
}

// CarrierDetail is the carrier page: the link, its payer, its company and recent history.
type CarrierDetail struct {
	CarrierID     uint
	PayerID       uint
	PayerName     string
	PayerCode     string
	ClearingHouse string
	MappingStatus string
	NaicID        uint
	Cocode        string
	CompanyName   string
	History       []*audit.Entry
}

type ListFilter struct {
	query.BaseFilter
}

// QueryRepository is the read model over carriers, payers and naic.
type QueryRepository interface {
	// ListCarriers groups by carrier, orders by payer name and pages by filter.
	ListCarriers(ctx context.Context, filter ListFilter) ([]*Entry, int64, error)

	Search(ctx context.Context, term string, limit int) ([]*SearchHit, error)

	// Suggest returns values of field containing term. Payer fields read the
	// payers table, cocode reads the naic registry.
	Suggest(ctx context.Context, field SuggestionField, term string, limit int) ([]string, error)

	GetCarrierDetail(ctx context.Context, carrierID uint) (*CarrierDetail, error)
}

package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
)

type mockQueryRepository struct {
	ListCarriersFunc     func(ctx context.Context, filter directory.ListFilter) ([]*directory.Entry, int64, error)
	SearchFunc           func(ctx context.Context, term string, limit int) ([]*directory.SearchHit, error)
	SuggestFunc          func(ctx context.Context, field directory.SuggestionField, term string, limit int) ([]string, error)
	GetCarrierDetailFunc func(ctx context.Context, carrierID uint) (*directory.CarrierDetail, error)
}

func (m *mockQueryRepository) ListCarriers(ctx context.Context, filter directory.ListFilter) ([]*directory.Entry, int64, error) {
	if m.ListCarriersFunc != nil {
		return m.ListCarriersFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockQueryRepository) Search(ctx context.Context, term string, limit int) ([]*directory.SearchHit, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term, limit)
	}
	return nil, nil
}

func (m *mockQueryRepository) Suggest(ctx context.Context, field directory.SuggestionField, term string, limit int) ([]string, error) {
	if m.SuggestFunc != nil {
		return m.SuggestFunc(ctx, field, term, limit)
	}
	return nil, nil
}

func (m *mockQueryRepository) GetCarrierDetail(ctx context.Context, carrierID uint) (*directory.CarrierDetail, error) {
	if m.GetCarrierDetailFunc != nil {
		return m.GetCarrierDetailFunc(ctx, carrierID)
	}
	return nil, nil
}

type mockSuggestionCache struct {
	GetFunc func(ctx context.Context, term string) ([]directory.Suggestion, bool, error)
	SetFunc func(ctx context.Context, term string, suggestions []directory.Suggestion) error
}

func (m *mockSuggestionCache) Get(ctx context.Context, term string) ([]directory.Suggestion, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, term)
	}
	return nil, false, nil
}

func (m *mockSuggestionCache) Set(ctx context.Context, term string, suggestions []directory.Suggestion) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, term, suggestions)
	}
	return nil
}

// mockNaicRepository implements only Lookup; other methods panic through the nil embed.
type mockNaicRepository struct {
	naic.Repository
	LookupFunc func(ctx context.Context, term string, limit int) ([]*naic.Record, error)
}

func (m *mockNaicRepository) Lookup(ctx context.Context, term string, limit int) ([]*naic.Record, error) {
	return m.LookupFunc(ctx, term, limit)
}

type mockAuditRepository struct {
	ListByCarrierFunc func(ctx context.Context, carrierID uint, limit int) ([]*audit.Entry, error)
}

func (m *mockAuditRepository) Append(ctx context.Context, entries ...*audit.Entry) error {
	return nil
}

func (m *mockAuditRepository) ListByCarrier(ctx context.Context, carrierID uint, limit int) ([]*audit.Entry, error) {
	if m.ListByCarrierFunc != nil {
		return m.ListByCarrierFunc(ctx, carrierID, limit)
	}
	return nil, nil
}

type countFunc func(ctx context.Context) (int64, error)

func (f countFunc) Count(ctx context.Context) (int64, error) { return f(ctx) }

func fixedCount(n int64) Counter {
	return countFunc(func(context.Context) (int64, error) { return n, nil })
}

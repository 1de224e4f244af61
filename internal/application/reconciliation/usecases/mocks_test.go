package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
)

type mockInvalidator struct {
	calls int
	err   error
}

func (m *mockInvalidator) Invalidate(ctx context.Context) error {
	m.calls++
	return m.err
}

// mockPayerRepository delegates to the embedded repository unless a Func is set.
type mockPayerRepository struct {
	payer.Repository
	CreateFunc func(ctx context.Context, p *payer.Payer) error
}

func (m *mockPayerRepository) Create(ctx context.Context, p *payer.Payer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return m.Repository.Create(ctx, p)
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/domain/carrier"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/testdb"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/repository"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type mappingFixture struct {
	payers    payer.Repository
	naics     naic.Repository
	carriers  carrier.Repository
	audits    audit.Repository
	directory directory.QueryRepository
	txMgr     *db.TransactionManager
}

func newMappingFixture(t *testing.T) *mappingFixture {
	t.Helper()
	gdb := testdb.New(t)
	log := logger.NewNopLogger()
	return &mappingFixture{
		payers:    repository.NewPayerRepository(gdb, log),
		naics:     repository.NewNaicRepository(gdb, log),
		carriers:  repository.NewCarrierRepository(gdb, log),
		audits:    repository.NewAuditRepository(gdb, log),
		directory: repository.NewDirectoryQueryRepository(gdb, log),
		txMgr:     db.NewTransactionManager(gdb),
	}
}

func (f *mappingFixture) addPayer(t *testing.T, code, name string) *payer.Payer {
	t.Helper()
	p, err := payer.NewPayer(code, name, "Availity")
	require.NoError(t, err)
	require.NoError(t, f.payers.Create(context.Background(), p))
	return p
}

func (f *mappingFixture) addNaic(t *testing.T, cocode, name string) *naic.Record {
	t.Helper()
	rec, err := naic.NewRecord(cocode, name)
	require.NoError(t, err)
	require.NoError(t, f.naics.Create(context.Background(), rec))
	return rec
}

func (f *mappingFixture) reload(t *testing.T, id uint) *payer.Payer {
	t.Helper()
	p, err := f.payers.GetByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

func uintPtr(v uint) *uint { return &v }

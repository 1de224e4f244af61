package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosinajy/carrier-code-verify/internal/domain/carrier"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/testdb"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

type directoryFixture struct {
	repo     directory.QueryRepository
	carriers map[string]uint
}

func setupDirectory(t *testing.T) *directoryFixture {
	t.Helper()
	db := testdb.New(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	payers := NewPayerRepository(db, log)
	registry := NewNaicRepository(db, log)
	carriers := NewCarrierRepository(db, log)

	fx := &directoryFixture{
		repo:     NewDirectoryQueryRepository(db, log),
		carriers: make(map[string]uint),
	}

	link := func(code, name, clearingHouse, cocode, company string, status payer.MappingStatus) {
		p := seedPayer(t, payers, code, name, clearingHouse)
		rec := seedNaic(t, registry, cocode, company)
		naicID := rec.ID()
		p.AssignNaic(&naicID)
		require.NoError(t, payers.UpdateMapping(ctx, p))
		c, _, err := carriers.UpsertForPayer(ctx, p.ID(), naicID)
		require.NoError(t, err)
		if status != payer.StatusPending {
			_, err = payers.SetStatusBulk(ctx, []uint{p.ID()}, status, true)
			require.NoError(t, err)
		}
		fx.carriers[code] = c.ID
	}

	link("60054", "Aetna", "Availity", "60054", "Aetna Life Insurance Company", payer.StatusApproved)
	link("62308", "Cigna", "Change Healthcare", "62308", "Connecticut General Life", payer.StatusApproved)
	link("87726", "UnitedHealthcare", "Availity", "79413", "UnitedHealthcare Insurance Company", payer.StatusApproved)

	// Carriers whose payer is no longer approved stay out of the directory.
	link("11111", "Bravo Rejected", "Availity", "11111", "Bravo Mutual", payer.StatusRejected)
	link("22222", "Charlie Pending", "Availity", "22222", "Charlie Casualty", payer.StatusPending)

	// Unlinked payers never reach the directory.
	seedPayer(t, payers, "99999", "Acme 100%", "Availity")
	return fx
}

func TestDirectoryQueryRepository_ListCarriers(t *testing.T) {
	fx := setupDirectory(t)
	ctx := context.Background()

	t.Run("ordered by payer name", func(t *testing.T) {
		rows, total, err := fx.repo.ListCarriers(ctx, directory.ListFilter{BaseFilter: query.NewBaseFilter()})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, rows, 3)
		assert.Equal(t, "Aetna", rows[0].PayerName)
		assert.Equal(t, "UnitedHealthcare", rows[2].PayerName)
		assert.Equal(t, "79413", rows[2].Cocode)
		assert.Equal(t, "Change Healthcare", rows[1].ClearingHouses)
	})

	t.Run("filter by cocode", func(t *testing.T) {
		rows, total, err := fx.repo.ListCarriers(ctx, directory.ListFilter{BaseFilter: query.NewBaseFilter(query.WithSearch("7941"))})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, fx.carriers["87726"], rows[0].CarrierID)
	})

	t.Run("page past the end", func(t *testing.T) {
		rows, total, err := fx.repo.ListCarriers(ctx, directory.ListFilter{BaseFilter: query.NewBaseFilter(query.WithPage(2, 50))})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, rows)
	})

	t.Run("huge page is empty", func(t *testing.T) {
		rows, total, err := fx.repo.ListCarriers(ctx, directory.ListFilter{BaseFilter: query.NewBaseFilter(query.WithPage(200000000000000000, 50))})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, rows)
	})

	t.Run("unapproved carriers hidden", func(t *testing.T) {
		for _, term := range []string{"Bravo", "Charlie"} {
			rows, total, err := fx.repo.ListCarriers(ctx, directory.ListFilter{BaseFilter: query.NewBaseFilter(query.WithSearch(term))})
			require.NoError(t, err)
			assert.Zero(t, total, term)
			assert.Empty(t, rows, term)
		}
	})

	t.Run("small pages", func(t *testing.T) {
		rows, _, err := fx.repo.ListCarriers(ctx, directory.ListFilter{BaseFilter: query.NewBaseFilter(query.WithPage(2, 2))})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "UnitedHealthcare", rows[0].PayerName)
	})
}

func TestDirectoryQueryRepository_Search(t *testing.T) {
	fx := setupDirectory(t)
	ctx := context.Background()

	hits, err := fx.repo.Search(ctx, "cig", 50)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Connecticut General Life", hits[0].CompanyName)
	assert.Equal(t, "62308", hits[0].PayerCode)

	hits, err = fx.repo.Search(ctx, "6", 1)
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	hits, err = fx.repo.Search(ctx, "%", 50)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = fx.repo.Search(ctx, "Bravo", 50)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestDirectoryQueryRepository_Suggest(t *testing.T) {
	fx := setupDirectory(t)
	ctx := context.Background()

	names, err := fx.repo.Suggest(ctx, directory.FieldPayerName, "acme", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme 100%"}, names)

	codes, err := fx.repo.Suggest(ctx, directory.FieldPayerCode, "0", 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"60054", "62308"}, codes)

	cocodes, err := fx.repo.Suggest(ctx, directory.FieldCocode, "794", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"79413"}, cocodes)

	_, err = fx.repo.Suggest(ctx, directory.SuggestionField("company"), "x", 3)
	assert.Error(t, err)
}

func TestDirectoryQueryRepository_GetCarrierDetail(t *testing.T) {
	fx := setupDirectory(t)
	ctx := context.Background()

	detail, err := fx.repo.GetCarrierDetail(ctx, fx.carriers["62308"])
	require.NoError(t, err)
	assert.Equal(t, "Cigna", detail.PayerName)
	assert.Equal(t, "Change Healthcare", detail.ClearingHouse)
	assert.Equal(t, "Connecticut General Life", detail.CompanyName)
	assert.Equal(t, "approved", detail.MappingStatus)
	assert.Empty(t, detail.History)

	_, err = fx.repo.GetCarrierDetail(ctx, 12345)
	assert.ErrorIs(t, err, carrier.ErrCarrierNotFound)

	_, err = fx.repo.GetCarrierDetail(ctx, fx.carriers["11111"])
	assert.ErrorIs(t, err, carrier.ErrCarrierNotFound)

	_, err = fx.repo.GetCarrierDetail(ctx, fx.carriers["22222"])
	assert.ErrorIs(t, err, carrier.ErrCarrierNotFound)
}

func TestDirectoryQueryRepository_ClearingHouseWithComma(t *testing.T) {
	db := testdb.New(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	payers := NewPayerRepository(db, log)
	p := seedPayer(t, payers, "55555", "Zeta Health", "Zeta, Alpha")
	rec := seedNaic(t, NewNaicRepository(db, log), "55555", "Zeta Health Plan")
	naicID := rec.ID()
	p.AssignNaic(&naicID)
	require.NoError(t, payers.UpdateMapping(ctx, p))
	_, err := payers.SetStatusBulk(ctx, []uint{p.ID()}, payer.StatusApproved, true)
	require.NoError(t, err)
	_, _, err = NewCarrierRepository(db, log).UpsertForPayer(ctx, p.ID(), naicID)
	require.NoError(t, err)

	rows, total, err := NewDirectoryQueryRepository(db, log).ListCarriers(ctx, directory.ListFilter{BaseFilter: query.NewBaseFilter()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Zeta, Alpha", rows[0].ClearingHouses)
}

func TestJoinClearingHouses(t *testing.T) {
	assert.Equal(t, "", joinClearingHouses(""))
	assert.Equal(t, "Zeta, Alpha", joinClearingHouses("Zeta, Alpha"))
	assert.Equal(t, "Availity, Change Healthcare", joinClearingHouses("Change Healthcare\x1fAvaility"))
}

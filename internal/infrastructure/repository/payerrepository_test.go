package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/testdb"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

func seedPayer(t *testing.T, repo payer.Repository, code, name, clearingHouse string) *payer.Payer {
	t.Helper()
	p, err := payer.NewPayer(code, name, clearingHouse)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func seedNaic(t *testing.T, repo naic.Repository, cocode, name string) *naic.Record {
	t.Helper()
	rec, err := naic.NewRecord(cocode, name)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), rec))
	return rec
}

func TestPayerRepository_CRUD(t *testing.T) {
	db := testdb.New(t)
	repo := NewPayerRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	p := seedPayer(t, repo, "60054", "Aetna", "Availity")
	assert.NotZero(t, p.ID())

	t.Run("get by natural key", func(t *testing.T) {
		found, err := repo.GetByNaturalKey(ctx, "60054", "Availity")
		require.NoError(t, err)
		assert.Equal(t, p.ID(), found.ID())
		assert.Equal(t, payer.StatusUnassigned, found.Status())
		assert.Nil(t, found.NaicID())
	})

	t.Run("same code other clearing house is a different payer", func(t *testing.T) {
		_, err := repo.GetByNaturalKey(ctx, "60054", "Change Healthcare")
		assert.ErrorIs(t, err, payer.ErrPayerNotFound)
	})

	t.Run("duplicate natural key rejected", func(t *testing.T) {
		dup, err := payer.NewPayer("60054", "Aetna Again", "Availity")
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, dup))
	})

	t.Run("update name", func(t *testing.T) {
		require.NoError(t, p.Rename("Aetna Inc"))
		require.NoError(t, repo.UpdateName(ctx, p))
		found, err := repo.GetByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, "Aetna Inc", found.Name())
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, payer.ErrPayerNotFound)
	})
}

func TestPayerRepository_UpdateMapping(t *testing.T) {
	db := testdb.New(t)
	repo := NewPayerRepository(db, logger.NewNopLogger())
	naicRepo := NewNaicRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	rec := seedNaic(t, naicRepo, "60054", "Aetna Life Insurance Company")
	p := seedPayer(t, repo, "60054", "Aetna", "Availity")

	naicID := rec.ID()
	p.AssignNaic(&naicID)
	require.NoError(t, repo.UpdateMapping(ctx, p))

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	require.NotNil(t, found.NaicID())
	assert.Equal(t, rec.ID(), *found.NaicID())
	assert.Equal(t, payer.StatusPending, found.Status())

	p.AssignNaic(nil)
	require.NoError(t, repo.UpdateMapping(ctx, p))

	found, err = repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, found.NaicID())
	assert.Equal(t, payer.StatusPending, found.Status())
}

func TestPayerRepository_SetStatusBulk(t *testing.T) {
	db := testdb.New(t)
	repo := NewPayerRepository(db, logger.NewNopLogger())
	naicRepo := NewNaicRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	rec := seedNaic(t, naicRepo, "11111", "Blue Cross")
	naicID := rec.ID()

	withNaic := seedPayer(t, repo, "A1", "Alpha", "Availity")
	withNaic.AssignNaic(&naicID)
	require.NoError(t, repo.UpdateMapping(ctx, withNaic))

	withoutNaic := seedPayer(t, repo, "B1", "Beta", "Availity")
	withoutNaic.AssignNaic(nil)
	require.NoError(t, repo.UpdateMapping(ctx, withoutNaic))

	untouched := seedPayer(t, repo, "C1", "Gamma", "Availity")

	t.Run("approve skips payers without naic", func(t *testing.T) {
		n, err := repo.SetStatusBulk(ctx, []uint{withNaic.ID(), withoutNaic.ID()}, payer.StatusApproved, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := repo.GetByIDs(ctx, []uint{withNaic.ID(), withoutNaic.ID(), untouched.ID()})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, payer.StatusApproved, got[0].Status())
		assert.Equal(t, payer.StatusPending, got[1].Status())
		assert.Equal(t, payer.StatusUnassigned, got[2].Status())
	})

	t.Run("reject applies regardless of naic", func(t *testing.T) {
		n, err := repo.SetStatusBulk(ctx, []uint{withoutNaic.ID()}, payer.StatusRejected, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := repo.GetByID(ctx, withoutNaic.ID())
		require.NoError(t, err)
		assert.Equal(t, payer.StatusRejected, got.Status())
	})

	t.Run("empty id list is a no-op", func(t *testing.T) {
		n, err := repo.SetStatusBulk(ctx, nil, payer.StatusApproved, true)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestPayerRepository_SetStatusBulk_SingleStatement(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	repo := NewPayerRepository(gdb, logger.NewNopLogger())

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `payers` SET `mapping_status`=? WHERE payer_id IN (?,?,?) AND naic_id IS NOT NULL",
	)).
		WithArgs("approved", 4, 5, 6).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.SetStatusBulk(context.Background(), []uint{4, 5, 6}, payer.StatusApproved, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `payers` SET `mapping_status`=? WHERE payer_id IN (?,?)",
	)).
		WithArgs("rejected", 4, 5).
		WillReturnResult(sqlmock.NewResult(0, 2))

	_, err = repo.SetStatusBulk(context.Background(), []uint{4, 5}, payer.StatusRejected, false)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayerRepository_ListAndCounts(t *testing.T) {
	db := testdb.New(t)
	repo := NewPayerRepository(db, logger.NewNopLogger())
	naicRepo := NewNaicRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	rec := seedNaic(t, naicRepo, "60054", "Aetna Life")
	naicID := rec.ID()

	assigned := seedPayer(t, repo, "60054", "Aetna", "Availity")
	assigned.AssignNaic(&naicID)
	require.NoError(t, repo.UpdateMapping(ctx, assigned))

	seedPayer(t, repo, "BCBS1", "Blue Cross", "Change Healthcare")
	seedPayer(t, repo, "CIG01", "Cigna 50%_off", "Availity")

	list := func(status payer.StatusFilter, search string) ([]*payer.View, int64) {
		rows, total, err := repo.List(ctx, payer.ListFilter{
			BaseFilter: query.NewBaseFilter(query.WithSearch(search)),
			Status:     status,
		})
		require.NoError(t, err)
		return rows, total
	}

	t.Run("unassigned", func(t *testing.T) {
		rows, total := list(payer.FilterUnassigned, "")
		assert.Equal(t, int64(2), total)
		require.Len(t, rows, 2)
		assert.Equal(t, "Blue Cross", rows[0].PayerName)
		assert.Equal(t, "", rows[0].CompanyName)
	})

	t.Run("assigned joins company", func(t *testing.T) {
		rows, total := list(payer.FilterAssigned, "")
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, "Aetna Life", rows[0].CompanyName)
		assert.Equal(t, "60054", rows[0].Cocode)
		assert.Equal(t, payer.StatusPending, rows[0].Status)
	})

	t.Run("pending", func(t *testing.T) {
		_, total := list(payer.FilterPending, "")
		assert.Equal(t, int64(1), total)
	})

	t.Run("all with clearing house search", func(t *testing.T) {
		rows, total := list(payer.FilterAll, "change")
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, "BCBS1", rows[0].PayerCode)
	})

	t.Run("like metacharacters are literal", func(t *testing.T) {
		_, total := list(payer.FilterAll, "50%_")
		assert.Equal(t, int64(1), total)
		_, total = list(payer.FilterAll, "%")
		assert.Equal(t, int64(1), total)
	})

	t.Run("huge page is empty", func(t *testing.T) {
		rows, total, err := repo.List(ctx, payer.ListFilter{
			BaseFilter: query.NewBaseFilter(query.WithPage(200000000000000000, 50)),
			Status:     payer.FilterAll,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, rows)
	})

	t.Run("pending view list", func(t *testing.T) {
		rows, err := repo.ListByStatus(ctx, payer.StatusPending)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, assigned.ID(), rows[0].PayerID)
	})

	t.Run("counts", func(t *testing.T) {
		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)

		pending, err := repo.CountByStatus(ctx, payer.StatusPending)
		require.NoError(t, err)
		assert.Equal(t, int64(1), pending)

		unassigned, err := repo.CountUnassigned(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), unassigned)
	})
}

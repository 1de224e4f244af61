package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/testdb"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/repository"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

func TestImportNaic(t *testing.T) {
	gdb := testdb.New(t)
	repo := repository.NewNaicRepository(gdb, logger.NewNopLogger())
	cache := &mockInvalidator{}
	uc := NewImportNaicUseCase(repo, db.NewTransactionManager(gdb), cache, logger.NewNopLogger())
	ctx := context.Background()

	result, err := uc.Execute(ctx, ImportNaicCommand{
		Header: []string{"COCODE", "Company Name"},
		Rows: [][]string{
			{"60054", "Aetna Life Insurance Company"},
			{"62308", "Connecticut General Life"},
			{"", "No Code Inc"},
			{"", ""},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, []string{"Row 4: cocode is required", "Row 5: empty row"}, result.SkipReasons)
	assert.Equal(t, 1, cache.calls)

	result, err = uc.Execute(ctx, ImportNaicCommand{
		Header: []string{"naic code", "company_name"},
		Rows:   [][]string{{"62308", "Cigna Health and Life"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Updated)

	rec, err := repo.GetByCocode(ctx, "62308")
	require.NoError(t, err)
	assert.Equal(t, "Cigna Health and Life", rec.CompanyName())

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestImportNaic_UnknownHeadersSkipEveryRow(t *testing.T) {
	gdb := testdb.New(t)
	repo := repository.NewNaicRepository(gdb, logger.NewNopLogger())
	uc := NewImportNaicUseCase(repo, db.NewTransactionManager(gdb), nil, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), ImportNaicCommand{
		Header: []string{"code", "name"},
		Rows:   [][]string{{"1", "One"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"Row 2: cocode is required; company_name is required"}, result.SkipReasons)
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Payer ID", "payer id"},
		{"  PAYER   ID ", "payer id"},
		{"\tpayer name\n", "payer name"},
		{"ＣＯＣＯＤＥ", "cocode"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeader(tt.in), tt.in)
	}
}

func TestColumnValue(t *testing.T) {
	col := resolveColumn([]string{"Payer ID", "payer_id", "Payer Name"}, payerCodeAliases)
	require.Equal(t, column{0, 1}, col)

	assert.Equal(t, "60054", col.value([]string{"  ", " 60054 ", "Aetna"}))
	assert.Equal(t, "", col.value([]string{""}))
	assert.Equal(t, "", col.value(nil))

	assert.True(t, isBlankRow([]string{" ", "\t"}))
	assert.False(t, isBlankRow([]string{"", "x"}))
}

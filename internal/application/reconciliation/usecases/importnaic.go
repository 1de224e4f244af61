package usecases

import (
	"context"
	"errors"

	"github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

type ImportNaicCommand struct {
	Header []string
	Rows   [][]string
}

type ImportNaicExecutor interface {
	Execute(ctx context.Context, cmd ImportNaicCommand) (*dto.ImportResult, error)
}

type naicRow struct {
	Cocode      string `json:"cocode" validate:"notblank,max=20"`
	CompanyName string `json:"company_name" validate:"notblank,max=255"`
}

type ImportNaicUseCase struct {
	naicRepo    naic.Repository
	txMgr       db.Transactor
	suggestions SuggestionInvalidator
	logger      logger.Interface
}

func NewImportNaicUseCase(
	naicRepo naic.Repository,
	txMgr db.Transactor,
	suggestions SuggestionInvalidator,
	logger logger.Interface,
) *ImportNaicUseCase {
	return &ImportNaicUseCase{
		naicRepo:    naicRepo,
		txMgr:       txMgr,
		suggestions: suggestions,
		logger:      logger,
	}
}

// Execute upserts NAIC companies by cocode with the same batch rules as payer imports.
func (uc *ImportNaicUseCase) Execute(ctx context.Context, cmd ImportNaicCommand) (*dto.ImportResult, error) {
	uc.logger.Infow("executing import naic use case", "rows", len(cmd.Rows))

	codeCol := resolveColumn(cmd.Header, naicCodeAliases)
	nameCol := resolveColumn(cmd.Header, naicCompanyAliases)

	result := &dto.ImportResult{SkipReasons: []string{}}
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		for i, row := range cmd.Rows {
			rowNumber := i + 2
			if isBlankRow(row) {
				result.Skip(rowNumber, "empty row")
				continue
			}

			candidate := naicRow{Cocode: codeCol.value(row), CompanyName: nameCol.value(row)}
			if err := utils.ValidateStruct(candidate); err != nil {
				result.Skip(rowNumber, skipReason(err))
				continue
			}

			inserted, err := uc.upsert(ctx, candidate)
			if err != nil {
				return err
			}
			if inserted {
				result.Inserted++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("naic import rolled back", "error", err)
		return nil, sharedErrors.NewInternalError("Import failed", err.Error())
	}

	invalidateSuggestions(ctx, uc.suggestions, uc.logger)

	uc.logger.Infow("naic import completed",
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped,
	)
	return result, nil
}

func (uc *ImportNaicUseCase) upsert(ctx context.Context, row naicRow) (bool, error) {
	existing, err := uc.naicRepo.GetByCocode(ctx, row.Cocode)
	switch {
	case err == nil:
		if err := existing.Rename(row.CompanyName); err != nil {
			return false, err
		}
		return false, uc.naicRepo.UpdateName(ctx, existing)
	case errors.Is(err, naic.ErrNaicNotFound):
		rec, err := naic.NewRecord(row.Cocode, row.CompanyName)
		if err != nil {
			return false, err
		}
		return true, uc.naicRepo.Create(ctx, rec)
	default:
		return false, err
	}
}

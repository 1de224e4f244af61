package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

// ImportPayersCommand carries the first sheet of an upload; Rows excludes the header.
type ImportPayersCommand struct {
	ClearingHouse string
	Header        []string
	Rows          [][]string
}

type ImportPayersExecutor interface {
	Execute(ctx context.Context, cmd ImportPayersCommand) (*dto.ImportResult, error)
}

type payerRow struct {
	Code string `json:"payer_code" validate:"notblank,max=100"`
	Name string `json:"payer_name" validate:"notblank,max=255"`
}

type ImportPayersUseCase struct {
	payerRepo   payer.Repository
	txMgr       db.Transactor
	suggestions SuggestionInvalidator
	logger      logger.Interface
}

func NewImportPayersUseCase(
	payerRepo payer.Repository,
	txMgr db.Transactor,
	suggestions SuggestionInvalidator,
	logger logger.Interface,
) *ImportPayersUseCase {
	return &ImportPayersUseCase{
		payerRepo:   payerRepo,
		txMgr:       txMgr,
		suggestions: suggestions,
		logger:      logger,
	}
}

// Execute upserts every valid row by (payer code, clearing house) inside one
// transaction. Invalid rows are skipped; any storage error rolls back the batch.
func (uc *ImportPayersUseCase) Execute(ctx context.Context, cmd ImportPayersCommand) (*dto.ImportResult, error) {
	clearingHouse := strings.TrimSpace(cmd.ClearingHouse)
	if clearingHouse == "" {
		return nil, sharedErrors.NewValidationError("Clearing House and File are required.")
	}

	uc.logger.Infow("executing import payers use case", "clearing_house", clearingHouse, "rows", len(cmd.Rows))

	codeCol := resolveColumn(cmd.Header, payerCodeAliases)
	nameCol := resolveColumn(cmd.Header, payerNameAliases)

	result := &dto.ImportResult{SkipReasons: []string{}}
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		for i, row := range cmd.Rows {
			rowNumber := i + 2
			if isBlankRow(row) {
				result.Skip(rowNumber, "empty row")
				continue
			}

			candidate := payerRow{Code: codeCol.value(row), Name: nameCol.value(row)}
			if err := utils.ValidateStruct(candidate); err != nil {
				result.Skip(rowNumber, skipReason(err))
				continue
			}

			inserted, err := uc.upsert(ctx, candidate, clearingHouse)
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
		uc.logger.Errorw("payer import rolled back", "clearing_house", clearingHouse, "error", err)
		return nil, sharedErrors.NewInternalError("Import failed", err.Error())
	}

	invalidateSuggestions(ctx, uc.suggestions, uc.logger)

	uc.logger.Infow("payer import completed",
		"clearing_house", clearingHouse,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped,
	)
	return result, nil
}

func (uc *ImportPayersUseCase) upsert(ctx context.Context, row payerRow, clearingHouse string) (bool, error) {
	existing, err := uc.payerRepo.GetByNaturalKey(ctx, row.Code, clearingHouse)
	switch {
	case err == nil:
		if err := existing.Rename(row.Name); err != nil {
			return false, err
		}
		return false, uc.payerRepo.UpdateName(ctx, existing)
	case errors.Is(err, payer.ErrPayerNotFound):
		p, err := payer.NewPayer(row.Code, row.Name, clearingHouse)
		if err != nil {
			return false, err
		}
		return true, uc.payerRepo.Create(ctx, p)
	default:
		return false, err
	}
}

// skipReason flattens a row validation error into its field messages.
func skipReason(err error) string {
	if appErr := sharedErrors.GetAppError(err); appErr != nil && appErr.Details != "" {
		return appErr.Details
	}
	return err.Error()
}

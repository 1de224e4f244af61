package usecases

import (
	"context"
	"errors"

	"github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/services/markdown"
)

type AddPayerCommand struct {
	Code          string
	Name          string
	ClearingHouse string
}

type AddPayerExecutor interface {
	Execute(ctx context.Context, cmd AddPayerCommand) (*dto.AddResult, error)
}

type AddPayerUseCase struct {
	payerRepo            payer.Repository
	suggestions          SuggestionInvalidator
	defaultClearingHouse string
	logger               logger.Interface
}

func NewAddPayerUseCase(
	payerRepo payer.Repository,
	suggestions SuggestionInvalidator,
	defaultClearingHouse string,
	logger logger.Interface,
) *AddPayerUseCase {
	if defaultClearingHouse == "" {
		defaultClearingHouse = payer.DefaultClearingHouse
	}
	return &AddPayerUseCase{
		payerRepo:            payerRepo,
		suggestions:          suggestions,
		defaultClearingHouse: defaultClearingHouse,
		logger:               logger,
	}
}

// Execute adds one payer, or renames the payer already holding (code, clearing house).
func (uc *AddPayerUseCase) Execute(ctx context.Context, cmd AddPayerCommand) (*dto.AddResult, error) {
	code := markdown.PlainText(cmd.Code)
	name := markdown.PlainText(cmd.Name)
	clearingHouse := markdown.PlainText(cmd.ClearingHouse)
	if clearingHouse == "" {
		clearingHouse = uc.defaultClearingHouse
	}

	if code == "" || name == "" {
		return nil, sharedErrors.NewValidationError("Payer Name and ID are required.")
	}

	existing, err := uc.payerRepo.GetByNaturalKey(ctx, code, clearingHouse)
	if err != nil && !errors.Is(err, payer.ErrPayerNotFound) {
		uc.logger.Errorw("failed to look up payer", "payer_code", code, "error", err)
		return nil, sharedErrors.NewInternalError("failed to add payer", err.Error())
	}

	result := &dto.AddResult{}
	if existing != nil {
		if err := existing.Rename(name); err != nil {
			return nil, sharedErrors.NewValidationError(err.Error())
		}
		if err := uc.payerRepo.UpdateName(ctx, existing); err != nil {
			return nil, sharedErrors.NewInternalError("failed to add payer", err.Error())
		}
		result.ID = existing.ID()
	} else {
		p, err := payer.NewPayer(code, name, clearingHouse)
		if err != nil {
			return nil, sharedErrors.NewValidationError(err.Error())
		}
		if err := uc.payerRepo.Create(ctx, p); err != nil {
			return nil, sharedErrors.NewInternalError("failed to add payer", err.Error())
		}
		result.ID = p.ID()
		result.Created = true
	}

	invalidateSuggestions(ctx, uc.suggestions, uc.logger)
	uc.logger.Infow("payer saved", "payer_id", result.ID, "created", result.Created, "clearing_house", clearingHouse)
	return result, nil
}

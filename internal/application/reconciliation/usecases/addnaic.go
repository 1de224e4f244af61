package usecases

import (
	"context"
	"errors"

	"github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/services/markdown"
)

type AddNaicCommand struct {
	Cocode      string
	CompanyName string
}

type AddNaicExecutor interface {
	Execute(ctx context.Context, cmd AddNaicCommand) (*dto.AddResult, error)
}

type AddNaicUseCase struct {
	naicRepo    naic.Repository
	suggestions SuggestionInvalidator
	logger      logger.Interface
}

func NewAddNaicUseCase(naicRepo naic.Repository, suggestions SuggestionInvalidator, logger logger.Interface) *AddNaicUseCase {
	return &AddNaicUseCase{
		naicRepo:    naicRepo,
		suggestions: suggestions,
		logger:      logger,
	}
}

func (uc *AddNaicUseCase) Execute(ctx context.Context, cmd AddNaicCommand) (*dto.AddResult, error) {
	cocode := markdown.PlainText(cmd.Cocode)
	name := markdown.PlainText(cmd.CompanyName)
	if cocode == "" || name == "" {
		return nil, sharedErrors.NewValidationError("Fields required.")
	}

	existing, err := uc.naicRepo.GetByCocode(ctx, cocode)
	if err != nil && !errors.Is(err, naic.ErrNaicNotFound) {
		return nil, sharedErrors.NewInternalError("failed to add naic record", err.Error())
	}

	result := &dto.AddResult{}
	if existing != nil {
		if err := existing.Rename(name); err != nil {
			return nil, sharedErrors.NewValidationError(err.Error())
		}
		if err := uc.naicRepo.UpdateName(ctx, existing); err != nil {
			return nil, sharedErrors.NewInternalError("failed to add naic record", err.Error())
		}
		result.ID = existing.ID()
	} else {
		rec, err := naic.NewRecord(cocode, name)
		if err != nil {
			return nil, sharedErrors.NewValidationError(err.Error())
		}
		if err := uc.naicRepo.Create(ctx, rec); err != nil {
			return nil, sharedErrors.NewInternalError("failed to add naic record", err.Error())
		}
		result.ID = rec.ID()
		result.Created = true
	}

	invalidateSuggestions(ctx, uc.suggestions, uc.logger)
	uc.logger.Infow("naic record saved", "naic_id", result.ID, "cocode", cocode, "created", result.Created)
	return result, nil
}

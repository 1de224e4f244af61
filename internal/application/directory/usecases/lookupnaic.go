package usecases

import (
	"context"
	"strings"

	"github.com/tosinajy/carrier-code-verify/internal/application/directory/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type LookupNaicUseCase struct {
	naicRepo naic.Repository
	logger   logger.Interface
}

func NewLookupNaicUseCase(naicRepo naic.Repository, logger logger.Interface) *LookupNaicUseCase {
	return &LookupNaicUseCase{
		naicRepo: naicRepo,
		logger:   logger,
	}
}

// Execute returns picker options for company names or cocodes containing term.
func (uc *LookupNaicUseCase) Execute(ctx context.Context, term string) ([]*dto.NaicOptionDTO, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*dto.NaicOptionDTO{}, nil
	}

	records, err := uc.naicRepo.Lookup(ctx, term, constants.NaicLookupLimit)
	if err != nil {
		uc.logger.Errorw("naic lookup failed", "term", term, "error", err)
		return nil, err
	}
	return dto.ToNaicOptionDTOList(records), nil
}

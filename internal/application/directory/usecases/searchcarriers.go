package usecases

import (
	"context"
	"strings"

	"github.com/tosinajy/carrier-code-verify/internal/application/directory/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type SearchCarriersExecutor interface {
	Execute(ctx context.Context, term string) ([]*dto.SearchHitDTO, error)
}

type SearchCarriersUseCase struct {
	queryRepo directory.QueryRepository
	logger    logger.Interface
}

func NewSearchCarriersUseCase(queryRepo directory.QueryRepository, logger logger.Interface) *SearchCarriersUseCase {
	return &SearchCarriersUseCase{
		queryRepo: queryRepo,
		logger:    logger,
	}
}

// Execute matches payer name, payer code and cocode. An empty term returns no hits.
func (uc *SearchCarriersUseCase) Execute(ctx context.Context, term string) ([]*dto.SearchHitDTO, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*dto.SearchHitDTO{}, nil
	}

	hits, err := uc.queryRepo.Search(ctx, term, constants.SearchResultLimit)
	if err != nil {
		uc.logger.Errorw("carrier search failed", "term", term, "error", err)
		return nil, err
	}
	return dto.ToSearchHitDTOList(hits), nil
}

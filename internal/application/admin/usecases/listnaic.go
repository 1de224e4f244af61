package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/application/admin/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

type ListNaicQuery struct {
	Search string
	Page   int
}

type ListNaicUseCase struct {
	naicRepo naic.Repository
	logger   logger.Interface
}

func NewListNaicUseCase(naicRepo naic.Repository, log logger.Interface) *ListNaicUseCase {
	return &ListNaicUseCase{naicRepo: naicRepo, logger: log}
}

func (uc *ListNaicUseCase) Execute(ctx context.Context, q ListNaicQuery) (*dto.NaicListDTO, error) {
	filter := naic.ListFilter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, constants.DefaultPageSize),
			query.WithSearch(q.Search),
		),
	}

	records, total, err := uc.naicRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list naic records", "error", err)
		return nil, errors.NewInternalError("failed to list naic records", err.Error())
	}

	return &dto.NaicListDTO{
		Items:    dto.ToNaicDTOList(records),
		PageMeta: pageMeta(filter.BaseFilter, total),
	}, nil
}

package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/application/directory/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

type ListDirectoryQuery struct {
	Page   int
	Search string
}

type ListDirectoryExecutor interface {
	Execute(ctx context.Context, q ListDirectoryQuery) (*dto.DirectoryPageDTO, error)
}

type ListDirectoryUseCase struct {
	queryRepo directory.QueryRepository
	logger    logger.Interface
}

func NewListDirectoryUseCase(queryRepo directory.QueryRepository, logger logger.Interface) *ListDirectoryUseCase {
	return &ListDirectoryUseCase{
		queryRepo: queryRepo,
		logger:    logger,
	}
}

// Execute serves one page of carriers. Pages below 1 are treated as 1 and pages
// past the end come back empty.
func (uc *ListDirectoryUseCase) Execute(ctx context.Context, q ListDirectoryQuery) (*dto.DirectoryPageDTO, error) {
	filter := directory.ListFilter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, constants.DefaultPageSize),
			query.WithSearch(q.Search),
		),
	}

	entries, total, err := uc.queryRepo.ListCarriers(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list directory", "page", q.Page, "search", q.Search, "error", err)
		return nil, sharedErrors.NewInternalError("failed to list directory", err.Error())
	}

	return &dto.DirectoryPageDTO{
		Items:      dto.ToDirectoryEntryDTOList(entries),
		Total:      total,
		Page:       filter.CurrentPage(),
		PageSize:   filter.Limit(),
		TotalPages: query.TotalPages(total, filter.Limit()),
		Search:     filter.Term(),
	}, nil
}

package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/application/admin/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

type ListPayersQuery struct {
	Status string
	Search string
	Page   int
}

type ListPayersUseCase struct {
	payerRepo payer.Repository
	logger    logger.Interface
}

func NewListPayersUseCase(payerRepo payer.Repository, log logger.Interface) *ListPayersUseCase {
	return &ListPayersUseCase{payerRepo: payerRepo, logger: log}
}

// Execute pages the admin payer list. An empty status lists unassigned payers;
// an unknown one lists every payer.
func (uc *ListPayersUseCase) Execute(ctx context.Context, q ListPayersQuery) (*dto.PayerListDTO, error) {
	filter := payer.ListFilter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, constants.DefaultPageSize),
			query.WithSearch(q.Search),
		),
		Status: payer.ParseStatusFilter(q.Status),
	}

	views, total, err := uc.payerRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list payers", "status", filter.Status, "error", err)
		return nil, errors.NewInternalError("failed to list payers", err.Error())
	}

	return &dto.PayerListDTO{
		Items:    dto.ToPayerDTOList(views),
		Status:   string(filter.Status),
		PageMeta: pageMeta(filter.BaseFilter, total),
	}, nil
}

func pageMeta(f query.BaseFilter, total int64) dto.PageMeta {
	return dto.PageMeta{
		Total:      total,
		Page:       f.CurrentPage(),
		PageSize:   f.Limit(),
		TotalPages: query.TotalPages(total, f.Limit()),
		Search:     f.Term(),
	}
}

package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/application/admin/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// ListPendingApprovalsUseCase feeds the approval queue screen.
type ListPendingApprovalsUseCase struct {
	payerRepo payer.Repository
	logger    logger.Interface
}

func NewListPendingApprovalsUseCase(payerRepo payer.Repository, log logger.Interface) *ListPendingApprovalsUseCase {
	return &ListPendingApprovalsUseCase{payerRepo: payerRepo, logger: log}
}

func (uc *ListPendingApprovalsUseCase) Execute(ctx context.Context) ([]*dto.PayerDTO, error) {
	views, err := uc.payerRepo.ListByStatus(ctx, payer.StatusPending)
	if err != nil {
		uc.logger.Errorw("failed to list pending approvals", "error", err)
		return nil, errors.NewInternalError("failed to list pending approvals", err.Error())
	}
	return dto.ToPayerDTOList(views), nil
}

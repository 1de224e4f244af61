package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tosinajy/carrier-code-verify/internal/application/admin/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// GetDashboardUseCase handles retrieving the admin dashboard counters.
type GetDashboardUseCase struct {
	payerRepo payer.Repository
	naicRepo  naic.Repository
	logger    logger.Interface
}

func NewGetDashboardUseCase(payerRepo payer.Repository, naicRepo naic.Repository, log logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		payerRepo: payerRepo,
		naicRepo:  naicRepo,
		logger:    log,
	}
}

// Execute counts payers, NAIC records, the approval queue and payers still
// waiting for a NAIC link.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*dto.DashboardDTO, error) {
	uc.logger.Debugw("fetching admin dashboard")

	var result dto.DashboardDTO
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		result.Payers, err = uc.payerRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.Naic, err = uc.naicRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.Pending, err = uc.payerRepo.CountByStatus(gctx, payer.StatusPending)
		return err
	})
	g.Go(func() (err error) {
		result.Unassigned, err = uc.payerRepo.CountUnassigned(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to fetch dashboard counts", "error", err)
		return nil, errors.NewInternalError("failed to fetch dashboard", err.Error())
	}
	return &result, nil
}

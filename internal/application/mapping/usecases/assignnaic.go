package usecases

import (
	"context"
	"errors"

	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// AssignNaicCommand links a payer to NaicID, or records "no NAIC" when NoNaic is set.
type AssignNaicCommand struct {
	PayerID uint
	NaicID  *uint
	NoNaic  bool
}

type AssignNaicExecutor interface {
	Execute(ctx context.Context, cmd AssignNaicCommand) error
}

type AssignNaicUseCase struct {
	payerRepo payer.Repository
	naicRepo  naic.Repository
	notifier  PendingNotifier
	logger    logger.Interface
}

func NewAssignNaicUseCase(
	payerRepo payer.Repository,
	naicRepo naic.Repository,
	notifier PendingNotifier,
	logger logger.Interface,
) *AssignNaicUseCase {
	return &AssignNaicUseCase{
		payerRepo: payerRepo,
		naicRepo:  naicRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute moves the payer to pending with the chosen link, whatever its prior status.
func (uc *AssignNaicUseCase) Execute(ctx context.Context, cmd AssignNaicCommand) error {
	uc.logger.Infow("executing assign naic use case", "payer_id", cmd.PayerID, "no_naic", cmd.NoNaic)

	if cmd.PayerID == 0 {
		return sharedErrors.NewValidationError("Invalid Payer ID.")
	}
	if cmd.NaicID == nil && !cmd.NoNaic {
		return sharedErrors.NewValidationError("Selection required.")
	}

	p, err := uc.payerRepo.GetByID(ctx, cmd.PayerID)
	if err != nil {
		if errors.Is(err, payer.ErrPayerNotFound) {
			return sharedErrors.NewNotFoundError("Payer not found")
		}
		uc.logger.Errorw("failed to get payer", "payer_id", cmd.PayerID, "error", err)
		return sharedErrors.NewInternalError("failed to assign naic", err.Error())
	}

	var naicID *uint
	if !cmd.NoNaic {
		record, err := uc.naicRepo.GetByID(ctx, *cmd.NaicID)
		if err != nil {
			if errors.Is(err, naic.ErrNaicNotFound) {
				return sharedErrors.NewNotFoundError("NAIC record not found")
			}
			uc.logger.Errorw("failed to get naic record", "naic_id", *cmd.NaicID, "error", err)
			return sharedErrors.NewInternalError("failed to assign naic", err.Error())
		}
		id := record.ID()
		naicID = &id
	}

	p.AssignNaic(naicID)
	if err := uc.payerRepo.UpdateMapping(ctx, p); err != nil {
		uc.logger.Errorw("failed to update payer mapping", "payer_id", p.ID(), "error", err)
		return sharedErrors.NewInternalError("failed to assign naic", err.Error())
	}

	if uc.notifier != nil {
		uc.notifier.NotifyPending(ctx, []string{p.Name()})
	}

	uc.logger.Infow("payer submitted for approval", "payer_id", p.ID(), "naic_id", naicID)
	return nil
}

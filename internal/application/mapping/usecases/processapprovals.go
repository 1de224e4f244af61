package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/application/mapping/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/domain/carrier"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/shared/biztime"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type ProcessApprovalsCommand struct {
	PayerIDs []uint
	Action   string
	// ChangedBy is recorded on the audit entries.
	ChangedBy string
}

type ProcessApprovalsExecutor interface {
	Execute(ctx context.Context, cmd ProcessApprovalsCommand) (*dto.ProcessApprovalsResult, error)
}

type ProcessApprovalsUseCase struct {
	payerRepo   payer.Repository
	carrierRepo carrier.Repository
	auditRepo   audit.Repository
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewProcessApprovalsUseCase(
	payerRepo payer.Repository,
	carrierRepo carrier.Repository,
	auditRepo audit.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *ProcessApprovalsUseCase {
	return &ProcessApprovalsUseCase{
		payerRepo:   payerRepo,
		carrierRepo: carrierRepo,
		auditRepo:   auditRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute applies one decision to the selected payers in a single status update.
// Approval also creates or moves each payer's carrier and audits the change;
// payers without a NAIC link are left alone and reported as blocked.
func (uc *ProcessApprovalsUseCase) Execute(ctx context.Context, cmd ProcessApprovalsCommand) (*dto.ProcessApprovalsResult, error) {
	ids := uniqueIDs(cmd.PayerIDs)
	if len(ids) == 0 {
		return nil, sharedErrors.NewSelectionError("No items selected.")
	}

	action := payer.ParseApprovalAction(cmd.Action)
	uc.logger.Infow("executing process approvals use case", "action", action, "count", len(ids))

	result := &dto.ProcessApprovalsResult{Action: string(action), Blocked: []uint{}}
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		if action != payer.ActionApprove {
			n, err := uc.payerRepo.SetStatusBulk(ctx, ids, action.TargetStatus(), false)
			result.Updated = n
			return err
		}

		n, err := uc.payerRepo.SetStatusBulk(ctx, ids, payer.StatusApproved, true)
		if err != nil {
			return err
		}
		result.Updated = n

		payers, err := uc.payerRepo.GetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		return uc.linkCarriers(ctx, payers, cmd.ChangedBy, result)
	})
	if err != nil {
		uc.logger.Errorw("approval batch rolled back", "action", action, "error", err)
		return nil, sharedErrors.NewInternalError("failed to process approvals", err.Error())
	}

	if len(result.Blocked) > 0 {
		uc.logger.Warnw("payers without naic were not approved", "payer_ids", result.Blocked)
	}
	uc.logger.Infow("approval batch processed",
		"action", action,
		"updated", result.Updated,
		"carriers_created", result.CarriersCreated,
		"carriers_moved", result.CarriersMoved,
	)
	return result, nil
}

func (uc *ProcessApprovalsUseCase) linkCarriers(ctx context.Context, payers []*payer.Payer, changedBy string, result *dto.ProcessApprovalsResult) error {
	now := biztime.NowUTC()
	entries := make([]*audit.Entry, 0, len(payers))

	for _, p := range payers {
		if !p.CanApprove() {
			result.Blocked = append(result.Blocked, p.ID())
			continue
		}

		naicID := *p.NaicID()
		c, previous, err := uc.carrierRepo.UpsertForPayer(ctx, p.ID(), naicID)
		if err != nil {
			return err
		}

		entry := &audit.Entry{
			CarrierID: c.ID,
			ChangedBy: changedBy,
			ChangedAt: now,
			Changes: map[string]any{
				"payer_id": p.ID(),
				"naic_id":  naicID,
			},
		}
		switch {
		case previous == nil:
			entry.Action = audit.ActionCreated
			result.CarriersCreated++
		case *previous != naicID:
			entry.Action = audit.ActionUpdated
			entry.Changes["previous_naic_id"] = *previous
			result.CarriersMoved++
		default:
			continue
		}
		entries = append(entries, entry)
	}

	return uc.auditRepo.Append(ctx, entries...)
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

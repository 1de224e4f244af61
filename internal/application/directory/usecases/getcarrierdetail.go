package usecases

import (
	"context"
	"errors"

	"github.com/tosinajy/carrier-code-verify/internal/application/directory/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/domain/carrier"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type GetCarrierDetailUseCase struct {
	queryRepo directory.QueryRepository
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewGetCarrierDetailUseCase(queryRepo directory.QueryRepository, auditRepo audit.Repository, logger logger.Interface) *GetCarrierDetailUseCase {
	return &GetCarrierDetailUseCase{
		queryRepo: queryRepo,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Execute loads the carrier with its most recent audit entries, newest first.
func (uc *GetCarrierDetailUseCase) Execute(ctx context.Context, carrierID uint) (*dto.CarrierDetailDTO, error) {
	if carrierID == 0 {
		return nil, sharedErrors.NewNotFoundError("Carrier not found")
	}

	detail, err := uc.queryRepo.GetCarrierDetail(ctx, carrierID)
	if err != nil {
		if errors.Is(err, carrier.ErrCarrierNotFound) {
			return nil, sharedErrors.NewNotFoundError("Carrier not found")
		}
		uc.logger.Errorw("failed to get carrier detail", "carrier_id", carrierID, "error", err)
		return nil, sharedErrors.NewInternalError("failed to get carrier", err.Error())
	}

	history, err := uc.auditRepo.ListByCarrier(ctx, carrierID, constants.CarrierAuditLimit)
	if err != nil {
		uc.logger.Errorw("failed to load carrier history", "carrier_id", carrierID, "error", err)
		return nil, sharedErrors.NewInternalError("failed to get carrier", err.Error())
	}

	return &dto.CarrierDetailDTO{
		CarrierID:     detail.CarrierID,
		PayerID:       detail.PayerID,
		PayerName:     detail.PayerName,
		PayerCode:     detail.PayerCode,
		ClearingHouse: detail.ClearingHouse,
		MappingStatus: detail.MappingStatus,
		NaicID:        detail.NaicID,
		Cocode:        detail.Cocode,
		CompanyName:   detail.CompanyName,
		History:       dto.ToAuditEntryDTOList(history),
	}, nil
}

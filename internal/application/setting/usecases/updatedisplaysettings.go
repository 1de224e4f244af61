package usecases

import (
	"context"
	"errors"

	"github.com/tosinajy/carrier-code-verify/internal/application/setting/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/setting"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

const showAdsDescription = "Show ad slots on public pages"

// UpdateDisplaySettingsUseCase handles the admin configuration form.
type UpdateDisplaySettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpdateDisplaySettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *UpdateDisplaySettingsUseCase {
	return &UpdateDisplaySettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *UpdateDisplaySettingsUseCase) Execute(ctx context.Context, req dto.UpdateDisplaySettingsRequest, updatedBy uint) error {
	uc.logger.Infow("executing update display settings use case", "show_ads", req.ShowAds, "updated_by", updatedBy)

	s, err := uc.settingRepo.GetByKey(ctx, setting.CategoryDisplay, setting.KeyShowAds)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			return sharedErrors.NewInternalError("failed to update configuration", err.Error())
		}
		s, err = setting.NewSystemSetting(setting.CategoryDisplay, setting.KeyShowAds, setting.ValueTypeBool, showAdsDescription)
		if err != nil {
			return sharedErrors.NewInternalError("failed to update configuration", err.Error())
		}
	}

	if err := s.SetBoolValue(req.ShowAds, updatedBy); err != nil {
		return sharedErrors.NewValidationError("invalid show_ads setting", err.Error())
	}
	if err := uc.settingRepo.Upsert(ctx, s); err != nil {
		uc.logger.Errorw("failed to save show_ads", "error", err)
		return sharedErrors.NewInternalError("failed to update configuration", err.Error())
	}

	uc.logger.Infow("display settings updated", "show_ads", req.ShowAds)
	return nil
}

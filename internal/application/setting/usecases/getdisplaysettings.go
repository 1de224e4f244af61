package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/application/setting/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/setting"
)

type GetDisplaySettingsUseCase struct {
	provider setting.DisplayProvider
}

func NewGetDisplaySettingsUseCase(provider setting.DisplayProvider) *GetDisplaySettingsUseCase {
	return &GetDisplaySettingsUseCase{provider: provider}
}

func (uc *GetDisplaySettingsUseCase) Execute(ctx context.Context) *dto.DisplaySettingsDTO {
	return &dto.DisplaySettingsDTO{ShowAds: uc.provider.ShowAds(ctx)}
}

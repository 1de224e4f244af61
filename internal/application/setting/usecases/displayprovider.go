package usecases

import (
	"context"
	"errors"

	"github.com/tosinajy/carrier-code-verify/internal/domain/setting"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// DisplaySettingProvider reads presentation flags from system_settings on every
// call so all instances agree, falling back to the configured default.
type DisplaySettingProvider struct {
	settingRepo    setting.Repository
	defaultShowAds bool
	logger         logger.Interface
}

var _ setting.DisplayProvider = (*DisplaySettingProvider)(nil)

func NewDisplaySettingProvider(settingRepo setting.Repository, defaultShowAds bool, logger logger.Interface) *DisplaySettingProvider {
	return &DisplaySettingProvider{
		settingRepo:    settingRepo,
		defaultShowAds: defaultShowAds,
		logger:         logger,
	}
}

func (p *DisplaySettingProvider) ShowAds(ctx context.Context) bool {
	s, err := p.settingRepo.GetByKey(ctx, setting.CategoryDisplay, setting.KeyShowAds)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			p.logger.Warnw("failed to read show_ads, using default", "error", err)
		}
		return p.defaultShowAds
	}
	if !s.HasValue() {
		return p.defaultShowAds
	}
	v, err := s.GetBoolValue()
	if err != nil {
		p.logger.Warnw("invalid show_ads value, using default", "value", s.Value(), "error", err)
		return p.defaultShowAds
	}
	return v
}

package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/application/setting/dto"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

const pathConfig = "/admin/config"

// SettingHandler handles the display configuration screen.
type SettingHandler struct {
	getUC    getDisplaySettingsUseCase
	updateUC updateDisplaySettingsUseCase
	logger   logger.Interface
}

func NewSettingHandler(getUC getDisplaySettingsUseCase, updateUC updateDisplaySettingsUseCase, logger logger.Interface) *SettingHandler {
	return &SettingHandler{
		getUC:    getUC,
		updateUC: updateUC,
		logger:   logger,
	}
}

// GetConfig handles GET /admin/config
func (h *SettingHandler) GetConfig(c *gin.Context) {
	utils.RenderPage(c, h.getUC.Execute(c.Request.Context()))
}

// UpdateConfig handles POST /admin/config. An unchecked checkbox is absent
// from the form, so presence of show_ads means true.
func (h *SettingHandler) UpdateConfig(c *gin.Context) {
	req := dto.UpdateDisplaySettingsRequest{ShowAds: checkboxValue(c, "show_ads")}

	if err := h.updateUC.Execute(c.Request.Context(), req, c.GetUint(constants.ContextKeyUserID)); err != nil {
		h.logger.Errorw("failed to update display settings", "error", err)
		utils.RedirectWithError(c, pathConfig, err)
		return
	}

	utils.RedirectWithFlash(c, pathConfig, utils.FlashSuccess, "Configuration updated.")
}

func checkboxValue(c *gin.Context, key string) bool {
	raw, present := c.GetPostForm(key)
	if !present {
		return false
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v
	}
	return true
}

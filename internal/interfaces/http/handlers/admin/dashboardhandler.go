// Package admin provides HTTP handlers for the data steward screens.
package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

// DashboardHandler handles the admin dashboard endpoint.
type DashboardHandler struct {
	dashboardUC dashboardUseCase
	logger      logger.Interface
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC dashboardUseCase, log logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      log,
	}
}

// GetDashboard handles GET /admin/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	resp, err := h.dashboardUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get admin dashboard", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RenderPage(c, resp)
}

package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "github.com/tosinajy/carrier-code-verify/internal/interfaces/http/handlers/admin"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the data steward screens.
type AdminRouteConfig struct {
	DashboardHandler     *adminHandlers.DashboardHandler
	PayerHandler         *adminHandlers.PayerHandler
	NaicHandler          *adminHandlers.NaicHandler
	ApprovalHandler      *adminHandlers.ApprovalHandler
	UserHandler          *adminHandlers.UserHandler
	SettingHandler       *adminHandlers.SettingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	CSRF                 gin.HandlerFunc
}

// SetupAdminRoutes configures the /admin area. Every route requires a session,
// a matching casbin policy and a CSRF token on mutations.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequirePolicy(), cfg.CSRF)
	{
		admin.GET("/dashboard", cfg.DashboardHandler.GetDashboard)

		admin.GET("/payers", cfg.PayerHandler.List)
		admin.POST("/payers/import", cfg.PayerHandler.Import)
		admin.POST("/payers/single", cfg.PayerHandler.AddSingle)
		admin.POST("/assign_naic", cfg.PayerHandler.AssignNaic)

		admin.GET("/naic", cfg.NaicHandler.List)
		admin.POST("/naic", cfg.NaicHandler.Import)
		admin.POST("/naic/single", cfg.NaicHandler.AddSingle)

		admin.GET("/approvals", cfg.ApprovalHandler.List)
		admin.POST("/approvals/process", cfg.ApprovalHandler.Process)

		admin.GET("/users", cfg.UserHandler.List)

		admin.GET("/config", cfg.SettingHandler.GetConfig)
		admin.POST("/config", cfg.SettingHandler.UpdateConfig)
	}
}

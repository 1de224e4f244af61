package http

import (
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/config"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/middleware"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/routes"
)

func (c *Container) setupPublicRoutes() {
	routes.SetupPublicRoutes(c.engine, &routes.PublicRouteConfig{
		DirectoryHandler:     c.hdlrs.directoryHandler,
		APIHandler:           c.hdlrs.apiHandler,
		AuthMiddleware:       c.mws.auth,
		PermissionMiddleware: c.mws.permission,
		RateLimiter:          c.mws.apiLimit,
	})
}

func (c *Container) setupAuthRoutes() {
	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.mws.auth,
		RateLimiter:    c.mws.apiLimit,
	})
}

// setupAdminRoutes mounts the steward screens. The CSRF cookie lives as long
// as a session.
func (c *Container) setupAdminRoutes(cfg *config.Config) {
	csrfMaxAge := cfg.Auth.JWT.SessionHours * 3600

	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		DashboardHandler:     c.hdlrs.dashboardHandler,
		PayerHandler:         c.hdlrs.payerHandler,
		NaicHandler:          c.hdlrs.naicHandler,
		ApprovalHandler:      c.hdlrs.approvalHandler,
		UserHandler:          c.hdlrs.userHandler,
		SettingHandler:       c.hdlrs.settingHandler,
		AuthMiddleware:       c.mws.auth,
		PermissionMiddleware: c.mws.permission,
		CSRF:                 middleware.CSRF(cfg.Auth.Cookie, csrfMaxAge),
	})
}

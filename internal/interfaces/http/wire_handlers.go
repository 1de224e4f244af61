package http

import (
	"time"

	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/ratelimit"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/handlers"
	adminHandlers "github.com/tosinajy/carrier-code-verify/internal/interfaces/http/handlers/admin"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/middleware"
)

// Public API budget per client IP.
var apiRateRule = ratelimit.Rule{Limit: 120, Window: time.Minute}

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// Public
	directoryHandler *handlers.DirectoryHandler
	apiHandler       *handlers.APIHandler
	healthHandler    *handlers.HealthHandler

	// Auth
	authHandler *handlers.AuthHandler

	// Admin
	dashboardHandler *adminHandlers.DashboardHandler
	payerHandler     *adminHandlers.PayerHandler
	naicHandler      *adminHandlers.NaicHandler
	approvalHandler  *adminHandlers.ApprovalHandler
	userHandler      *adminHandlers.UserHandler
	settingHandler   *adminHandlers.SettingHandler
}

// middlewares holds the configured middleware instances.
type middlewares struct {
	auth       *middleware.AuthMiddleware
	permission *middleware.PermissionMiddleware
	apiLimit   *middleware.RateLimiter
}

func (c *Container) initHandlers() error {
	u := c.ucs
	maxUpload := int64(c.cfg.Import.MaxUploadMB) << 20

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	c.hdlrs = &allHandlers{
		directoryHandler: handlers.NewDirectoryHandler(u.landingPage, u.listDirectory, u.carrierDetail, c.log),
		apiHandler:       handlers.NewAPIHandler(u.search, u.autocomplete, u.lookupNaic, c.log),
		healthHandler:    handlers.NewHealthHandler(sqlDB, c.log),

		authHandler: handlers.NewAuthHandler(u.login, u.logout, c.cfg.Auth.Cookie, c.log),

		dashboardHandler: adminHandlers.NewDashboardHandler(u.dashboard, c.log),
		payerHandler:     adminHandlers.NewPayerHandler(u.listPayers, u.importPayers, u.addPayer, u.assignNaic, maxUpload, c.log),
		naicHandler:      adminHandlers.NewNaicHandler(u.listNaic, u.importNaic, u.addNaic, maxUpload, c.log),
		approvalHandler:  adminHandlers.NewApprovalHandler(u.listPending, u.processApprovals, c.log),
		userHandler:      adminHandlers.NewUserHandler(u.listUsers, c.log),
		settingHandler:   adminHandlers.NewSettingHandler(u.getDisplay, u.updateDisplay, c.log),
	}
	return nil
}

// initMiddlewares builds the request guards. Failed logins are throttled by
// the login use case itself; the per-IP budget here covers request volume.
func (c *Container) initMiddlewares() {
	c.mws = &middlewares{
		auth:       middleware.NewAuthMiddleware(c.ucs.validateSession, c.log),
		permission: middleware.NewPermissionMiddleware(c.svcs.enforcer, c.log),
		apiLimit:   middleware.NewRateLimiter(c.svcs.limiter, "api", apiRateRule, c.log),
	}
}

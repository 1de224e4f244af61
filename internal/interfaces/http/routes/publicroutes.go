// Package routes groups route registration by audience.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/handlers"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for the directory pages and JSON API.
type PublicRouteConfig struct {
	DirectoryHandler     *handlers.DirectoryHandler
	APIHandler           *handlers.APIHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
}

// SetupPublicRoutes configures the public directory and the search API.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	engine.GET("/", cfg.DirectoryHandler.Landing)
	engine.GET("/directory", cfg.DirectoryHandler.Directory)
	engine.GET("/carrier/:id", cfg.DirectoryHandler.CarrierDetail)

	api := engine.Group("/api")
	{
		api.GET("/search", cfg.RateLimiter.Limit(), cfg.APIHandler.Search)
		api.GET("/autocomplete", cfg.RateLimiter.Limit(), cfg.APIHandler.Autocomplete)

		// Used by the assignment form; any signed-in role with a policy may call it.
		api.GET("/naic-lookup",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PermissionMiddleware.RequirePolicy(),
			cfg.APIHandler.NaicLookup,
		)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/handlers"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for the admin session routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures login and logout.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	engine.GET("/admin/login", cfg.AuthHandler.LoginPage)
	engine.POST("/admin/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
	engine.GET("/admin/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
}

// Package http wires the gin engine: dependency container, middleware chain
// and route table.
package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/config"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/middleware"

	_ "github.com/tosinajy/carrier-code-verify/docs"
)

// SetupRoutes installs the global middleware chain and every route group.
func (c *Container) SetupRoutes(cfg *config.Config) {
	c.engine.MaxMultipartMemory = int64(cfg.Import.MaxUploadMB) << 20

	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.DisplayFlags(c.ucs.displayFlags))

	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	if cfg.Server.Mode != gin.ReleaseMode {
		c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	c.setupPublicRoutes()
	c.setupAuthRoutes()
	c.setupAdminRoutes(cfg)
}

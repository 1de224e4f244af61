package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/config"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/scheduler"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and background jobs. It wires everything together and provides
// Shutdown() for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers
	mws   *middlewares

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initRepositories()

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initUseCases()

	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}

	c.initMiddlewares()

	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

// Engine returns the Gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartBackground starts the scheduled maintenance jobs.
func (c *Container) StartBackground() {
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// Shutdown stops background jobs and releases the Redis connection. The
// database is owned by the caller.
func (c *Container) Shutdown(ctx context.Context) {
	done := make(chan struct{})

	go func() {
		defer close(done)

		if c.schedulerManager != nil {
			if err := c.schedulerManager.Stop(); err != nil {
				c.log.Warnw("failed to stop scheduler", "error", err)
			}
		}

		if c.redis != nil {
			if err := c.redis.Close(); err != nil {
				c.log.Warnw("failed to close redis client", "error", err)
			}
		}
	}()

	select {
	case <-done:
		c.log.Infow("container shut down")
	case <-ctx.Done():
		c.log.Warnw("container shutdown timed out", "error", ctx.Err())
	}
}

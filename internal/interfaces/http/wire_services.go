package http

import (
	"context"
	"fmt"
	"time"

	"github.com/tosinajy/carrier-code-verify/internal/application/directory/usecases"
	mappingUsecases "github.com/tosinajy/carrier-code-verify/internal/application/mapping/usecases"
	reconciliationUsecases "github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/auth"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/cache"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/email"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/permission"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/ratelimit"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/scheduler"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	"github.com/tosinajy/carrier-code-verify/internal/shared/services/markdown"
)

const redisConnectTimeout = 5 * time.Second

// services holds infrastructure services shared by several use cases.
type services struct {
	hasher   *auth.BcryptPasswordHasher
	jwt      *auth.JWTService
	enforcer *permission.Enforcer
	txMgr    *db.TransactionManager
	markdown markdown.MarkdownService

	// Optional services stay nil interfaces when their backend is off.
	notifier          mappingUsecases.PendingNotifier
	limiter           ratelimit.RateLimiter
	suggestionCache   usecases.SuggestionCache
	suggestionInvalid reconciliationUsecases.SuggestionInvalidator
}

// initInfrastructure builds the services the use cases depend on. Redis is
// optional: when it is disabled or down, rate limiting and the suggestion
// cache are switched off rather than failing startup.
func (c *Container) initInfrastructure() error {
	c.svcs = &services{
		hasher:   auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost),
		jwt:      auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.ExpMinutes),
		txMgr:    db.NewTransactionManager(c.db),
		markdown: markdown.NewMarkdownService(),
	}

	enforcer, err := permission.NewEnforcer(c.db, c.cfg.Auth.RBACModelPath, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.SeedDefaultPolicies(enforcer); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.svcs.enforcer = enforcer

	c.initEmail()
	c.initRedis()

	return nil
}

func (c *Container) initEmail() {
	if !c.cfg.Email.Enabled {
		c.log.Infow("email notifications disabled")
		return
	}

	sender := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
	})
	c.svcs.notifier = email.NewPendingApprovalNotifier(sender, c.cfg.Email.AdminReceiver, c.log)
	c.log.Infow("email notifications enabled", "smtp_host", c.cfg.Email.SMTPHost, "receiver", c.cfg.Email.AdminReceiver)
}

func (c *Container) initRedis() {
	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, rate limiting and suggestion cache are off")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, c.cfg.Redis)
	if err != nil {
		c.log.Warnw("redis unavailable, continuing without it", "addr", c.cfg.Redis.GetAddr(), "error", err)
		return
	}
	c.redis = client

	suggestions := cache.NewRedisSuggestionCache(client, time.Duration(c.cfg.Redis.SuggestionTTLSeconds)*time.Second)
	c.svcs.limiter = ratelimit.NewRedisRateLimiter(client, "ccv:ratelimit")
	c.svcs.suggestionCache = suggestions
	c.svcs.suggestionInvalid = suggestions

	c.log.Infow("redis connected", "addr", c.cfg.Redis.GetAddr())
}

// initScheduler registers background maintenance jobs. It does not start them.
func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterSessionCleanupJob(c.ucs.cleanupSessions, scheduler.DefaultSessionCleanupInterval); err != nil {
		return fmt.Errorf("failed to register session cleanup job: %w", err)
	}
	c.schedulerManager = manager
	return nil
}

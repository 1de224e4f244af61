package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/ratelimit"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

// RateLimiter throttles a route group per client IP. A nil limiter, or one
// that errors, lets every request through.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	rule    ratelimit.Rule
	scope   string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, rule ratelimit.Rule, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		rule:    rule,
		scope:   scope,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiter == nil {
			c.Next()
			return
		}

		allowed, err := rl.limiter.Allow(c.Request.Context(), rl.scope+":"+c.ClientIP(), rl.rule)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable", "error", err, "scope", rl.scope)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

package ratelimit

import (
	"context"
	"time"
)

// Rule allows Limit hits per sliding Window.
type Rule struct {
	Limit  int
	Window time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, rule Rule) (bool, error)
	Reset(ctx context.Context, key string) error
}

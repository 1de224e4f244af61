package usecases

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// SuggestionInvalidator drops cached autocomplete answers after the candidate set changes.
type SuggestionInvalidator interface {
	Invalidate(ctx context.Context) error
}

func invalidateSuggestions(ctx context.Context, cache SuggestionInvalidator, log logger.Interface) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warnw("failed to invalidate suggestion cache", "error", err)
	}
}

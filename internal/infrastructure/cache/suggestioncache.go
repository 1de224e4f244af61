package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
)

const suggestionKeyPrefix = "ccv:suggest:"

type cachedSuggestion struct {
	Label    string `json:"label"`
	Category string `json:"category"`
}

// RedisSuggestionCache stores autocomplete answers keyed by the lower-cased query.
type RedisSuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSuggestionCache(client *redis.Client, ttl time.Duration) *RedisSuggestionCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisSuggestionCache{client: client, ttl: ttl}
}

// Get reports found=false on a miss.
func (c *RedisSuggestionCache) Get(ctx context.Context, term string) ([]directory.Suggestion, bool, error) {
	raw, err := c.client.Get(ctx, suggestionKey(term)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read suggestions: %w", err)
	}

	var items []cachedSuggestion
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("failed to decode suggestions: %w", err)
	}

	out := make([]directory.Suggestion, 0, len(items))
	for _, it := range items {
		out = append(out, directory.Suggestion{Label: it.Label, Category: it.Category})
	}
	return out, true, nil
}

func (c *RedisSuggestionCache) Set(ctx context.Context, term string, suggestions []directory.Suggestion) error {
	items := make([]cachedSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		items = append(items, cachedSuggestion{Label: s.Label, Category: s.Category})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode suggestions: %w", err)
	}
	if err := c.client.Set(ctx, suggestionKey(term), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write suggestions: %w", err)
	}
	return nil
}

// Invalidate drops every cached answer; imports and adds change the candidate set.
func (c *RedisSuggestionCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, suggestionKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan suggestion keys: %w", err)
	}
	return nil
}

func suggestionKey(term string) string {
	return suggestionKeyPrefix + strings.ToLower(strings.TrimSpace(term))
}

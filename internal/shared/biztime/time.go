// Package biztime centralises clock access. Storage is always UTC; the business
// timezone only affects how timestamps are rendered to people.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	mu          sync.RWMutex
	bizLocation = time.UTC
	clock       = time.Now
)

// Init sets the display timezone. Empty means UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return bizLocation
}

func NowUTC() time.Time {
	mu.RLock()
	now := clock
	mu.RUnlock()
	return now().UTC()
}

// SetClock replaces the time source and returns a restore func. Tests only.
func SetClock(fn func() time.Time) func() {
	mu.Lock()
	prev := clock
	clock = fn
	mu.Unlock()
	return func() {
		mu.Lock()
		clock = prev
		mu.Unlock()
	}
}

func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

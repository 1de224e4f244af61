// Package audit records the append-only history of carrier changes.
package audit

import (
	"context"
	"time"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// Entry is one audit_log row. Changes holds field -> value pairs.
type Entry struct {
	ID        uint
	CarrierID uint
	Action    string
	ChangedBy string
	ChangedAt time.Time
	Changes   map[string]any
}

// Repository defines the interface for audit persistence
type Repository interface {
	Append(ctx context.Context, entries ...*Entry) error

	// ListByCarrier returns the newest entries first.
	ListByCarrier(ctx context.Context, carrierID uint, limit int) ([]*Entry, error)
}

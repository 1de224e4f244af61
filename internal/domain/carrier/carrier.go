// Package carrier holds the authoritative payer to NAIC links produced by approvals.
package carrier

import (
	"context"
	"errors"
	"time"
)

var ErrCarrierNotFound = errors.New("carrier not found")

// Carrier binds one approved payer to one NAIC company.
type Carrier struct {
	ID        uint
	PayerID   uint
	NaicID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository defines the interface for carrier persistence
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Carrier, error)
	GetByPayerID(ctx context.Context, payerID uint) (*Carrier, error)

	// UpsertForPayer creates the payer's carrier or moves it to naicID.
	// previousNaicID is nil when the carrier was created.
	UpsertForPayer(ctx context.Context, payerID, naicID uint) (c *Carrier, previousNaicID *uint, err error)

	// Count counts public carriers, those whose payer is approved.
	Count(ctx context.Context) (int64, error)
}

// Package payer models billing payers and their NAIC mapping workflow.
package payer

import (
	"strings"
)

// DefaultClearingHouse tags payers added by hand.
const DefaultClearingHouse = "Manual"

// Payer is a billing entity identified by (code, clearing house).
type Payer struct {
	id            uint
	code          string
	name          string
	clearingHouse string
	naicID        *uint
	status        MappingStatus
}

// NewPayer creates an unassigned payer with no NAIC link.
func NewPayer(code, name, clearingHouse string) (*Payer, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	clearingHouse = strings.TrimSpace(clearingHouse)
	if code == "" {
		return nil, ErrPayerCodeRequired
	}
	if name == "" {
		return nil, ErrPayerNameRequired
	}
	if clearingHouse == "" {
		clearingHouse = DefaultClearingHouse
	}
	return &Payer{
		code:          code,
		name:          name,
		clearingHouse: clearingHouse,
		status:        StatusUnassigned,
	}, nil
}

// ReconstructPayer reconstructs a Payer from persistence layer
func ReconstructPayer(id uint, code, name, clearingHouse string, naicID *uint, status MappingStatus) *Payer {
	return &Payer{
		id:            id,
		code:          code,
		name:          name,
		clearingHouse: clearingHouse,
		naicID:        naicID,
		status:        status,
	}
}

func (p *Payer) ID() uint              { return p.id }
func (p *Payer) Code() string          { return p.code }
func (p *Payer) Name() string          { return p.name }
func (p *Payer) ClearingHouse() string { return p.clearingHouse }
func (p *Payer) NaicID() *uint         { return p.naicID }
func (p *Payer) Status() MappingStatus { return p.status }
func (p *Payer) HasNaic() bool         { return p.naicID != nil }

// SetID sets the payer ID (only for persistence layer use)
func (p *Payer) SetID(id uint) {
	p.id = id
}

// Rename overwrites the display name. Imports call this for every re-seen key.
func (p *Payer) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrPayerNameRequired
	}
	p.name = name
	return nil
}

// AssignNaic links the payer to naicID, or clears the link when naicID is nil,
// and sends the mapping back for approval from any prior state.
func (p *Payer) AssignNaic(naicID *uint) {
	if naicID != nil {
		id := *naicID
		p.naicID = &id
	} else {
		p.naicID = nil
	}
	p.status = StatusPending
}

// CanApprove reports whether approval may proceed; a payer without NAIC stays where it is.
func (p *Payer) CanApprove() bool {
	return p.naicID != nil
}

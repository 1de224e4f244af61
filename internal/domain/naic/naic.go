// Package naic holds the canonical NAIC company registry.
package naic

import (
	"strings"
)

// Record is one NAIC registered company, keyed by its cocode.
type Record struct {
	id          uint
	cocode      string
	companyName string
}

func NewRecord(cocode, companyName string) (*Record, error) {
	cocode = strings.TrimSpace(cocode)
	companyName = strings.TrimSpace(companyName)
	if cocode == "" {
		return nil, ErrCocodeRequired
	}
	if companyName == "" {
		return nil, ErrCompanyNameRequired
	}
	return &Record{cocode: cocode, companyName: companyName}, nil
}

// ReconstructRecord reconstructs a Record from persistence layer
func ReconstructRecord(id uint, cocode, companyName string) *Record {
	return &Record{id: id, cocode: cocode, companyName: companyName}
}

func (r *Record) ID() uint            { return r.id }
func (r *Record) Cocode() string      { return r.cocode }
func (r *Record) CompanyName() string { return r.companyName }

// SetID sets the record ID (only for persistence layer use)
func (r *Record) SetID(id uint) {
	r.id = id
}

// Rename replaces the company name; the cocode never changes.
func (r *Record) Rename(companyName string) error {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return ErrCompanyNameRequired
	}
	r.companyName = companyName
	return nil
}

// DisplayName renders "Company (cocode)" as used by the lookup widget.
func (r *Record) DisplayName() string {
	return r.companyName + " (" + r.cocode + ")"
}

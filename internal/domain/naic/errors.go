package naic

import "errors"

var (
	ErrNaicNotFound        = errors.New("naic record not found")
	ErrCocodeRequired      = errors.New("cocode is required")
	ErrCompanyNameRequired = errors.New("company name is required")
)

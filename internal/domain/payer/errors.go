package payer

import "errors"

var (
	ErrPayerNotFound     = errors.New("payer not found")
	ErrPayerCodeRequired = errors.New("payer code is required")
	ErrPayerNameRequired = errors.New("payer name is required")
)

package valueobjects

import (
	"errors"
	"unicode"
)

const (
	MinPasswordLength = 8
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password must not exceed 72 bytes (bcrypt limitation)")
	ErrPasswordNoLetter = errors.New("password must contain at least one letter")
	ErrPasswordNoNumber = errors.New("password must contain at least one number")
)

// Password is a steward password that passed the account policy. It only
// lives long enough to be hashed.
type Password struct {
	value string
}

func NewPassword(plain string) (*Password, error) {
	switch {
	case len(plain) < MinPasswordLength:
		return nil, ErrPasswordTooShort
	case len(plain) > MaxPasswordLength:
		return nil, ErrPasswordTooLong
	}

	var letter, number bool
	for _, r := range plain {
		letter = letter || unicode.IsLetter(r)
		number = number || unicode.IsNumber(r)
	}
	if !letter {
		return nil, ErrPasswordNoLetter
	}
	if !number {
		return nil, ErrPasswordNoNumber
	}

	return &Password{value: plain}, nil
}

func (p *Password) String() string {
	return p.value
}

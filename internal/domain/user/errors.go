package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

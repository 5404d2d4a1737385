package core

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrSessionExpired       = errors.New("session expired")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountExists        = errors.New("account already exists")
	ErrForbidden            = errors.New("permission denied")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

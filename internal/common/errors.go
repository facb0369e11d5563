// Package common defines shared constants and sentinel errors used across
// client and server layers of wodtracker. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Client session errors.
	ErrNoActiveSession = errors.New("no active session found")
	// ErrSuperseded marks an operation whose completion was discarded
	// because a newer operation (or a logout) took over the session.
	ErrSuperseded = errors.New("operation superseded")
)

// Package apperr defines sentinel errors shared across layers.
package apperr

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")
	ErrNotConfigured      = errors.New("not configured")
	ErrUnsupported        = errors.New("operation not supported")
	ErrAlreadyExists      = errors.New("already exists")
)

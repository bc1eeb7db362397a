// Package services holds the domain operations behind the HTTP handlers.
// Every operation takes the acting user explicitly and returns one of the
// sentinel errors below (or a ValidationError) so handlers can map
// failures to HTTP statuses without seeing storage internals.
package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries per-field messages for malformed form input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

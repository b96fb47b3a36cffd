package services

import "errors"

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyTitle is returned when a create or edit supplies a title that
	// trims to empty. The store itself declines silently; the service names
	// the condition so handlers can answer with the right status.
	ErrEmptyTitle = errors.New("title is required")

	// ErrInvalidCredentials deliberately does not say which of email or
	// password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("authentication required")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrWeatherUnavailable  = fmt.Errorf("weather API not configured: %w", ErrUpstreamUnavailable)
	ErrComboIntegrity      = errors.New("combo totals do not reconcile")
	ErrConcurrencyConflict = errors.New("concurrent update conflict")
)

// ValidationError carries the offending field and unwraps to ErrValidation.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

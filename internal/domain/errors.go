package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Failure classes. Adapters wrap these with context and the HTTP layer maps
// each one to a status code.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("unavailable")
)

// Field messages shared by the entity validators.
const (
	MsgRequired = "is required"
	MsgBlank    = "must not be blank"
)

// ValidationError maps field names to what is wrong with them. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError rejects a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists the fields in name order, e.g.
// "validation error: city: is required; pincode: must be exactly 6 digits".
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	sep := ": "
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		b.WriteString(sep)
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(e.Fields[field])
		sep = "; "
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

package dashboard

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a well-formed id matches no record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned when an id is syntactically invalid for the
	// active store. Distinct from ErrNotFound: handlers map it to 400.
	ErrInvalidID = errors.New("invalid id")
)

// FieldError describes a single violation of the field-requirement table.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + " " + f.Error
	}
	return strings.Join(msgs, "; ")
}

package types

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name does not belong to the record kind.
var ErrUnknownField = errors.New("unknown field")

// UnknownFieldError names the record kind and the rejected field.
type UnknownFieldError struct {
	Kind  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: unknown field %q", e.Kind, e.Field)
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}

// InvalidValueError is returned when a value cannot be stored in a typed field.
type InvalidValueError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Field, e.Reason)
}

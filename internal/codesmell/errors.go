package codesmell

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is matched by every MissingFieldError.
	ErrMissingField = errors.New("missing field")
	// ErrFieldType is matched by every FieldTypeError.
	ErrFieldType = errors.New("unexpected field type")
	// ErrUnknownPriority is matched by every UnknownPriorityError.
	ErrUnknownPriority = errors.New("unknown priority")
)

// MissingFieldError reports a required key absent from a raw record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// FieldTypeError reports a key whose JSON value has the wrong type.
type FieldTypeError struct {
	Field string
	Want  string
	Got   any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %T", e.Field, e.Want, e.Got)
}

func (e *FieldTypeError) Unwrap() error {
	return ErrFieldType
}

// UnknownPriorityError is returned by GetPriority for names outside the enumeration.
type UnknownPriorityError struct {
	Name string
}

func (e *UnknownPriorityError) Error() string {
	return fmt.Sprintf("unknown priority %q", e.Name)
}

func (e *UnknownPriorityError) Unwrap() error {
	return ErrUnknownPriority
}

package gomap

import "fmt"

// MarshalError represents an error during conversion of a Go value to
// IR.
type MarshalError struct {
	FieldPath string // field path (e.g. "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during conversion of IR to a Go
// value.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports an object entry a struct requires but the
// document does not have.
type MissingFieldError struct {
	FieldPath string
	Field     string
}

func (e *MissingFieldError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("missing field %q at %s", e.Field, e.FieldPath)
	}
	return fmt.Sprintf("missing field %q", e.Field)
}

// FieldTypeError reports a document value whose variant does not fit
// the Go field it maps to.
type FieldTypeError struct {
	FieldPath string
	Expected  string
	Actual    string
}

func (e *FieldTypeError) Error() string {
	msg := fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	if e.FieldPath != "" {
		return fmt.Sprintf("field type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("field type error: %s", msg)
}

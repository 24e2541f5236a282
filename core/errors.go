package core

import "github.com/pkg/errors"

// FieldError describes a problem with one named input field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned for input that fails validation. Err may be nil when only Fields are set.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

// NewFieldValidationError is a shorthand for a validation error on a single field.
func NewFieldValidationError(field, msg string) error {
	return NewValidationError(nil, FieldError{Field: field, Error: msg})
}

func (ve ValidationError) Error() string {
	switch {
	case ve.Err != nil:
		return ve.Err.Error()
	case len(ve.Fields) > 0:
		return ve.Fields[0].Field + ": " + ve.Fields[0].Error
	default:
		return "validation failed"
	}
}

func (ve ValidationError) Unwrap() error { return ve.Err }

// FieldMessage returns the first message recorded for field.
func (ve ValidationError) FieldMessage(field string) (string, bool) {
	for _, f := range ve.Fields {
		if f.Field == field {
			return f.Error, true
		}
	}
	return "", false
}

// IsValidationError reports whether the cause of err is a *ValidationError.
func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// shutdownError asks the server to stop gracefully.
type shutdownError struct {
	reason string
}

func NewShutdownError(reason string) error {
	return &shutdownError{reason: reason}
}

func (s shutdownError) Error() string { return s.reason }

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdownError)
	return ok
}

package errors

import (
	"errors"
	"fmt"
)

// Re-exported standard library helpers
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error extends error with a code.
type Error interface {
	error
	Code() string
	Unwrap() error
}

// FieldError describes one rejected field of a request payload.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// AppError is the application error implementation.
type AppError struct {
	code    string
	message string
	fields  []FieldError
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message returns the client-facing message without the wrapped cause.
func (e *AppError) Message() string {
	return e.message
}

// Fields returns field-level detail for validation failures.
func (e *AppError) Fields() []FieldError {
	return e.fields
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError creates a new application error.
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// NotFound creates a NOT_FOUND error with a client-facing message.
func NotFound(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

// InvalidArgument creates an INVALID_ARGUMENT error without field detail.
func InvalidArgument(message string) *AppError {
	return NewAppError(ErrInvalidArgument, message, nil)
}

// Validation creates an INVALID_ARGUMENT error carrying field detail.
func Validation(fields ...FieldError) *AppError {
	return &AppError{
		code:    ErrInvalidArgument,
		message: "validation failed",
		fields:  fields,
	}
}

// Internal wraps an infrastructure failure.
func Internal(message string, err error) *AppError {
	return NewAppError(ErrInternal, message, err)
}

// Wrap wraps an existing error, keeping the code of an AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return &AppError{code: appErr.Code(), message: message, fields: appErr.fields, err: err}
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf returns the code of err, or ErrInternal for plain errors.
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}

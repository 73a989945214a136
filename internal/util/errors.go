package util

import (
	"errors"
	"fmt"
)

// Error kinds. Every error leaving a service is one of these (possibly wrapped).
var (
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrAuth               = errors.New("invalid credentials")
	ErrAuthRequired       = errors.New("authentication required")
	ErrForbidden          = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrInternal           = errors.New("internal error")
)

// AppError carries a user-facing message next to its kind.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches both the kind and the wrapped cause.
func (e *AppError) Is(target error) bool {
	return target == e.Kind
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(kind error, msg string, err error) *AppError {
	return &AppError{Kind: kind, Message: msg, Err: err}
}

func Validation(msg string) error {
	return newAppError(ErrValidation, msg, nil)
}

func Conflict(msg string) error {
	return newAppError(ErrConflict, msg, nil)
}

func NotFoundError(msg string) error {
	return newAppError(ErrNotFound, msg, nil)
}

func ForbiddenError(msg string) error {
	return newAppError(ErrForbidden, msg, nil)
}

func AuthFailed(msg string) error {
	return newAppError(ErrAuth, msg, nil)
}

func AuthRequired() error {
	return newAppError(ErrAuthRequired, "login required", nil)
}

func Unavailable(msg string, err error) error {
	return newAppError(ErrServiceUnavailable, msg, err)
}

func Internal(err error) error {
	return newAppError(ErrInternal, "Internal server error", err)
}

// MessageOf returns the user-facing text of err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

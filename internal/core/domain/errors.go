package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrKindNetwork    ErrorKind = "network"
	ErrKindValidation ErrorKind = "validation"
	ErrKindAuth       ErrorKind = "auth"
	ErrKindForbidden  ErrorKind = "forbidden"
	ErrKindNotFound   ErrorKind = "not_found"
	ErrKindConflict   ErrorKind = "conflict"
	ErrKindServer     ErrorKind = "server"
)

// BackendError is the only error shape that crosses the adapter boundary.
// Raw transport and parsing errors are translated into one of the kinds
// above before reaching services or handlers.
type BackendError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend %s: %s", e.Kind, e.Message)
}

func NewBackendError(kind ErrorKind, statusCode int, message string) *BackendError {
	return &BackendError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
	}
}

func KindOf(err error) ErrorKind {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Kind
	}
	return ErrKindServer
}

func IsAuthError(err error) bool {
	return KindOf(err) == ErrKindAuth
}

func IsRetryable(err error) bool {
	kind := KindOf(err)
	return kind == ErrKindNetwork || kind == ErrKindServer
}

package domain

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies a class of failure and the HTTP status it maps to.
type ErrorCode struct {
	name       string
	httpStatus int
}

var (
	ErrorCodeParameterInvalid     = ErrorCode{"PARAMETER_INVALID", http.StatusBadRequest}
	ErrorCodeResourceConflict     = ErrorCode{"RESOURCE_CONFLICT", http.StatusBadRequest}
	ErrorCodeAuthNotAuthenticated = ErrorCode{"AUTH_NOT_AUTHENTICATED", http.StatusUnauthorized}
	ErrorCodeAuthPermissionDenied = ErrorCode{"AUTH_PERMISSION_DENIED", http.StatusForbidden}
	ErrorCodeResourceNotFound     = ErrorCode{"RESOURCE_NOT_FOUND", http.StatusNotFound}
	ErrorCodeInternalProcess      = ErrorCode{"INTERNAL_PROCESS", http.StatusInternalServerError}
)

// DomainError wraps an underlying error with a code and an optional
// client-facing message. The zero value behaves as an internal error.
type DomainError struct {
	code      ErrorCode
	err       error
	clientMsg string
}

type ErrorOption func(*DomainError)

// WithMsg sets the message returned to the client instead of err.Error().
func WithMsg(msg string) ErrorOption {
	return func(e *DomainError) {
		e.clientMsg = msg
	}
}

func NewError(code ErrorCode, err error, opts ...ErrorOption) DomainError {
	e := DomainError{code: code, err: err}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e DomainError) Error() string {
	if e.err == nil {
		return e.Name()
	}
	return fmt.Sprintf("%s: %s", e.Name(), e.err.Error())
}

func (e DomainError) Unwrap() error {
	return e.err
}

func (e DomainError) Name() string {
	if e.code.name == "" {
		return ErrorCodeInternalProcess.name
	}
	return e.code.name
}

func (e DomainError) HTTPStatus() int {
	if e.code.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.code.httpStatus
}

func (e DomainError) ClientMsg() string {
	return e.clientMsg
}

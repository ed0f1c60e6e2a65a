package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidFormat = "INVALID_FORMAT"
	CodeNotFound      = "NOT_FOUND"
	CodeUpstream      = "UPSTREAM_ERROR"
	CodeBadRequest    = "BAD_REQUEST"
	CodeInternal      = "INTERNAL_ERROR"
)

// AppError is the classified failure the lookup core hands to the transport
// layer. HTTPStatus drives the boundary mapping; Err keeps the underlying
// cause for logs without leaking it to callers.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// InvalidFormat rejects input before any network call is made.
func InvalidFormat(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidFormat,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound means every source in the chain was queried and none qualified.
func NotFound(message string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

// Upstream wraps a transport-level failure with the offending source's name
// and the postal code that was being looked up.
func Upstream(source, code string, err error) *AppError {
	return &AppError{
		Code:       CodeUpstream,
		Message:    fmt.Sprintf("%s is unavailable", source),
		HTTPStatus: http.StatusInternalServerError,
		Details: map[string]any{
			"source":      source,
			"postal_code": code,
		},
		Err: err,
	}
}

// UpstreamStatus is Upstream for a non-2xx response with a known status.
func UpstreamStatus(source, code string, status int) *AppError {
	e := Upstream(source, code, fmt.Errorf("unexpected status %d", status))
	e.Details["status"] = status
	return e
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       CodeBadRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// IsNotFound reports whether err is a classified NOT_FOUND failure.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeNotFound
}

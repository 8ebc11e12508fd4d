// Package errors provides domain-specific error types.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for domain errors.
const (
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeNetworkUnavailable  = "NETWORK_UNAVAILABLE"
	ErrCodeServerError         = "SERVER_ERROR"
	ErrCodeProtocolError       = "PROTOCOL_ERROR"
	ErrCodeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeStaleResponse       = "STALE_RESPONSE"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error.
type DomainError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a new timeout error for the given operation.
func NewTimeoutError(operation string, err error) *DomainError {
	return &DomainError{
		Code:       ErrCodeTimeout,
		Message:    fmt.Sprintf("%s timed out", operation),
		HTTPStatus: http.StatusGatewayTimeout,
		Err:        err,
	}
}

// NewNetworkUnavailableError creates an error for a failed connection attempt.
func NewNetworkUnavailableError(operation string, err error) *DomainError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &DomainError{
		Code:       ErrCodeNetworkUnavailable,
		Message:    fmt.Sprintf("%s could not reach the server", operation),
		Details:    details,
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

// NewServerError creates an error for a non-2xx response. The response body
// is preserved in the details so callers can surface backend messages.
func NewServerError(operation string, status int, body string) *DomainError {
	return &DomainError{
		Code:       ErrCodeServerError,
		Message:    fmt.Sprintf("%s failed with status %d", operation, status),
		Details:    body,
		HTTPStatus: status,
	}
}

// NewProtocolError creates an error for a malformed response body.
func NewProtocolError(operation string, err error) *DomainError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &DomainError{
		Code:       ErrCodeProtocolError,
		Message:    fmt.Sprintf("%s returned a malformed response", operation),
		Details:    details,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewUnsupportedFileTypeError creates an error for a file extension outside
// the supported set. Raised before any network round trip.
func NewUnsupportedFileTypeError(filename, extension string) *DomainError {
	return &DomainError{
		Code:       ErrCodeUnsupportedFileType,
		Message:    fmt.Sprintf("unsupported file type %q", extension),
		Details:    filename,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, details string) *DomainError {
	return &DomainError{
		Code:       ErrCodeValidation,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewStaleResponseError marks a response that arrived for a superseded
// request. Never user-visible; callers discard it silently.
func NewStaleResponseError(operation string) *DomainError {
	return &DomainError{
		Code:    ErrCodeStaleResponse,
		Message: fmt.Sprintf("%s response superseded", operation),
	}
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, err error) *DomainError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &DomainError{
		Code:       ErrCodeInternal,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsDomainError checks if the error is a domain error.
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error.
func GetDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// hasCode reports whether err is a domain error with the given code.
func hasCode(err error, code string) bool {
	domainErr, ok := GetDomainError(err)
	return ok && domainErr.Code == code
}

// IsTimeout checks if the error is a timeout error.
func IsTimeout(err error) bool {
	return hasCode(err, ErrCodeTimeout)
}

// IsNetworkUnavailable checks if the error is a network unavailable error.
func IsNetworkUnavailable(err error) bool {
	return hasCode(err, ErrCodeNetworkUnavailable)
}

// IsServerError checks if the error is a server error.
func IsServerError(err error) bool {
	return hasCode(err, ErrCodeServerError)
}

// IsProtocolError checks if the error is a protocol error.
func IsProtocolError(err error) bool {
	return hasCode(err, ErrCodeProtocolError)
}

// IsUnsupportedFileType checks if the error is an unsupported file type error.
func IsUnsupportedFileType(err error) bool {
	return hasCode(err, ErrCodeUnsupportedFileType)
}

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsStaleResponse checks if the error is a stale response marker.
func IsStaleResponse(err error) bool {
	return hasCode(err, ErrCodeStaleResponse)
}

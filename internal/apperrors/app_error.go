package apperrors

import (
	"net/http"
)

// AppError is the error type carried across handler boundaries. Message holds
// an i18n message ID (error.*) whenever a translation exists for it; the
// global error middleware localizes it before responding.
type AppError struct {
	Code    int
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCode creates a generic business error.
func WithCode(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// BusinessError wraps a business rule violation.
func BusinessError(code int, message string) *AppError {
	return WithCode(code, message)
}

// ValidationError wraps a field-level input error. No network call may have
// been attempted when one of these is returned.
func ValidationError(message string) *AppError {
	return WithCode(http.StatusBadRequest, message)
}

// InvalidRequestErrorDefault is the fallback binding error.
func InvalidRequestErrorDefault() *AppError {
	return WithCode(http.StatusBadRequest, "error.invalid_request")
}

// OrchestrationError marks a terminal failure: every provider in the chain
// was exhausted. The per-provider causes are logged, not surfaced.
func OrchestrationError(message string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: message,
		Cause:   cause,
	}
}

// UnauthorizedError gates session-protected routes.
func UnauthorizedError() *AppError {
	return WithCode(http.StatusUnauthorized, "error.unauthorized")
}

// SystemError wraps an internal error.
func SystemError(message string) *AppError {
	return WithCode(http.StatusInternalServerError, message)
}

// SystemErrorDefault is the default internal error.
func SystemErrorDefault() *AppError {
	return WithCode(http.StatusInternalServerError, "error.system")
}

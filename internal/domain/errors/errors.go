package errors

import (
	"fmt"
	"net/http"

	"zephyr/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error carrying a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Validation errors, raised before any network call
	ErrIdentifierRequired = NewBaseError(
		http.StatusBadRequest,
		"IDENTIFIER_REQUIRED",
		"Username or email is required",
		"",
	)

	ErrUsernameRequired = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_REQUIRED",
		"Username is required",
		"",
	)

	ErrEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_REQUIRED",
		"Email is required",
		"",
	)

	ErrEmailInvalid = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_INVALID",
		"Please enter a valid email address",
		"",
	)

	ErrPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_REQUIRED",
		"Password is required",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password must be at least 8 characters",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrInvalidRequest = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST",
		"Invalid request body",
		"",
	)

	// Identifier resolution
	ErrUsernameNotFound = NewBaseError(
		http.StatusNotFound,
		"USERNAME_NOT_FOUND",
		"Username not found",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"Username is already taken",
		"",
	)

	// Session errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Auth session missing!",
		"",
	)

	ErrRecoverySessionRequired = NewBaseError(
		http.StatusUnauthorized,
		"RECOVERY_SESSION_REQUIRED",
		"Password reset link is invalid or has expired",
		"",
	)

	// Identity provider
	ErrNetwork = NewBaseError(
		http.StatusServiceUnavailable,
		"NETWORK_ERROR",
		"Something went wrong. Please try again.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Unknown error occurred",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// PasswordTooShort returns the length rule error for the configured minimum.
func PasswordTooShort(minLength int) *BaseError {
	return ErrPasswordTooShort.WithMessage(fmt.Sprintf("Password must be at least %d characters", minLength))
}

// AuthError is an error reported by the identity provider. Its message is surfaced verbatim.
type AuthError struct {
	Status int
	Code   string
	Name   string
	Msg    string
}

// NewAuthError creates a provider-reported error
func NewAuthError(status int, code, message string) *AuthError {
	return &AuthError{
		Status: status,
		Code:   code,
		Name:   "AuthApiError",
		Msg:    message,
	}
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.Msg
}

// HTTPCode returns the provider status, or 400 when the provider did not send one
func (e *AuthError) HTTPCode() int {
	if e.Status < http.StatusBadRequest || e.Status >= http.StatusInternalServerError {
		return http.StatusBadRequest
	}

	return e.Status
}

// ErrorCode returns the provider error code
func (e *AuthError) ErrorCode() string {
	if e.Code == "" {
		return "AUTH_ERROR"
	}

	return e.Code
}

// Message returns the provider message
func (e *AuthError) Message() string {
	if e.Msg == "" {
		return ErrInternalError.Message()
	}

	return e.Msg
}

// Details returns the provider error name
func (e *AuthError) Details() string {
	return e.Name
}

// NetworkError wraps an identity provider transport failure or timeout
type NetworkError struct {
	err error
}

// NewNetworkError creates a NetworkError around the transport failure
func NewNetworkError(err error) AppError {
	return &NetworkError{err: err}
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return errors.Wrap(e.err, "identity provider unreachable").Error()
}

// Unwrap exposes the transport failure
func (e *NetworkError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *NetworkError) HTTPCode() int {
	return ErrNetwork.HTTPCode()
}

// ErrorCode returns the business error code
func (e *NetworkError) ErrorCode() string {
	return ErrNetwork.ErrorCode()
}

// Message returns the user-friendly error message
func (e *NetworkError) Message() string {
	return ErrNetwork.Message()
}

// Details returns detailed error information
func (e *NetworkError) Details() string {
	return ""
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

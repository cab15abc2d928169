package errors

import (
	"net/http"

	"bulletin/internal/errors"
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
	retryable bool
	kind      *BaseError
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

// newRetryableError creates a base error for transient failures a caller may retry.
func newRetryableError(httpCode int, errorCode, message string) *BaseError {
	e := NewBaseError(httpCode, errorCode, message, "")
	e.retryable = true

	return e
}

// newNotFoundError creates a lookup error that also matches ErrNotFound.
func newNotFoundError(errorCode, message string) *BaseError {
	e := NewBaseError(http.StatusNotFound, errorCode, message, "")
	e.kind = ErrNotFound

	return e
}

// Is reports whether target is the general kind e belongs to.
func (e *BaseError) Is(target error) bool {
	return e.kind != nil && target == e.kind
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

// Retryable reports whether the failure is transient.
func (e *BaseError) Retryable() bool {
	return e.retryable
}

// Predefined error types
var (
	// Token and identity errors
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrUnknownIdentity = NewBaseError(
		http.StatusUnauthorized,
		"UNKNOWN_IDENTITY",
		"Token references an identity that no longer exists",
		"",
	)

	ErrRevokedIdentity = NewBaseError(
		http.StatusUnauthorized,
		"REVOKED_IDENTITY",
		"Token credentials are no longer valid",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrIdentityLookupFailed = newRetryableError(
		http.StatusServiceUnavailable,
		"IDENTITY_LOOKUP_FAILED",
		"Identity store is temporarily unavailable",
	)

	ErrPayloadDecryption = NewBaseError(
		http.StatusUnauthorized,
		"PAYLOAD_DECRYPTION_FAILED",
		"Unable to decrypt payload",
		"",
	)

	// Credential errors
	ErrDuplicateCredential = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CREDENTIAL",
		"An account with this email address already exists.",
		"",
	)

	ErrVerificationFailure = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid user details provided.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Lookup errors
	ErrUserNotFound = newNotFoundError(
		"USER_NOT_FOUND",
		"User not found",
	)

	ErrRoleNotFound = newNotFoundError(
		"ROLE_NOT_FOUND",
		"Role not found",
	)

	ErrPostNotFound = newNotFoundError(
		"POST_NOT_FOUND",
		"Post not found",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests, please try again later",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"User not authorized.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// TokenFailureReason tells apart the ways a presented token can be rejected.
// Callers only see ErrInvalidToken; the reason is kept for logging.
type TokenFailureReason string

const (
	TokenMalformed        TokenFailureReason = "malformed"
	TokenSignatureInvalid TokenFailureReason = "signature_invalid"
	TokenExpired          TokenFailureReason = "expired"
	TokenUndecryptable    TokenFailureReason = "undecryptable"
)

// TokenError is returned when a token fails signature, expiry or payload checks.
// It matches ErrInvalidToken under errors.Is.
type TokenError struct {
	Reason TokenFailureReason
	cause  error
}

// NewTokenError creates a TokenError for the given reason.
func NewTokenError(reason TokenFailureReason, cause error) *TokenError {
	return &TokenError{Reason: reason, cause: cause}
}

func (e *TokenError) Error() string {
	if e.cause == nil {
		return "invalid token: " + string(e.Reason)
	}

	return "invalid token: " + string(e.Reason) + ": " + e.cause.Error()
}

func (e *TokenError) Unwrap() error { return e.cause }
func (e *TokenError) Is(target error) bool { return target == ErrInvalidToken }
func (e *TokenError) HTTPCode() int { return ErrInvalidToken.HTTPCode() }
func (e *TokenError) ErrorCode() string { return ErrInvalidToken.ErrorCode() }
func (e *TokenError) Message() string { return ErrInvalidToken.Message() }
func (e *TokenError) Details() string { return "" }

// UnauthenticatedError is the single failure surfaced by identity resolution.
// The underlying cause stays reachable through errors.Is / errors.As.
type UnauthenticatedError struct {
	cause error
}

// NewUnauthenticatedError wraps cause as an authentication failure.
func NewUnauthenticatedError(cause error) *UnauthenticatedError {
	return &UnauthenticatedError{cause: cause}
}

func (e *UnauthenticatedError) Error() string {
	if e.cause == nil {
		return ErrUnauthenticated.Error()
	}

	return "unauthenticated: " + e.cause.Error()
}

func (e *UnauthenticatedError) Unwrap() error { return e.cause }

func (e *UnauthenticatedError) Is(target error) bool { return target == ErrUnauthenticated }

// Retryable reports whether the cause was a transient store failure rather
// than a deterministic identity failure.
func (e *UnauthenticatedError) Retryable() bool { return IsRetryable(e.cause) }

func (e *UnauthenticatedError) HTTPCode() int {
	if e.Retryable() {
		return http.StatusServiceUnavailable
	}

	return http.StatusUnauthorized
}

func (e *UnauthenticatedError) ErrorCode() string {
	if e.Retryable() {
		return ErrIdentityLookupFailed.ErrorCode()
	}

	return ErrUnauthenticated.ErrorCode()
}

func (e *UnauthenticatedError) Message() string {
	if e.Retryable() {
		return ErrIdentityLookupFailed.Message()
	}

	return ErrUnauthenticated.Message()
}

func (e *UnauthenticatedError) Details() string { return "" }

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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Retryable marks driver failures as transient.
func (e *DatabaseExecuteError) Retryable() bool {
	return true
}

// IsRetryable reports whether any error in err's chain declares itself transient.
func IsRetryable(err error) bool {
	for err != nil {
		if r, ok := err.(interface{ Retryable() bool }); ok && r.Retryable() {
			return true
		}
		err = errors.Unwrap(err)
	}

	return false
}

package shared

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

type ErrorKind string

const (
	KindMissingField         ErrorKind = "MISSING_FIELD"
	KindFieldTooLong         ErrorKind = "FIELD_TOO_LONG"
	KindInvalidFormat        ErrorKind = "INVALID_FORMAT"
	KindTypeMismatch         ErrorKind = "TYPE_MISMATCH"
	KindUnsupportedMediaType ErrorKind = "UNSUPPORTED_MEDIA_TYPE"
	KindPayloadTooLarge      ErrorKind = "PAYLOAD_TOO_LARGE"
	KindOutOfRange           ErrorKind = "OUT_OF_RANGE"
	KindUnavailable          ErrorKind = "UNAVAILABLE"
	KindInvalid              ErrorKind = "INVALID"

	KindConflict  ErrorKind = "CONFLICT"
	KindNotFound  ErrorKind = "NOT_FOUND"
	KindMalformed ErrorKind = "MALFORMED"
	KindUnknown   ErrorKind = "UNKNOWN"
)

// ValidationError describes a problem with caller supplied input. Its message is
// safe to return to the caller.
type ValidationError struct {
	Kind       ErrorKind
	Field      string
	Message    string
	StatusCode int
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(kind ErrorKind, field, message string) *ValidationError {
	return &ValidationError{
		Kind:       kind,
		Field:      field,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewValidationErrorWithStatus is used where the input is fine but a dependency
// needed to act on it is not, e.g. 503 when mail delivery is not configured.
func NewValidationErrorWithStatus(kind ErrorKind, message string, statusCode int) *ValidationError {
	return &ValidationError{
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NewMissingFieldError(field string) *ValidationError {
	return NewValidationError(KindMissingField, field, field+" is required")
}

func NewFieldTooLongError(field, label string, max int) *ValidationError {
	return NewValidationError(KindFieldTooLong, field, fmt.Sprintf("%s must be less than %d characters", label, max))
}

func NewInvalidFormatError(field, message string) *ValidationError {
	return NewValidationError(KindInvalidFormat, field, message)
}

func NewTypeMismatchError(message string) *ValidationError {
	return NewValidationError(KindTypeMismatch, "", message)
}

// RateLimitError is returned once a client has used its quota for the current window.
type RateLimitError struct {
	Message string
	Policy  string
	Limit   int
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return e.Message
}

func (e *RateLimitError) RetryAfter(now time.Time) time.Duration {
	if e.ResetAt.Before(now) {
		return 0
	}
	return e.ResetAt.Sub(now)
}

func NewRateLimitError(policy string, limit int, resetAt time.Time) *RateLimitError {
	return &RateLimitError{
		Message: "Rate limit exceeded. Please try again later.",
		Policy:  policy,
		Limit:   limit,
		ResetAt: resetAt,
	}
}

// StorageError wraps a database failure with the category the storage layer
// recognised it as.
type StorageError struct {
	Kind ErrorKind
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AppError is a handler level error with an explicit status and public message.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
	Data       interface{}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, err error, message string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Err: err}
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, nil, message)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, nil, message)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, nil, message)
}

func NewInternalError(err error, message string) *AppError {
	return NewAppError(http.StatusInternalServerError, err, message)
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// UnexpectedError carries a recovered panic value that was not an error.
type UnexpectedError struct {
	Value interface{}
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected panic: %v", e.Value)
}

// RecoveredError converts a value returned by recover() into an error.
func RecoveredError(v interface{}) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &UnexpectedError{Value: v}
}

package shared

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "rate limit",
			err:     NewRateLimitError("contact", 5, time.Now().Add(time.Minute)),
			status:  http.StatusTooManyRequests,
			message: "Rate limit exceeded. Please try again later.",
		},
		{
			name:    "validation default status",
			err:     NewInvalidFormatError("email", "Invalid email address"),
			status:  http.StatusBadRequest,
			message: "Invalid email address",
		},
		{
			name:    "validation carried status",
			err:     NewValidationErrorWithStatus(KindUnavailable, "Email service is unavailable", http.StatusServiceUnavailable),
			status:  http.StatusServiceUnavailable,
			message: "Email service is unavailable",
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			status:  http.StatusConflict,
			message: MessageRecordExists,
		},
		{
			name:    "wrapped unique violation",
			err:     &StorageError{Kind: KindConflict, Err: &pgconn.PgError{Code: "23505"}},
			status:  http.StatusConflict,
			message: MessageRecordExists,
		},
		{
			name:    "gorm duplicated key",
			err:     gorm.ErrDuplicatedKey,
			status:  http.StatusConflict,
			message: MessageRecordExists,
		},
		{
			name:    "not found",
			err:     fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound),
			status:  http.StatusNotFound,
			message: MessageRecordNotFound,
		},
		{
			name:    "foreign key",
			err:     &pgconn.PgError{Code: "23503"},
			status:  http.StatusBadRequest,
			message: MessageInvalidData,
		},
		{
			name:    "check constraint",
			err:     gorm.ErrCheckConstraintViolated,
			status:  http.StatusBadRequest,
			message: MessageInvalidData,
		},
		{
			name:    "query building",
			err:     gorm.ErrInvalidField,
			status:  http.StatusBadRequest,
			message: MessageInvalidFormat,
		},
		{
			name:    "other storage error",
			err:     &pgconn.PgError{Code: "53300", Message: "too many connections"},
			status:  http.StatusInternalServerError,
			message: MessageDatabaseFailed,
		},
		{
			name:    "unknown storage kind",
			err:     &StorageError{Kind: KindUnknown, Err: errors.New("connection reset")},
			status:  http.StatusInternalServerError,
			message: MessageDatabaseFailed,
		},
		{
			name:    "app error",
			err:     NewNotFoundError("Course not found"),
			status:  http.StatusNotFound,
			message: "Course not found",
		},
		{
			name:    "recovered panic value",
			err:     RecoveredError("boom"),
			status:  http.StatusInternalServerError,
			message: MessageUnexpectedError,
		},
		{
			name:    "nil",
			err:     nil,
			status:  http.StatusInternalServerError,
			message: MessageUnexpectedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err, false)
			assert.Equal(t, tt.status, got.StatusCode)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestClassifyErrorHidesMessageInProduction(t *testing.T) {
	got := ClassifyError(errors.New("db down"), false)
	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
	assert.Equal(t, MessageInternalError, got.Message)
	assert.NotContains(t, got.Message, "db down")

	body := got.Body()
	assert.False(t, body.Success)
	assert.Equal(t, MessageInternalError, body.Error)
}

func TestClassifyErrorShowsMessageInDevelopment(t *testing.T) {
	got := ClassifyError(errors.New("db down"), true)
	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
	assert.Equal(t, "db down", got.Message)
}

func TestRecoveredErrorKeepsErrors(t *testing.T) {
	original := errors.New("nil map write")
	assert.Same(t, original, RecoveredError(original))
}

func TestRateLimitErrorRetryAfter(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	err := NewRateLimitError("contact", 5, now.Add(90*time.Second))

	assert.Equal(t, 90*time.Second, err.RetryAfter(now))
	assert.Equal(t, time.Duration(0), err.RetryAfter(now.Add(time.Hour)))
}

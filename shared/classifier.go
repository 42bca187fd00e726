package shared

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	MessageRecordExists    = "Record already exists"
	MessageRecordNotFound  = "Record not found"
	MessageInvalidData     = "Invalid data provided"
	MessageDatabaseFailed  = "Database operation failed"
	MessageInvalidFormat   = "Invalid data format"
	MessageInternalError   = "Internal server error"
	MessageUnexpectedError = "An unexpected error occurred"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgNotNullViolation     = "23502"
	pgCheckViolation       = "23514"
	pgInvalidTextRepresent = "22P02"
	pgStringDataTruncation = "22001"
	pgNumericOutOfRange    = "22003"
)

// ClassifiedError is the public face of a failure: a status code and a message
// that never contains driver or stack details outside development mode.
type ClassifiedError struct {
	StatusCode int
	Message    string
}

func (c ClassifiedError) Body() Response {
	return Response{Success: false, Error: c.Message}
}

var malformedQueryErrors = []error{
	gorm.ErrInvalidData,
	gorm.ErrInvalidField,
	gorm.ErrInvalidValue,
	gorm.ErrInvalidValueOfLength,
	gorm.ErrModelValueRequired,
	gorm.ErrModelAccessibleFieldsRequired,
	gorm.ErrPrimaryKeyRequired,
	gorm.ErrUnsupportedRelation,
	gorm.ErrEmptySlice,
	gorm.ErrMissingWhereClause,
	gorm.ErrSubQueryRequired,
	gorm.ErrPreloadNotAllowed,
}

var driverErrors = []error{
	gorm.ErrInvalidTransaction,
	gorm.ErrNotImplemented,
	gorm.ErrUnsupportedDriver,
	gorm.ErrInvalidDB,
	gorm.ErrDryRunModeUnsupported,
	gorm.ErrRegistered,
}

// ClassifyError maps any error raised while handling a request to the status and
// message returned to the caller. The original error is always logged.
func ClassifyError(err error, development bool) ClassifiedError {
	classified := classify(err, development)

	fields := log.Fields{"status_code": classified.StatusCode}
	if err != nil {
		fields["error"] = err.Error()
	}
	entry := log.WithFields(fields)
	if classified.StatusCode >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}

	return classified
}

func classify(err error, development bool) ClassifiedError {
	if err == nil {
		return ClassifiedError{StatusCode: http.StatusInternalServerError, Message: MessageUnexpectedError}
	}

	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return ClassifiedError{StatusCode: http.StatusTooManyRequests, Message: rlErr.Message}
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		status := vErr.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		return ClassifiedError{StatusCode: status, Message: vErr.Message}
	}

	if appErr, ok := GetAppError(err); ok {
		return ClassifiedError{StatusCode: appErr.StatusCode, Message: appErr.Message}
	}

	if classified, ok := classifyStorage(err); ok {
		return classified
	}

	var unexpected *UnexpectedError
	if errors.As(err, &unexpected) {
		return ClassifiedError{StatusCode: http.StatusInternalServerError, Message: MessageUnexpectedError}
	}

	if development {
		return ClassifiedError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	return ClassifiedError{StatusCode: http.StatusInternalServerError, Message: MessageInternalError}
}

func classifyStorage(err error) (ClassifiedError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return conflict(), true
		case pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation:
			return malformed(), true
		case pgInvalidTextRepresent, pgStringDataTruncation, pgNumericOutOfRange:
			return invalidFormat(), true
		default:
			return databaseFailed(), true
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict(), true
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(), true
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return malformed(), true
	}

	for _, target := range malformedQueryErrors {
		if errors.Is(err, target) {
			return invalidFormat(), true
		}
	}
	for _, target := range driverErrors {
		if errors.Is(err, target) {
			return databaseFailed(), true
		}
	}

	var sErr *StorageError
	if errors.As(err, &sErr) {
		switch sErr.Kind {
		case KindConflict:
			return conflict(), true
		case KindNotFound:
			return notFound(), true
		case KindMalformed:
			return malformed(), true
		default:
			return databaseFailed(), true
		}
	}

	return ClassifiedError{}, false
}

func conflict() ClassifiedError {
	return ClassifiedError{StatusCode: http.StatusConflict, Message: MessageRecordExists}
}

func notFound() ClassifiedError {
	return ClassifiedError{StatusCode: http.StatusNotFound, Message: MessageRecordNotFound}
}

func malformed() ClassifiedError {
	return ClassifiedError{StatusCode: http.StatusBadRequest, Message: MessageInvalidData}
}

func invalidFormat() ClassifiedError {
	return ClassifiedError{StatusCode: http.StatusBadRequest, Message: MessageInvalidFormat}
}

func databaseFailed() ClassifiedError {
	return ClassifiedError{StatusCode: http.StatusInternalServerError, Message: MessageDatabaseFailed}
}

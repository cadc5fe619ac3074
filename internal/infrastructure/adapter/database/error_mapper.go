package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes and classes the mapper cares about
const (
	sqlStateUniqueViolation    = "23505"
	sqlStateTooManyConnections = "53300"
	sqlStateAdminShutdown      = "57P01"
	sqlStateCrashShutdown      = "57P02"
	sqlStateCannotConnectNow   = "57P03"

	sqlClassIntegrityConstraint = "23"
	sqlClassInsufficientRes     = "53"
	sqlClassConnectionException = "08"

	// mysqlDuplicateEntry is reported by MySQL and H2 compatible drivers
	mysqlDuplicateEntry = "1062"
)

// SQLStateOf extracts the engine error code from err. pgx errors are checked
// first, then any error exposing SQLState().
func SQLStateOf(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var coded interface{ SQLState() string }
	if errors.As(err, &coded) {
		return coded.SQLState()
	}

	return ""
}

// ErrorMapper maps database errors to domain errors. Every error it returns
// matches exactly one taxonomy sentinel.
type ErrorMapper struct {
	classifier *ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: NewErrorClassifier()}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Already translated
	if domainErr.KindOf(err) != domainErr.KindUnknown {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w: %w", operation, domainErr.ErrNotFound, err)
	case errors.Is(err, sql.ErrTxDone):
		return fmt.Errorf("%s: %w: %w", operation, domainErr.ErrTransactionFailed, err)
	case errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn):
		return fmt.Errorf("%s: %w: %w", operation, domainErr.ErrConnectFailed, err)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return domainErr.NewStoreError(operation, "", err)
	}

	if code := SQLStateOf(err); code != "" {
		return m.mapCode(err, code, operation)
	}

	return m.mapMessage(err, operation)
}

// mapCode translates an engine error code
func (m *ErrorMapper) mapCode(err error, code, operation string) error {
	switch {
	case code == sqlStateUniqueViolation || code == mysqlDuplicateEntry:
		return domainErr.NewConstraintViolationError(operation, code, true, err)
	case strings.HasPrefix(code, sqlClassIntegrityConstraint):
		return domainErr.NewConstraintViolationError(operation, code, false, err)
	case code == sqlStateTooManyConnections || strings.HasPrefix(code, sqlClassInsufficientRes):
		return fmt.Errorf("%s: %w: %w", operation, domainErr.ErrResourceExhausted, err)
	case strings.HasPrefix(code, sqlClassConnectionException),
		code == sqlStateAdminShutdown,
		code == sqlStateCrashShutdown,
		code == sqlStateCannotConnectNow:
		return fmt.Errorf("%s: %w: %w", operation, domainErr.ErrConnectFailed, err)
	default:
		return domainErr.NewStoreError(operation, code, err)
	}
}

// mapMessage translates errors that carry no code
func (m *ErrorMapper) mapMessage(err error, operation string) error {
	switch m.classifier.Classify(err) {
	case DuplicateKeyError:
		return domainErr.NewConstraintViolationError(operation, "", true, err)
	case ConstraintError:
		return domainErr.NewConstraintViolationError(operation, "", false, err)
	case ResourceExhaustedError:
		return fmt.Errorf("%s: %w: %w", operation, domainErr.ErrResourceExhausted, err)
	case ConnectionError:
		return fmt.Errorf("%s: %w: %w", operation, domainErr.ErrConnectFailed, err)
	default:
		return domainErr.NewStoreError(operation, "", err)
	}
}

// MapNotFound maps err like MapError but replaces a generic not-found with notFound
func (m *ErrorMapper) MapNotFound(err error, operation string, notFound error) error {
	mapped := m.MapError(err, operation)
	if mapped != nil && domainErr.KindOf(mapped) == domainErr.KindNotFound && !errors.Is(mapped, notFound) {
		return notFound
	}
	return mapped
}

// IsRetryable reports whether the operation that produced err may succeed if repeated
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domainErr.ErrConnectFailed) || errors.Is(err, domainErr.ErrResourceExhausted) {
		return true
	}
	if domainErr.KindOf(err) != domainErr.KindUnknown && !errors.Is(err, domainErr.ErrStore) {
		return false
	}
	return m.classifier.IsTransientError(err)
}

package database

import (
	"strings"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError      ErrorType = "duplicate_key"
	ConstraintError        ErrorType = "constraint"
	LockError              ErrorType = "lock"
	ResourceExhaustedError ErrorType = "resource_exhausted"
	ConnectionError        ErrorType = "connection"
	TransientError         ErrorType = "transient"
)

// ErrorClassifier classifies database errors from their message. It is the
// fallback for drivers that do not expose an SQLSTATE.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" if nothing matched
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	switch {
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsLockError(err):
		return LockError
	case c.IsResourceExhaustedError(err):
		return ResourceExhaustedError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsTransientError(err):
		return TransientError
	}

	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "violates") ||
		strings.Contains(msg, "check constraint") ||
		strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "not-null constraint") ||
		c.IsDuplicateKeyError(err)
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock wait timeout") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "serialization failure")
}

// IsResourceExhaustedError checks if the server refused a connection for lack of slots
func (c *ErrorClassifier) IsResourceExhaustedError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "too many connections") ||
		strings.Contains(msg, "too many clients") ||
		strings.Contains(msg, "remaining connection slots")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "failed to connect") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed")
}

// IsTransientError checks if an error is transient and the operation can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return c.IsConnectionError(err) ||
		c.IsResourceExhaustedError(err) ||
		c.IsLockError(err) ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "eof")
}

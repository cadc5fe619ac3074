package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInvalidAmount       = 4001
	CodeInsufficientBalance = 4002
	CodeInvalidMemberID     = 4003
	CodeSameMember          = 4004
	CodeTransferRejected    = 4005
	CodeMemberNotFound      = 4040
	CodeNotFound            = 4041
	CodeConstraintViolation = 4090

	// 5xxx - Server errors
	CodeInternalServer    = 5000
	CodeTransactionFailed = 5001
	CodeStore             = 5002
	CodeResourceExhausted = 5030
	CodeConnectFailed     = 5031
)

// Store taxonomy. Every error leaving the data-access boundary matches exactly
// one of these via errors.Is.
var (
	// ErrResourceExhausted is returned when no connection could be borrowed from the pool
	ErrResourceExhausted = errors.New("connection pool exhausted")

	// ErrConnectFailed is returned when the store could not be reached
	ErrConnectFailed = errors.New("could not connect to store")

	// ErrConstraintViolation is returned when a store constraint (unique, foreign key, check) is violated
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrTransactionFailed is returned when commit or rollback itself failed.
	// The state of the data is unknown.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrStore is matched by every unclassified store error
	ErrStore = errors.New("store error")

	// ErrNotFound is returned when a lookup by identifier matched no row
	ErrNotFound = errors.New("resource not found")
)

// Domain errors
var (
	// ErrMemberNotFound is returned when the requested member doesn't exist
	ErrMemberNotFound = fmt.Errorf("member %w", ErrNotFound)

	// ErrInvalidMemberID is returned when a member ID is empty or too long
	ErrInvalidMemberID = errors.New("invalid member ID")

	// ErrInvalidAmount is returned when a transfer amount or initial balance is out of range
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance is returned when a debit would make the balance negative
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrSameMember is returned when source and target of a transfer are the same member
	ErrSameMember = errors.New("cannot transfer to the same member")

	// ErrTransferRejected is returned when the recipient fails validation
	ErrTransferRejected = errors.New("transfer rejected")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// Kind identifies the taxonomy bucket of a store error
type Kind string

const (
	KindUnknown             Kind = ""
	KindResourceExhausted   Kind = "resource_exhausted"
	KindConnectFailed       Kind = "connect_failed"
	KindConstraintViolation Kind = "constraint_violation"
	KindTransactionFailed   Kind = "transaction_failed"
	KindStore               Kind = "store_error"
	KindNotFound            Kind = "not_found"
)

// KindOf returns the taxonomy kind of err. TransactionFailed wins over
// everything else because it may also wrap the original cause.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrTransactionFailed):
		return KindTransactionFailed
	case errors.Is(err, ErrResourceExhausted):
		return KindResourceExhausted
	case errors.Is(err, ErrConnectFailed):
		return KindConnectFailed
	case errors.Is(err, ErrConstraintViolation):
		return KindConstraintViolation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrStore):
		return KindStore
	default:
		return KindUnknown
	}
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrTransactionFailed):
		return CodeTransactionFailed
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidMemberID):
		return CodeInvalidMemberID
	case errors.Is(err, ErrSameMember):
		return CodeSameMember
	case errors.Is(err, ErrTransferRejected):
		return CodeTransferRejected
	case errors.Is(err, ErrMemberNotFound):
		return CodeMemberNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrResourceExhausted):
		return CodeResourceExhausted
	case errors.Is(err, ErrConnectFailed):
		return CodeConnectFailed
	case errors.Is(err, ErrStore):
		return CodeStore
	default:
		return CodeInternalServer
	}
}

// StoreError is an unclassified store failure. It keeps the engine code and
// message for logging.
type StoreError struct {
	Operation string
	Code      string
	Message   string
	Err       error
}

// Error implements the error interface for StoreError
func (e *StoreError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("store error during %s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("store error during %s (code %s): %s", e.Operation, e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStore
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_error",
		"operation":  e.Operation,
		"code":       e.Code,
		"message":    e.Message,
		"error_code": CodeStore,
	}
}

// NewStoreError wraps an unclassified store error
func NewStoreError(operation, code string, err error) error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &StoreError{
		Operation: operation,
		Code:      code,
		Message:   msg,
		Err:       err,
	}
}

// ConstraintViolationError carries the engine code of a constraint violation
type ConstraintViolationError struct {
	Operation string
	Code      string
	Unique    bool
	Err       error
}

// Error implements the error interface
func (e *ConstraintViolationError) Error() string {
	kind := "constraint"
	if e.Unique {
		kind = "unique constraint"
	}
	return fmt.Sprintf("%s violated during %s (code %s): %v", kind, e.Operation, e.Code, e.Err)
}

// Unwrap returns the underlying error
func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConstraintViolation
func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// NewConstraintViolationError creates a constraint violation error
func NewConstraintViolationError(operation, code string, unique bool, err error) error {
	return &ConstraintViolationError{
		Operation: operation,
		Code:      code,
		Unique:    unique,
		Err:       err,
	}
}

// TransactionFailedError is returned when commit or rollback failed. Cause is
// the error the unit of work returned, if any; it stays reachable through
// errors.Is and errors.As.
type TransactionFailedError struct {
	TransactionID string
	Phase         string
	Err           error
	Cause         error
}

// Error implements the error interface
func (e *TransactionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transaction %s failed during %s: %v (cause: %v)", e.TransactionID, e.Phase, e.Err, e.Cause)
	}
	return fmt.Sprintf("transaction %s failed during %s: %v", e.TransactionID, e.Phase, e.Err)
}

// Unwrap returns ErrTransactionFailed, the store error and the original cause
func (e *TransactionFailedError) Unwrap() []error {
	errs := []error{ErrTransactionFailed}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// LogFields returns a map of fields for structured logging
func (e *TransactionFailedError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":     "transaction_failed",
		"transaction_id": e.TransactionID,
		"phase":          e.Phase,
		"error_code":     CodeTransactionFailed,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	if e.Cause != nil {
		fields["cause"] = e.Cause.Error()
	}
	return fields
}

// NewTransactionFailedError creates a transaction failure for the given phase (commit or rollback)
func NewTransactionFailedError(transactionID, phase string, err, cause error) error {
	return &TransactionFailedError{
		TransactionID: transactionID,
		Phase:         phase,
		Err:           err,
		Cause:         cause,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	MemberID string
	Amount   int64
	Balance  int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for member %s: required %d, available %d",
		e.MemberID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"member_id":  e.MemberID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(memberID string, amount, balance int64) error {
	return &InsufficientBalanceError{
		MemberID: memberID,
		Amount:   amount,
		Balance:  balance,
	}
}

// IsConstraintViolation checks if the error is a constraint violation
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}

// IsUniqueViolation checks if the error is a violation of a unique constraint
func IsUniqueViolation(err error) bool {
	var cv *ConstraintViolationError
	return errors.As(err, &cv) && cv.Unique
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTransactionFailed checks if commit or rollback failed
func IsTransactionFailed(err error) bool {
	return errors.Is(err, ErrTransactionFailed)
}

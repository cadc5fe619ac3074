package persistence

import (
	"context"
)

// Tx is the view a unit of work gets of its transaction
type Tx interface {
	// ID returns the transaction identifier used in logs
	ID() string

	// ReadOnly reports whether the transaction was started read-only
	ReadOnly() bool

	// Members returns a member repository bound to the transaction's connection
	Members() MemberRepository

	// SetRollbackOnly marks the transaction so that it can only roll back
	SetRollbackOnly()

	// RollbackOnly reports whether SetRollbackOnly was called
	RollbackOnly() bool
}

// UnitOfWorkFunc is the business work executed inside a transaction.
// Returning an error rolls the transaction back.
type UnitOfWorkFunc func(ctx context.Context, tx Tx) error

// Transactor runs units of work inside a transaction boundary
type Transactor interface {
	// Run executes work in a transaction with default options. If ctx already
	// carries an active transaction, work joins it instead.
	//
	// Possible errors:
	// - ErrResourceExhausted: If no connection could be borrowed in time
	// - ErrConnectFailed: If the store could not be reached
	// - ErrTransactionFailed: If commit or rollback failed, or the transaction was marked rollback-only
	// - any error returned by work
	Run(ctx context.Context, work UnitOfWorkFunc) error

	// RunWithOptions executes work in a transaction started with opts
	RunWithOptions(ctx context.Context, opts TxOptions, work UnitOfWorkFunc) error
}

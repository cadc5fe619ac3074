package persistence

import (
	"context"
	"fmt"
	"strings"
)

// IsolationLevel is the isolation requested for a transaction
type IsolationLevel int

const (
	// IsolationDefault leaves the isolation level to the store
	IsolationDefault IsolationLevel = iota
	IsolationReadCommitted
	IsolationRepeatableRead
	IsolationSerializable
)

// String returns the SQL name of the isolation level
func (l IsolationLevel) String() string {
	switch l {
	case IsolationReadCommitted:
		return "READ COMMITTED"
	case IsolationRepeatableRead:
		return "REPEATABLE READ"
	case IsolationSerializable:
		return "SERIALIZABLE"
	default:
		return "DEFAULT"
	}
}

// ParseIsolationLevel converts a config value such as "read_committed" to an IsolationLevel
func ParseIsolationLevel(value string) (IsolationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "default":
		return IsolationDefault, nil
	case "read_committed":
		return IsolationReadCommitted, nil
	case "repeatable_read":
		return IsolationRepeatableRead, nil
	case "serializable":
		return IsolationSerializable, nil
	default:
		return IsolationDefault, fmt.Errorf("unknown isolation level %q", value)
	}
}

// TxOptions are applied when auto-commit is switched off on a connection
type TxOptions struct {
	ReadOnly  bool
	Isolation IsolationLevel
}

// Conn is a live session with the store. It belongs to the pool unless a
// transaction has borrowed it, in which case it is used by that transaction only.
type Conn interface {
	// ID identifies the handle for logging and double-release detection
	ID() string

	// AutoCommit reports whether every statement commits on its own
	AutoCommit() bool

	// SetAutoCommit switches auto-commit mode. Disabling it starts a
	// transaction using opts (nil means defaults); enabling it ends any
	// transaction still open without committing.
	SetAutoCommit(ctx context.Context, enabled bool, opts *TxOptions) error

	// Commit makes every change since auto-commit was disabled durable
	Commit(ctx context.Context) error

	// Rollback discards every change since auto-commit was disabled
	Rollback(ctx context.Context) error
}

// ConnectionPool is the upstream source of connections
type ConnectionPool interface {
	// Acquire borrows a connection, blocking until one is free or ctx is done
	Acquire(ctx context.Context) (Conn, error)

	// Release hands a connection back. The pool may close it instead of
	// reusing it.
	Release(conn Conn) error
}

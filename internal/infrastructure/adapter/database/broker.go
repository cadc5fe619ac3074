package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	domainErr "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txContextKey contextKey = "tx_context"

// BrokerStats is a snapshot of broker activity
type BrokerStats struct {
	Borrowed        int    `json:"borrowed"`
	Acquired        uint64 `json:"acquired"`
	Released        uint64 `json:"released"`
	AcquireFailures uint64 `json:"acquireFailures"`
	DoubleReleases  uint64 `json:"doubleReleases"`
	RestoreFailures uint64 `json:"restoreFailures"`
}

// ConnectionBroker lends connections from the pool to transactions and makes
// sure each one goes back exactly once, in the auto-commit mode it was lent in.
type ConnectionBroker struct {
	pool        persistence.ConnectionPool
	errorMapper *ErrorMapper
	logger      coreport.Logger

	mu       sync.Mutex
	borrowed map[string]bool // connection ID -> auto-commit observed at acquisition

	acquired        atomic.Uint64
	released        atomic.Uint64
	acquireFailures atomic.Uint64
	doubleReleases  atomic.Uint64
	restoreFailures atomic.Uint64
}

// NewConnectionBroker creates a broker over pool
func NewConnectionBroker(pool persistence.ConnectionPool, errorMapper *ErrorMapper, logger coreport.Logger) *ConnectionBroker {
	return &ConnectionBroker{
		pool:        pool,
		errorMapper: errorMapper,
		logger:      logger,
		borrowed:    make(map[string]bool),
	}
}

// Acquire borrows a connection from the pool.
//
// Possible errors:
// - ErrResourceExhausted: If the pool had no free connection before the deadline
// - ErrConnectFailed: If the store could not be reached
func (b *ConnectionBroker) Acquire(ctx context.Context) (persistence.Conn, error) {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		b.acquireFailures.Add(1)
		mapped := b.mapAcquireError(err)
		b.logger.Warn("Failed to acquire connection", map[string]any{
			"error": mapped.Error(),
			"kind":  string(domainErr.KindOf(mapped)),
		})
		return nil, mapped
	}

	b.mu.Lock()
	b.borrowed[conn.ID()] = conn.AutoCommit()
	b.mu.Unlock()
	b.acquired.Add(1)

	b.logger.Debug("Connection acquired", map[string]any{
		"connection_id": conn.ID(),
	})

	return conn, nil
}

// Release restores the connection's auto-commit mode and returns it to the
// pool. Releasing a connection that is not borrowed is a logged no-op.
func (b *ConnectionBroker) Release(ctx context.Context, conn persistence.Conn) error {
	if conn == nil {
		return nil
	}

	b.mu.Lock()
	autoCommit, ok := b.borrowed[conn.ID()]
	delete(b.borrowed, conn.ID())
	b.mu.Unlock()

	if !ok {
		b.doubleReleases.Add(1)
		b.logger.Warn("Connection already released", map[string]any{
			"connection_id": conn.ID(),
		})
		return nil
	}

	if conn.AutoCommit() != autoCommit {
		// A connection that cannot be restored is closed by the pool rather than reused
		if err := conn.SetAutoCommit(ctx, autoCommit, nil); err != nil {
			b.restoreFailures.Add(1)
			b.logger.Error("Failed to restore auto-commit mode", map[string]any{
				"connection_id": conn.ID(),
				"auto_commit":   autoCommit,
				"error":         err.Error(),
			})
		}
	}

	b.released.Add(1)
	if err := b.pool.Release(conn); err != nil {
		b.logger.Error("Failed to return connection to pool", map[string]any{
			"connection_id": conn.ID(),
			"error":         err.Error(),
		})
		return b.errorMapper.MapError(err, "release connection")
	}

	b.logger.Debug("Connection released", map[string]any{
		"connection_id": conn.ID(),
	})

	return nil
}

// BindToContext returns a context carrying tx so that nested transaction
// boundaries under it reuse the same connection
func (b *ConnectionBroker) BindToContext(ctx context.Context, tx *TxContext) context.Context {
	return context.WithValue(ctx, txContextKey, tx)
}

// Lookup returns the active transaction bound to ctx, if any
func (b *ConnectionBroker) Lookup(ctx context.Context) (*TxContext, bool) {
	tx, ok := ctx.Value(txContextKey).(*TxContext)
	if !ok || tx == nil || !tx.Active() {
		return nil, false
	}
	return tx, true
}

// Stats returns a snapshot of the broker counters
func (b *ConnectionBroker) Stats() BrokerStats {
	b.mu.Lock()
	borrowed := len(b.borrowed)
	b.mu.Unlock()

	return BrokerStats{
		Borrowed:        borrowed,
		Acquired:        b.acquired.Load(),
		Released:        b.released.Load(),
		AcquireFailures: b.acquireFailures.Load(),
		DoubleReleases:  b.doubleReleases.Load(),
		RestoreFailures: b.restoreFailures.Load(),
	}
}

// mapAcquireError folds every acquisition failure into ResourceExhausted or ConnectFailed
func (b *ConnectionBroker) mapAcquireError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, domainErr.ErrResourceExhausted) {
		return fmt.Errorf("acquire connection: %w: %w", domainErr.ErrResourceExhausted, err)
	}

	mapped := b.errorMapper.MapError(err, "acquire connection")
	switch domainErr.KindOf(mapped) {
	case domainErr.KindResourceExhausted, domainErr.KindConnectFailed:
		return mapped
	default:
		return fmt.Errorf("acquire connection: %w: %w", domainErr.ErrConnectFailed, err)
	}
}

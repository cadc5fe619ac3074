package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"
	"time"

	domainErr "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// errAutoCommitEnabled is returned by Commit and Rollback outside a transaction
var errAutoCommitEnabled = errors.New("connection is in auto-commit mode")

// GormConn is a connection that gorm statements can be executed on
type GormConn interface {
	persistence.Conn

	// ConnPool returns the open transaction, or the raw connection when
	// auto-commit is on
	ConnPool(ctx context.Context) (gorm.ConnPool, error)
}

// SQLPool lends dedicated connections out of a database/sql pool
type SQLPool struct {
	db             *sql.DB
	acquireTimeout time.Duration
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewSQLPool creates a pool over db. A zero acquireTimeout waits as long as ctx allows.
func NewSQLPool(db *sql.DB, acquireTimeout time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *SQLPool {
	return &SQLPool{
		db:             db,
		acquireTimeout: acquireTimeout,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Acquire takes a connection out of the pool, waiting at most the acquire timeout
func (p *SQLPool) Acquire(ctx context.Context) (persistence.Conn, error) {
	acquireCtx, cancel := p.timeProvider.WithTimeout(ctx, coreport.Duration(p.acquireTimeout))
	defer cancel()

	raw, err := p.db.Conn(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("no connection available within %s: %w: %w", p.acquireTimeout, domainErr.ErrResourceExhausted, err)
		}
		return nil, err
	}

	return &SQLConn{
		id:         uuid.NewString(),
		conn:       raw,
		autoCommit: true,
	}, nil
}

// Release returns the connection to the database/sql pool. A connection
// with an open transaction or a failed mode switch is closed instead.
func (p *SQLPool) Release(conn persistence.Conn) error {
	sc, ok := conn.(*SQLConn)
	if !ok {
		return fmt.Errorf("release: unexpected connection type %T", conn)
	}
	return sc.close(p.logger)
}

// Stats returns the database/sql pool statistics
func (p *SQLPool) Stats() sql.DBStats {
	return p.db.Stats()
}

// SQLConn is a dedicated *sql.Conn. With auto-commit off, statements run in
// a *sql.Tx that is started lazily after each commit or rollback.
type SQLConn struct {
	id   string
	conn *sql.Conn

	mu         sync.Mutex
	tx         *sql.Tx
	autoCommit bool
	opts       *sql.TxOptions
	discard    bool
}

// ID returns the handle identifier
func (c *SQLConn) ID() string {
	return c.id
}

// AutoCommit reports whether every statement commits on its own
func (c *SQLConn) AutoCommit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoCommit
}

// SetAutoCommit switches the mode. Disabling starts a transaction right away.
func (c *SQLConn) SetAutoCommit(ctx context.Context, enabled bool, opts *persistence.TxOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if enabled {
		if c.autoCommit {
			return nil
		}
		if err := c.endTx(); err != nil {
			c.discard = true
			return err
		}
		c.autoCommit = true
		c.opts = nil
		return nil
	}

	if !c.autoCommit && c.tx != nil {
		return nil
	}
	c.opts = toSQLTxOptions(opts)
	if err := c.beginTx(ctx); err != nil {
		return err
	}
	c.autoCommit = false
	return nil
}

// Commit commits the open transaction
func (c *SQLConn) Commit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.autoCommit {
		return errAutoCommitEnabled
	}
	if c.tx == nil {
		return nil
	}

	err := c.tx.Commit()
	c.tx = nil
	return err
}

// Rollback rolls the open transaction back
func (c *SQLConn) Rollback(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.autoCommit {
		return errAutoCommitEnabled
	}
	return c.endTx()
}

// ConnPool returns where statements should be executed right now
func (c *SQLConn) ConnPool(ctx context.Context) (gorm.ConnPool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.autoCommit {
		return c.conn, nil
	}
	if c.tx == nil {
		if err := c.beginTx(ctx); err != nil {
			return nil, err
		}
	}
	return c.tx, nil
}

// beginTx starts a transaction whose lifetime is not tied to ctx. The
// coordinator decides when it ends.
func (c *SQLConn) beginTx(ctx context.Context) error {
	tx, err := c.conn.BeginTx(context.WithoutCancel(ctx), c.opts)
	if err != nil {
		return err
	}
	c.tx = tx
	return nil
}

// endTx rolls back the open transaction, if any. A transaction the driver
// already ended counts as rolled back.
func (c *SQLConn) endTx() error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Rollback()
	c.tx = nil
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func (c *SQLConn) close(logger coreport.Logger) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tx != nil {
		logger.Warn("Connection released with an open transaction, rolling back", map[string]any{
			"connection_id": c.id,
		})
		if err := c.endTx(); err != nil {
			c.discard = true
		}
	}

	if c.discard {
		// Returning ErrBadConn from Raw makes database/sql drop the connection
		err := c.conn.Raw(func(any) error { return driver.ErrBadConn })
		if errors.Is(err, driver.ErrBadConn) {
			return nil
		}
		return err
	}

	return c.conn.Close()
}

func toSQLTxOptions(opts *persistence.TxOptions) *sql.TxOptions {
	if opts == nil {
		return nil
	}

	level := sql.LevelDefault
	switch opts.Isolation {
	case persistence.IsolationReadCommitted:
		level = sql.LevelReadCommitted
	case persistence.IsolationRepeatableRead:
		level = sql.LevelRepeatableRead
	case persistence.IsolationSerializable:
		level = sql.LevelSerializable
	}

	return &sql.TxOptions{Isolation: level, ReadOnly: opts.ReadOnly}
}

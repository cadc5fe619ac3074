package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	domainErr "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// TxState is the lifecycle state of a transaction
type TxState int

const (
	TxIdle TxState = iota
	TxStarted
	TxCommitted
	TxRolledBack
	// TxFailed means commit or rollback returned an error and the outcome is unknown
	TxFailed
)

// String returns the name of the state
func (s TxState) String() string {
	switch s {
	case TxIdle:
		return "idle"
	case TxStarted:
		return "started"
	case TxCommitted:
		return "committed"
	case TxRolledBack:
		return "rolled_back"
	case TxFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// errRollbackOnly is returned when the work succeeded but a joined unit of work failed
var errRollbackOnly = fmt.Errorf("%w: transaction marked rollback-only", domainErr.ErrTransactionFailed)

// RepositoryFactory builds repositories that run on a given connection
type RepositoryFactory interface {
	Members(conn persistence.Conn) persistence.MemberRepository
}

// TxContext is one logical transaction bound to one borrowed connection
type TxContext struct {
	id                string
	conn              persistence.Conn
	opts              persistence.TxOptions
	autoCommitRestore bool
	members           persistence.MemberRepository
	startedAt         time.Time

	mu           sync.Mutex
	state        TxState
	rollbackOnly bool
}

// ID returns the transaction identifier
func (t *TxContext) ID() string {
	return t.id
}

// ReadOnly reports whether the transaction was started read-only
func (t *TxContext) ReadOnly() bool {
	return t.opts.ReadOnly
}

// Members returns the member repository bound to this transaction
func (t *TxContext) Members() persistence.MemberRepository {
	return t.members
}

// Conn returns the borrowed connection
func (t *TxContext) Conn() persistence.Conn {
	return t.conn
}

// AutoCommitRestore is the auto-commit mode the connection had when it was borrowed
func (t *TxContext) AutoCommitRestore() bool {
	return t.autoCommitRestore
}

// SetRollbackOnly marks the transaction so that it can only roll back
func (t *TxContext) SetRollbackOnly() {
	t.mu.Lock()
	t.rollbackOnly = true
	t.mu.Unlock()
}

// RollbackOnly reports whether the transaction is marked rollback-only
func (t *TxContext) RollbackOnly() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rollbackOnly
}

// State returns the current lifecycle state
func (t *TxContext) State() TxState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Active reports whether the transaction is started and not yet completed
func (t *TxContext) Active() bool {
	return t.State() == TxStarted
}

func (t *TxContext) setState(state TxState) {
	t.mu.Lock()
	t.state = state
	t.mu.Unlock()
}

// checkActive fails repository access once the transaction has completed
func (t *TxContext) checkActive() error {
	if state := t.State(); state != TxStarted {
		return fmt.Errorf("%w: transaction %s is %s", domainErr.ErrTransactionFailed, t.id, state)
	}
	return nil
}

// TransactionCoordinator runs units of work inside a transaction on a
// connection borrowed from the broker. Each invocation commits or rolls back
// exactly once and releases its connection exactly once.
type TransactionCoordinator struct {
	broker       *ConnectionBroker
	repositories RepositoryFactory
	errorMapper  *ErrorMapper
	metrics      *MetricsCollector
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewTransactionCoordinator creates a coordinator
func NewTransactionCoordinator(
	broker *ConnectionBroker,
	repositories RepositoryFactory,
	errorMapper *ErrorMapper,
	metrics *MetricsCollector,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *TransactionCoordinator {
	return &TransactionCoordinator{
		broker:       broker,
		repositories: repositories,
		errorMapper:  errorMapper,
		metrics:      metrics,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Run executes work in a read-write transaction with the store's default isolation
func (c *TransactionCoordinator) Run(ctx context.Context, work persistence.UnitOfWorkFunc) error {
	return c.RunWithOptions(ctx, persistence.TxOptions{}, work)
}

// RunWithOptions executes work in a transaction started with opts. If ctx
// already carries an active transaction, work joins it and opts are ignored.
func (c *TransactionCoordinator) RunWithOptions(ctx context.Context, opts persistence.TxOptions, work persistence.UnitOfWorkFunc) error {
	if outer, ok := c.broker.Lookup(ctx); ok {
		return c.join(ctx, outer, work)
	}

	tx, err := c.begin(ctx, opts)
	if err != nil {
		return err
	}

	// Cleanup must complete even when ctx is already canceled
	cleanupCtx := context.WithoutCancel(ctx)

	defer func() {
		if r := recover(); r != nil {
			_ = c.rollback(cleanupCtx, tx, fmt.Errorf("panic in unit of work: %v", r))
			c.release(cleanupCtx, tx)
			panic(r)
		}
	}()

	workErr := work(c.broker.BindToContext(ctx, tx), tx)
	if workErr == nil && ctx.Err() != nil {
		workErr = ctx.Err()
	}
	if workErr == nil && tx.RollbackOnly() {
		workErr = errRollbackOnly
	}

	if workErr != nil {
		err = c.rollback(cleanupCtx, tx, workErr)
	} else {
		err = c.commit(cleanupCtx, tx)
	}
	c.release(cleanupCtx, tx)

	return err
}

// join runs work inside an already active transaction. Failure marks the
// outer transaction rollback-only; the outer boundary decides the outcome.
func (c *TransactionCoordinator) join(ctx context.Context, outer *TxContext, work persistence.UnitOfWorkFunc) error {
	c.metrics.RecordJoin()
	c.logger.Debug("Joining active transaction", map[string]any{
		"transaction_id": outer.ID(),
	})

	if err := work(ctx, outer); err != nil {
		outer.SetRollbackOnly()
		c.logger.Debug("Joined unit of work failed, transaction marked rollback-only", map[string]any{
			"transaction_id": outer.ID(),
			"error":          err.Error(),
		})
		return err
	}
	return nil
}

// begin borrows a connection and switches auto-commit off
func (c *TransactionCoordinator) begin(ctx context.Context, opts persistence.TxOptions) (*TxContext, error) {
	conn, err := c.broker.Acquire(ctx)
	if err != nil {
		c.metrics.RecordBeginFailure()
		return nil, err
	}

	tx := &TxContext{
		id:                uuid.NewString(),
		conn:              conn,
		opts:              opts,
		autoCommitRestore: conn.AutoCommit(),
		startedAt:         c.timeProvider.Now(),
		state:             TxIdle,
	}

	if err := conn.SetAutoCommit(ctx, false, &opts); err != nil {
		c.metrics.RecordBeginFailure()
		mapped := c.beginError(err)
		c.logger.Error("Failed to begin transaction", map[string]any{
			"transaction_id": tx.id,
			"connection_id":  conn.ID(),
			"error":          err.Error(),
		})
		if relErr := c.broker.Release(context.WithoutCancel(ctx), conn); relErr != nil {
			c.logger.Error("Failed to release connection after begin failure", map[string]any{
				"transaction_id": tx.id,
				"error":          relErr.Error(),
				"cause":          mapped.Error(),
			})
		}
		return nil, mapped
	}

	tx.members = &guardedMemberRepository{tx: tx, next: c.repositories.Members(conn)}
	tx.setState(TxStarted)
	c.metrics.RecordBegin()

	c.logger.Debug("Transaction started", map[string]any{
		"transaction_id": tx.id,
		"connection_id":  conn.ID(),
		"read_only":      opts.ReadOnly,
		"isolation":      opts.Isolation.String(),
	})

	return tx, nil
}

// beginError maps a failure to disable auto-commit. Anything that is not a
// connectivity problem stays a store error.
func (c *TransactionCoordinator) beginError(err error) error {
	mapped := c.errorMapper.MapError(err, "begin transaction")
	if errors.Is(mapped, domainErr.ErrConnectFailed) || errors.Is(mapped, domainErr.ErrStore) {
		return mapped
	}
	return domainErr.NewStoreError("begin transaction", SQLStateOf(err), err)
}

func (c *TransactionCoordinator) commit(ctx context.Context, tx *TxContext) error {
	elapsed := c.timeProvider.Since(tx.startedAt).Std()

	if err := tx.conn.Commit(ctx); err != nil {
		tx.setState(TxFailed)
		c.metrics.RecordCommitFailure(tx.id, elapsed)
		c.logger.Error("Failed to commit transaction", map[string]any{
			"transaction_id": tx.id,
			"connection_id":  tx.conn.ID(),
			"error":          err.Error(),
		})
		return domainErr.NewTransactionFailedError(tx.id, "commit", err, nil)
	}

	tx.setState(TxCommitted)
	c.metrics.RecordCommit(tx.id, elapsed)
	c.logger.Debug("Transaction committed", map[string]any{
		"transaction_id": tx.id,
		"duration_ms":    elapsed.Milliseconds(),
	})
	return nil
}

// rollback discards the transaction and returns cause, or a
// TransactionFailedError wrapping cause if the rollback itself failed
func (c *TransactionCoordinator) rollback(ctx context.Context, tx *TxContext, cause error) error {
	elapsed := c.timeProvider.Since(tx.startedAt).Std()

	if err := tx.conn.Rollback(ctx); err != nil {
		tx.setState(TxFailed)
		c.metrics.RecordRollback(tx.id, elapsed, true)
		c.logger.Error("Failed to roll back transaction", map[string]any{
			"transaction_id": tx.id,
			"connection_id":  tx.conn.ID(),
			"error":          err.Error(),
			"cause":          cause.Error(),
		})
		return domainErr.NewTransactionFailedError(tx.id, "rollback", err, cause)
	}

	tx.setState(TxRolledBack)
	c.metrics.RecordRollback(tx.id, elapsed, false)
	c.logger.Debug("Transaction rolled back", map[string]any{
		"transaction_id": tx.id,
		"cause":          cause.Error(),
	})
	return cause
}

func (c *TransactionCoordinator) release(ctx context.Context, tx *TxContext) {
	if err := c.broker.Release(ctx, tx.conn); err != nil {
		c.logger.Error("Failed to release connection", map[string]any{
			"transaction_id": tx.id,
			"connection_id":  tx.conn.ID(),
			"error":          err.Error(),
		})
	}
}

// guardedMemberRepository rejects access once its transaction has completed
type guardedMemberRepository struct {
	tx   *TxContext
	next persistence.MemberRepository
}

func (r *guardedMemberRepository) Save(ctx context.Context, member *entity.Member) error {
	if err := r.tx.checkActive(); err != nil {
		return err
	}
	return r.next.Save(ctx, member)
}

func (r *guardedMemberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	if err := r.tx.checkActive(); err != nil {
		return nil, err
	}
	return r.next.FindByID(ctx, id)
}

func (r *guardedMemberRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Member, error) {
	if err := r.tx.checkActive(); err != nil {
		return nil, err
	}
	return r.next.FindByIDForUpdate(ctx, id)
}

func (r *guardedMemberRepository) Update(ctx context.Context, id string, money int64) error {
	if err := r.tx.checkActive(); err != nil {
		return err
	}
	return r.next.Update(ctx, id, money)
}

func (r *guardedMemberRepository) Delete(ctx context.Context, id string) error {
	if err := r.tx.checkActive(); err != nil {
		return err
	}
	return r.next.Delete(ctx, id)
}

// failingMemberRepository fails every call with the same error
type failingMemberRepository struct {
	err error
}

// NewFailingMemberRepository returns a repository whose every call fails with
// err. Factories hand it out for connections they cannot run statements on.
func NewFailingMemberRepository(err error) persistence.MemberRepository {
	return &failingMemberRepository{err: err}
}

func (r *failingMemberRepository) Save(context.Context, *entity.Member) error { return r.err }

func (r *failingMemberRepository) FindByID(context.Context, string) (*entity.Member, error) {
	return nil, r.err
}

func (r *failingMemberRepository) FindByIDForUpdate(context.Context, string) (*entity.Member, error) {
	return nil, r.err
}

func (r *failingMemberRepository) Update(context.Context, string, int64) error { return r.err }

func (r *failingMemberRepository) Delete(context.Context, string) error { return r.err }

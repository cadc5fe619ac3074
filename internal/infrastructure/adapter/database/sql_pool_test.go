package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErr "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/logger"
	timeAdapter "github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/time"
)

func newMockPool(t *testing.T, acquireTimeout time.Duration) (*SQLPool, *sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLPool(db, acquireTimeout, timeAdapter.NewRealTimeProvider(), logger.NewNoopLogger()), db, mock
}

func acquireSQLConn(t *testing.T, pool *SQLPool) *SQLConn {
	t.Helper()
	conn, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	return conn.(*SQLConn)
}

func TestSQLConnTransactionLifecycle(t *testing.T) {
	ctx := context.Background()
	pool, _, mock := newMockPool(t, time.Second)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	conn := acquireSQLConn(t, pool)
	assert.True(t, conn.AutoCommit())
	assert.NotEmpty(t, conn.ID())

	require.NoError(t, conn.SetAutoCommit(ctx, false, &persistence.TxOptions{Isolation: persistence.IsolationReadCommitted}))
	assert.False(t, conn.AutoCommit())

	first, err := conn.ConnPool(ctx)
	require.NoError(t, err)
	assert.IsType(t, &sql.Tx{}, first)
	require.NoError(t, conn.Commit(ctx))

	// The next statement after a commit starts a new transaction
	second, err := conn.ConnPool(ctx)
	require.NoError(t, err)
	assert.IsType(t, &sql.Tx{}, second)
	require.NoError(t, conn.Rollback(ctx))

	require.NoError(t, conn.SetAutoCommit(ctx, true, nil))
	raw, err := conn.ConnPool(ctx)
	require.NoError(t, err)
	assert.IsType(t, &sql.Conn{}, raw)

	require.NoError(t, pool.Release(conn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLConnAutoCommitRejectsCommit(t *testing.T) {
	pool, _, _ := newMockPool(t, time.Second)
	conn := acquireSQLConn(t, pool)

	assert.ErrorIs(t, conn.Commit(context.Background()), errAutoCommitEnabled)
	assert.ErrorIs(t, conn.Rollback(context.Background()), errAutoCommitEnabled)
	require.NoError(t, pool.Release(conn))
}

func TestSQLConnBeginFailure(t *testing.T) {
	pool, _, mock := newMockPool(t, time.Second)
	mock.ExpectBegin().WillReturnError(errors.New("connection reset by peer"))

	conn := acquireSQLConn(t, pool)
	err := conn.SetAutoCommit(context.Background(), false, nil)

	assert.Error(t, err)
	assert.True(t, conn.AutoCommit(), "mode unchanged after a failed begin")
	require.NoError(t, pool.Release(conn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLPoolReleaseRollsBackOpenTransaction(t *testing.T) {
	pool, _, mock := newMockPool(t, time.Second)
	mock.ExpectBegin()
	mock.ExpectRollback()

	conn := acquireSQLConn(t, pool)
	require.NoError(t, conn.SetAutoCommit(context.Background(), false, nil))

	require.NoError(t, pool.Release(conn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLPoolDiscardsConnectionAfterFailedRollback(t *testing.T) {
	pool, db, mock := newMockPool(t, time.Second)
	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("server closed the connection unexpectedly"))

	conn := acquireSQLConn(t, pool)
	require.NoError(t, conn.SetAutoCommit(context.Background(), false, nil))

	require.NoError(t, pool.Release(conn))
	assert.Equal(t, 0, db.Stats().OpenConnections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLPoolAcquireTimeout(t *testing.T) {
	pool, db, _ := newMockPool(t, 20*time.Millisecond)
	db.SetMaxOpenConns(1)

	held := acquireSQLConn(t, pool)

	_, err := pool.Acquire(context.Background())
	assert.ErrorIs(t, err, domainErr.ErrResourceExhausted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, pool.Release(held))
}

func TestSQLPoolReleaseForeignConnection(t *testing.T) {
	pool, _, _ := newMockPool(t, time.Second)
	assert.Error(t, pool.Release(&foreignConn{}))
}

type foreignConn struct{ persistence.Conn }

func TestToSQLTxOptions(t *testing.T) {
	assert.Nil(t, toSQLTxOptions(nil))

	tests := []struct {
		level    persistence.IsolationLevel
		expected sql.IsolationLevel
	}{
		{persistence.IsolationDefault, sql.LevelDefault},
		{persistence.IsolationReadCommitted, sql.LevelReadCommitted},
		{persistence.IsolationRepeatableRead, sql.LevelRepeatableRead},
		{persistence.IsolationSerializable, sql.LevelSerializable},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			opts := toSQLTxOptions(&persistence.TxOptions{ReadOnly: true, Isolation: tt.level})
			assert.Equal(t, &sql.TxOptions{Isolation: tt.expected, ReadOnly: true}, opts)
		})
	}
}

package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/logger"
	timeAdapter "github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/time"
)

func newTestStore(capacity int) *Store {
	return NewStore(capacity, core.Duration(50*time.Millisecond), timeAdapter.NewRealTimeProvider(), logger.NewNoopLogger())
}

func acquire(t *testing.T, store *Store) *Conn {
	t.Helper()
	conn, err := store.Acquire(context.Background())
	require.NoError(t, err)
	return conn.(*Conn)
}

func repoFor(conn *Conn) persistence.MemberRepository {
	return NewFactory(database.NewErrorMapper(), logger.NewNoopLogger()).Members(conn)
}

func TestStagedWritesStayPrivateUntilCommit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(2)
	store.Seed("memberA", 10000)

	writer := acquire(t, store)
	reader := acquire(t, store)
	require.NoError(t, writer.SetAutoCommit(ctx, false, nil))

	require.NoError(t, repoFor(writer).Update(ctx, "memberA", 8000))

	own, err := repoFor(writer).FindByID(ctx, "memberA")
	require.NoError(t, err)
	assert.Equal(t, int64(8000), own.Money())

	other, err := repoFor(reader).FindByID(ctx, "memberA")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), other.Money())

	require.NoError(t, writer.Commit(ctx))

	other, err = repoFor(reader).FindByID(ctx, "memberA")
	require.NoError(t, err)
	assert.Equal(t, int64(8000), other.Money())
}

func TestRollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(1)
	store.Seed("memberA", 10000)

	conn := acquire(t, store)
	require.NoError(t, conn.SetAutoCommit(ctx, false, nil))
	repo := repoFor(conn)
	require.NoError(t, repo.Update(ctx, "memberA", 1))
	require.NoError(t, repo.Save(ctx, entity.RestoreMember("memberB", 5)))
	require.NoError(t, conn.Rollback(ctx))

	balance, ok := store.Balance("memberA")
	assert.True(t, ok)
	assert.Equal(t, int64(10000), balance)
	_, ok = store.Balance("memberB")
	assert.False(t, ok)
}

func TestDeleteThenSaveReplacesRow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(1)
	store.Seed("memberA", 10000)

	conn := acquire(t, store)
	require.NoError(t, conn.SetAutoCommit(ctx, false, nil))
	repo := repoFor(conn)
	require.NoError(t, repo.Delete(ctx, "memberA"))
	require.NoError(t, repo.Save(ctx, entity.RestoreMember("memberA", 42)))

	found, err := repo.FindByID(ctx, "memberA")
	require.NoError(t, err)
	assert.Equal(t, int64(42), found.Money())

	require.NoError(t, conn.Commit(ctx))

	balance, ok := store.Balance("memberA")
	assert.True(t, ok)
	assert.Equal(t, int64(42), balance)
}

func TestSaveThenDeleteLeavesNoRow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(1)

	conn := acquire(t, store)
	require.NoError(t, conn.SetAutoCommit(ctx, false, nil))
	repo := repoFor(conn)
	require.NoError(t, repo.Save(ctx, entity.RestoreMember("memberB", 5)))
	require.NoError(t, repo.Delete(ctx, "memberB"))
	require.NoError(t, conn.Commit(ctx))

	_, ok := store.Balance("memberB")
	assert.False(t, ok)
}

func TestAutoCommitWritesImmediately(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(1)
	conn := acquire(t, store)

	require.NoError(t, repoFor(conn).Save(ctx, entity.RestoreMember("memberA", 7)))

	balance, ok := store.Balance("memberA")
	assert.True(t, ok)
	assert.Equal(t, int64(7), balance)
	assert.ErrorIs(t, conn.Commit(ctx), errAutoCommitEnabled)
}

func TestDuplicateInsertIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(1)
	store.Seed("memberA", 1)
	conn := acquire(t, store)

	err := repoFor(conn).Save(ctx, entity.RestoreMember("memberA", 2))

	require.Error(t, err)
	assert.True(t, errs.IsUniqueViolation(err))
	assert.False(t, errors.Is(err, errs.ErrStore))
}

func TestConcurrentInsertFailsAtCommit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(2)
	first := acquire(t, store)
	second := acquire(t, store)
	require.NoError(t, first.SetAutoCommit(ctx, false, nil))
	require.NoError(t, second.SetAutoCommit(ctx, false, nil))

	require.NoError(t, repoFor(first).Save(ctx, entity.RestoreMember("memberA", 1)))
	require.NoError(t, repoFor(second).Save(ctx, entity.RestoreMember("memberA", 2)))

	require.NoError(t, first.Commit(ctx))
	err := second.Commit(ctx)
	assert.Equal(t, codeUniqueViolation, database.SQLStateOf(err))

	balance, _ := store.Balance("memberA")
	assert.Equal(t, int64(1), balance)
}

func TestReadOnlyTransactionRejectsWrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(1)
	store.Seed("memberA", 1)
	conn := acquire(t, store)
	require.NoError(t, conn.SetAutoCommit(ctx, false, &persistence.TxOptions{ReadOnly: true}))

	err := repoFor(conn).Update(ctx, "memberA", 5)

	assert.True(t, errors.Is(err, errs.ErrStore))
	assert.Equal(t, codeReadOnlyViolation, database.SQLStateOf(err))
}

func TestMissingMember(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(1)
	repo := repoFor(acquire(t, store))

	_, err := repo.FindByID(ctx, "ghost")
	assert.ErrorIs(t, err, errs.ErrMemberNotFound)

	assert.ErrorIs(t, repo.Update(ctx, "ghost", 1), errs.ErrMemberNotFound)
	assert.NoError(t, repo.Delete(ctx, "ghost"))
}

func TestRowLockBlocksSecondWriter(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(2)
	store.Seed("memberA", 100)

	holder := acquire(t, store)
	waiter := acquire(t, store)
	require.NoError(t, holder.SetAutoCommit(ctx, false, nil))
	require.NoError(t, waiter.SetAutoCommit(ctx, false, nil))

	_, err := repoFor(holder).FindByIDForUpdate(ctx, "memberA")
	require.NoError(t, err)

	shortCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = repoFor(waiter).FindByIDForUpdate(shortCtx, "memberA")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, holder.Commit(ctx))

	locked, err := repoFor(waiter).FindByIDForUpdate(ctx, "memberA")
	require.NoError(t, err)
	assert.Equal(t, int64(100), locked.Money())
}

func TestPoolExhaustion(t *testing.T) {
	store := newTestStore(1)
	acquire(t, store)

	_, err := store.Acquire(context.Background())

	assert.ErrorIs(t, err, errs.ErrResourceExhausted)
	assert.Equal(t, PoolStats{Capacity: 1, Idle: 0, InUse: 1}, store.Stats())
}

func TestAcquireCanceled(t *testing.T) {
	store := newTestStore(1)
	acquire(t, store)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Acquire(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, errs.ErrResourceExhausted)
}

func TestReleaseReplacesConnectionLeftInTransaction(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(1)
	store.Seed("memberA", 100)

	conn := acquire(t, store)
	require.NoError(t, conn.SetAutoCommit(ctx, false, nil))
	_, err := repoFor(conn).FindByIDForUpdate(ctx, "memberA")
	require.NoError(t, err)
	require.NoError(t, repoFor(conn).Update(ctx, "memberA", 1))

	require.NoError(t, store.Release(conn))

	next := acquire(t, store)
	assert.NotEqual(t, conn.ID(), next.ID())
	assert.True(t, next.AutoCommit())
	assert.Equal(t, 1, store.Stats().Replaced)

	balance, _ := store.Balance("memberA")
	assert.Equal(t, int64(100), balance)

	// The row lock went with the discarded transaction
	require.NoError(t, next.SetAutoCommit(ctx, false, nil))
	_, err = repoFor(next).FindByIDForUpdate(ctx, "memberA")
	assert.NoError(t, err)
}

func TestReleaseRejectsForeignConnection(t *testing.T) {
	store := newTestStore(1)
	other := newTestStore(1)
	conn := acquire(t, other)

	assert.Error(t, store.Release(conn))
	require.NoError(t, other.Release(conn))
	assert.Error(t, other.Release(conn), "second release of the same handle")
}

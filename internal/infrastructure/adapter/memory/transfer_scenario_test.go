package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/usecase/member"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/usecase/transfer"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/logger"
	timeAdapter "github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/time"
)

type scenario struct {
	store       *Store
	broker      *database.ConnectionBroker
	metrics     *database.MetricsCollector
	coordinator *database.TransactionCoordinator
	transfers   *transfer.Service
	members     *member.MemberUseCase
}

func newScenario(capacity int) *scenario {
	log := logger.NewNoopLogger()
	tp := timeAdapter.NewRealTimeProvider()
	mapper := database.NewErrorMapper()

	s := &scenario{store: NewStore(capacity, 0, tp, log)}
	s.broker = database.NewConnectionBroker(s.store, mapper, log)
	s.metrics = database.NewMetricsCollector(log, time.Second)
	s.coordinator = database.NewTransactionCoordinator(s.broker, NewFactory(mapper, log), mapper, s.metrics, log, tp)
	s.transfers = transfer.NewService(s.coordinator, transfer.NewRecipientValidator([]string{"FOR_ERROR"}), persistence.IsolationReadCommitted, log)
	s.members = member.NewMemberUseCase(s.coordinator, 1, log)
	return s
}

func (s *scenario) balance(t *testing.T, id string) int64 {
	t.Helper()
	money, ok := s.store.Balance(id)
	require.True(t, ok, "member %s exists", id)
	return money
}

func TestTransferCommits(t *testing.T) {
	s := newScenario(2)
	s.store.Seed("memberA", 10000)
	s.store.Seed("memberB", 10000)

	result, err := s.transfers.AccountTransfer(context.Background(), "memberA", "memberB", 2000)

	require.NoError(t, err)
	assert.Equal(t, int64(8000), result.FromBalance)
	assert.Equal(t, int64(12000), result.ToBalance)
	assert.Equal(t, int64(8000), s.balance(t, "memberA"))
	assert.Equal(t, int64(12000), s.balance(t, "memberB"))

	txStats := s.metrics.Snapshot()
	assert.Equal(t, uint64(1), txStats.Committed)
	assert.Equal(t, uint64(0), txStats.RolledBack)

	brokerStats := s.broker.Stats()
	assert.Equal(t, uint64(1), brokerStats.Acquired)
	assert.Equal(t, uint64(1), brokerStats.Released)
	assert.Equal(t, PoolStats{Capacity: 2, Idle: 2}, s.store.Stats())
}

func TestRejectedRecipientRollsBackDebit(t *testing.T) {
	s := newScenario(2)
	s.store.Seed("memberA", 10000)
	s.store.Seed("FOR_ERROR", 10000)

	_, err := s.transfers.AccountTransfer(context.Background(), "memberA", "FOR_ERROR", 2000)

	assert.ErrorIs(t, err, errs.ErrTransferRejected)
	assert.Equal(t, int64(10000), s.balance(t, "memberA"))
	assert.Equal(t, int64(10000), s.balance(t, "FOR_ERROR"))
	assert.Equal(t, uint64(1), s.metrics.Snapshot().RolledBack)
	assert.Equal(t, uint64(0), s.metrics.Snapshot().Committed)
	assert.Equal(t, 0, s.broker.Stats().Borrowed)
}

func TestInsufficientBalanceLeavesBalances(t *testing.T) {
	s := newScenario(1)
	s.store.Seed("memberA", 100)
	s.store.Seed("memberB", 0)

	_, err := s.transfers.AccountTransfer(context.Background(), "memberA", "memberB", 101)

	var balanceErr *errs.InsufficientBalanceError
	require.True(t, errors.As(err, &balanceErr))
	assert.Equal(t, int64(100), balanceErr.Balance)
	assert.Equal(t, int64(100), s.balance(t, "memberA"))
	assert.Equal(t, int64(0), s.balance(t, "memberB"))
}

func TestConcurrentTransactionsAreIsolated(t *testing.T) {
	s := newScenario(2)
	s.store.Seed("memberA", 10000)

	written := make(chan struct{})
	checked := make(chan struct{})
	connIDs := make(chan string, 2)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		err := s.coordinator.Run(context.Background(), func(ctx context.Context, tx persistence.Tx) error {
			connIDs <- tx.(*database.TxContext).Conn().ID()
			if err := tx.Members().Update(ctx, "memberA", 1); err != nil {
				return err
			}
			close(written)
			<-checked
			return nil
		})
		assert.NoError(t, err)
	}()

	go func() {
		defer wg.Done()
		<-written
		err := s.coordinator.Run(context.Background(), func(ctx context.Context, tx persistence.Tx) error {
			connIDs <- tx.(*database.TxContext).Conn().ID()
			found, err := tx.Members().FindByID(ctx, "memberA")
			if err != nil {
				return err
			}
			assert.Equal(t, int64(10000), found.Money(), "uncommitted write is invisible")
			return nil
		})
		close(checked)
		assert.NoError(t, err)
	}()

	wg.Wait()
	close(connIDs)

	first, second := <-connIDs, <-connIDs
	assert.NotEqual(t, first, second)
	assert.Equal(t, int64(1), s.balance(t, "memberA"))
}

func TestConcurrentTransfersKeepTotal(t *testing.T) {
	s := newScenario(4)
	s.store.Seed("memberA", 10000)
	s.store.Seed("memberB", 10000)

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			from, to := "memberA", "memberB"
			if i%2 == 1 {
				from, to = to, from
			}
			_, err := s.transfers.AccountTransfer(context.Background(), from, to, 10)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(20000), s.balance(t, "memberA")+s.balance(t, "memberB"))
	assert.Equal(t, int64(10000), s.balance(t, "memberA"))
	assert.Equal(t, uint64(40), s.metrics.Snapshot().Committed)
	assert.Equal(t, 0, s.broker.Stats().Borrowed)
}

func TestUniqueViolationIsConstraintViolation(t *testing.T) {
	s := newScenario(1)
	s.store.Seed("memberA", 1)

	err := s.coordinator.Run(context.Background(), func(ctx context.Context, tx persistence.Tx) error {
		return tx.Members().Save(ctx, entity.RestoreMember("memberA", 2))
	})

	assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	assert.NotErrorIs(t, err, errs.ErrStore)
	assert.Equal(t, uint64(1), s.metrics.Snapshot().RolledBack)
}

func TestCreateMemberRetriesTakenID(t *testing.T) {
	s := newScenario(1)
	s.store.Seed("memberA", 1)

	created, err := s.members.Create(context.Background(), "memberA", 500)

	require.NoError(t, err)
	assert.NotEqual(t, "memberA", created.ID)
	assert.Regexp(t, `^memberA-[0-9a-f]{8}$`, created.ID)
	assert.Equal(t, int64(500), s.balance(t, created.ID))
	assert.Equal(t, int64(1), s.balance(t, "memberA"))
}

func TestMemberLifecycle(t *testing.T) {
	s := newScenario(1)
	ctx := context.Background()

	_, err := s.members.Create(ctx, "memberC", 300)
	require.NoError(t, err)

	found, err := s.members.Get(ctx, "memberC")
	require.NoError(t, err)
	assert.Equal(t, int64(300), found.Money())

	require.NoError(t, s.members.Delete(ctx, "memberC"))
	_, err = s.members.Get(ctx, "memberC")
	assert.ErrorIs(t, err, errs.ErrMemberNotFound)
}

func TestPoolExhaustedWhileConnectionHeld(t *testing.T) {
	log := logger.NewNoopLogger()
	mapper := database.NewErrorMapper()
	tp := timeAdapter.NewRealTimeProvider()
	store := NewStore(1, 0, tp, log)
	broker := database.NewConnectionBroker(store, mapper, log)
	coordinator := database.NewTransactionCoordinator(broker, NewFactory(mapper, log), mapper, database.NewMetricsCollector(log, 0), log, tp)

	err := coordinator.Run(context.Background(), func(ctx context.Context, _ persistence.Tx) error {
		// A separate boundary on a fresh context cannot join and has to wait for a connection
		waitCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		return coordinator.Run(waitCtx, func(context.Context, persistence.Tx) error { return nil })
	})

	assert.ErrorIs(t, err, errs.ErrResourceExhausted)
	assert.Equal(t, 0, broker.Stats().Borrowed)
	assert.Equal(t, PoolStats{Capacity: 1, Idle: 1}, store.Stats())
}

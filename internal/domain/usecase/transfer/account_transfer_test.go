package transfer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	mcore "github.com/amirhossein-jamali/transfer-coordinator/mocks/port/core"
	mpers "github.com/amirhossein-jamali/transfer-coordinator/mocks/port/persistence"
)

func newTestLogger(t *testing.T) *mcore.MockLogger {
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

// runInline makes the transactor execute work directly against tx
func runInline(transactor *mpers.MockTransactor, tx persistence.Tx, opts persistence.TxOptions) {
	transactor.EXPECT().RunWithOptions(mock.Anything, opts, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ persistence.TxOptions, work persistence.UnitOfWorkFunc) error {
			return work(ctx, tx)
		}).Once()
}

func TestAccountTransfer(t *testing.T) {
	opts := persistence.TxOptions{Isolation: persistence.IsolationReadCommitted}

	tests := []struct {
		name          string
		fromID        string
		toID          string
		amount        int64
		setupMocks    func(*mpers.MockTransactor, *mpers.MockTx, *mpers.MockMemberRepository)
		expectedError error
		expected      *entity.TransferResult
	}{
		{
			name:   "Moves Money Between Members",
			fromID: "memberA",
			toID:   "memberB",
			amount: 2000,
			setupMocks: func(transactor *mpers.MockTransactor, tx *mpers.MockTx, repo *mpers.MockMemberRepository) {
				runInline(transactor, tx, opts)
				repo.EXPECT().FindByIDForUpdate(mock.Anything, "memberA").Return(entity.RestoreMember("memberA", 10000), nil).Once()
				repo.EXPECT().FindByIDForUpdate(mock.Anything, "memberB").Return(entity.RestoreMember("memberB", 10000), nil).Once()
				repo.EXPECT().Update(mock.Anything, "memberA", int64(8000)).Return(nil).Once()
				repo.EXPECT().Update(mock.Anything, "memberB", int64(12000)).Return(nil).Once()
			},
			expected: &entity.TransferResult{
				TransactionID: "tx-1",
				FromID:        "memberA",
				ToID:          "memberB",
				Amount:        2000,
				FromBalance:   8000,
				ToBalance:     12000,
			},
		},
		{
			name:   "Locks Members In Identifier Order",
			fromID: "memberB",
			toID:   "memberA",
			amount: 500,
			setupMocks: func(transactor *mpers.MockTransactor, tx *mpers.MockTx, repo *mpers.MockMemberRepository) {
				runInline(transactor, tx, opts)
				first := repo.EXPECT().FindByIDForUpdate(mock.Anything, "memberA").Return(entity.RestoreMember("memberA", 100), nil).Once()
				repo.EXPECT().FindByIDForUpdate(mock.Anything, "memberB").Return(entity.RestoreMember("memberB", 1000), nil).Once().NotBefore(first)
				repo.EXPECT().Update(mock.Anything, "memberB", int64(500)).Return(nil).Once()
				repo.EXPECT().Update(mock.Anything, "memberA", int64(600)).Return(nil).Once()
			},
			expected: &entity.TransferResult{
				TransactionID: "tx-1",
				FromID:        "memberB",
				ToID:          "memberA",
				Amount:        500,
				FromBalance:   500,
				ToBalance:     600,
			},
		},
		{
			name:   "Blocked Recipient After Debit",
			fromID: "memberA",
			toID:   "FOR_ERROR",
			amount: 2000,
			setupMocks: func(transactor *mpers.MockTransactor, tx *mpers.MockTx, repo *mpers.MockMemberRepository) {
				runInline(transactor, tx, opts)
				repo.EXPECT().FindByIDForUpdate(mock.Anything, "memberA").Return(entity.RestoreMember("memberA", 10000), nil).Once()
				repo.EXPECT().FindByIDForUpdate(mock.Anything, "FOR_ERROR").Return(entity.RestoreMember("FOR_ERROR", 10000), nil).Once()
				// The debit is written before validation fails
				repo.EXPECT().Update(mock.Anything, "memberA", int64(8000)).Return(nil).Once()
			},
			expectedError: errs.ErrTransferRejected,
		},
		{
			name:   "Insufficient Balance",
			fromID: "memberA",
			toID:   "memberB",
			amount: 12000,
			setupMocks: func(transactor *mpers.MockTransactor, tx *mpers.MockTx, repo *mpers.MockMemberRepository) {
				runInline(transactor, tx, opts)
				repo.EXPECT().FindByIDForUpdate(mock.Anything, "memberA").Return(entity.RestoreMember("memberA", 10000), nil).Once()
				repo.EXPECT().FindByIDForUpdate(mock.Anything, "memberB").Return(entity.RestoreMember("memberB", 10000), nil).Once()
			},
			expectedError: errs.ErrInsufficientBalance,
		},
		{
			name:   "Unknown Recipient",
			fromID: "memberA",
			toID:   "memberZ",
			amount: 100,
			setupMocks: func(transactor *mpers.MockTransactor, tx *mpers.MockTx, repo *mpers.MockMemberRepository) {
				runInline(transactor, tx, opts)
				repo.EXPECT().FindByIDForUpdate(mock.Anything, "memberA").Return(entity.RestoreMember("memberA", 10000), nil).Once()
				repo.EXPECT().FindByIDForUpdate(mock.Anything, "memberZ").Return(nil, errs.ErrMemberNotFound).Once()
			},
			expectedError: errs.ErrMemberNotFound,
		},
		{
			name:   "Pool Exhausted",
			fromID: "memberA",
			toID:   "memberB",
			amount: 100,
			setupMocks: func(transactor *mpers.MockTransactor, tx *mpers.MockTx, repo *mpers.MockMemberRepository) {
				transactor.EXPECT().RunWithOptions(mock.Anything, opts, mock.Anything).Return(errs.ErrResourceExhausted).Once()
			},
			expectedError: errs.ErrResourceExhausted,
		},
		{
			name:          "Same Member",
			fromID:        "memberA",
			toID:          "memberA",
			amount:        100,
			setupMocks:    func(*mpers.MockTransactor, *mpers.MockTx, *mpers.MockMemberRepository) {},
			expectedError: errs.ErrSameMember,
		},
		{
			name:          "Non Positive Amount",
			fromID:        "memberA",
			toID:          "memberB",
			amount:        0,
			setupMocks:    func(*mpers.MockTransactor, *mpers.MockTx, *mpers.MockMemberRepository) {},
			expectedError: errs.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactor := mpers.NewMockTransactor(t)
			tx := mpers.NewMockTx(t)
			repo := mpers.NewMockMemberRepository(t)
			tx.EXPECT().ID().Return("tx-1").Maybe()
			tx.EXPECT().Members().Return(repo).Maybe()
			tt.setupMocks(transactor, tx, repo)

			service := NewService(transactor, NewRecipientValidator([]string{"FOR_ERROR"}), persistence.IsolationReadCommitted, newTestLogger(t))

			result, err := service.AccountTransfer(context.Background(), tt.fromID, tt.toID, tt.amount)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

package usecase

import (
	"context"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
)

// TransferUseCase moves money between members
type TransferUseCase interface {
	// AccountTransfer debits fromID and credits toID by amount in one transaction.
	// Either both balances change or neither does.
	AccountTransfer(ctx context.Context, fromID, toID string, amount int64) (*entity.TransferResult, error)
}

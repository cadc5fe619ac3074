package transfer

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
)

// AccountTransfer debits fromID and credits toID by amount.
//
// The source is debited and written before the recipient is validated, so a
// rejected recipient exercises a real rollback of the debit.
//
// Possible errors:
// - ErrInvalidMemberID, ErrSameMember, ErrInvalidAmount: If the request is malformed
// - ErrMemberNotFound: If either member doesn't exist
// - ErrInsufficientBalance: If the source balance doesn't cover amount
// - ErrTransferRejected: If the recipient is not allowed to receive transfers
// - any store error returned by the transactor
func (s *Service) AccountTransfer(ctx context.Context, fromID, toID string, amount int64) (*entity.TransferResult, error) {
	transfer, err := entity.NewTransfer(fromID, toID, amount)
	if err != nil {
		return nil, err
	}

	var result *entity.TransferResult
	opts := persistence.TxOptions{Isolation: s.isolation}

	err = s.transactor.RunWithOptions(ctx, opts, func(ctx context.Context, tx persistence.Tx) error {
		members := tx.Members()

		from, to, err := s.lockMembers(ctx, members, transfer)
		if err != nil {
			return err
		}

		if err := from.Debit(transfer.Amount); err != nil {
			return err
		}
		if err := members.Update(ctx, from.ID, from.Money()); err != nil {
			return err
		}

		if err := s.validator.Validate(to.ID); err != nil {
			return err
		}

		if err := to.Credit(transfer.Amount); err != nil {
			return err
		}
		if err := members.Update(ctx, to.ID, to.Money()); err != nil {
			return err
		}

		result = &entity.TransferResult{
			TransactionID: tx.ID(),
			FromID:        from.ID,
			ToID:          to.ID,
			Amount:        transfer.Amount,
			FromBalance:   from.Money(),
			ToBalance:     to.Money(),
		}
		return nil
	})
	if err != nil {
		s.logFailure(transfer, err)
		return nil, err
	}

	s.logger.Info("Transfer completed", map[string]any{
		"transaction_id": result.TransactionID,
		"from_id":        result.FromID,
		"to_id":          result.ToID,
		"amount":         result.Amount,
		"from_balance":   result.FromBalance,
		"to_balance":     result.ToBalance,
	})

	return result, nil
}

// lockMembers loads both members with row locks, always in the same order
func (s *Service) lockMembers(ctx context.Context, members persistence.MemberRepository, transfer *entity.Transfer) (from, to *entity.Member, err error) {
	firstID, secondID := transfer.LockOrder()

	first, err := members.FindByIDForUpdate(ctx, firstID)
	if err != nil {
		return nil, nil, fmt.Errorf("member %s: %w", firstID, err)
	}
	second, err := members.FindByIDForUpdate(ctx, secondID)
	if err != nil {
		return nil, nil, fmt.Errorf("member %s: %w", secondID, err)
	}

	if first.ID == transfer.FromID {
		return first, second, nil
	}
	return second, first, nil
}

func (s *Service) logFailure(transfer *entity.Transfer, err error) {
	fields := map[string]any{
		"from_id": transfer.FromID,
		"to_id":   transfer.ToID,
		"amount":  transfer.Amount,
		"error":   err.Error(),
	}

	switch errs.KindOf(err) {
	case errs.KindUnknown, errs.KindNotFound:
		// Business rule rejections
		s.logger.Warn("Transfer rejected", fields)
	default:
		fields["kind"] = string(errs.KindOf(err))
		s.logger.Error("Transfer failed", fields)
	}
}

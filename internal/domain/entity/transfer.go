package entity

import (
	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
)

// Transfer moves Amount units from one member to another
type Transfer struct {
	FromID string
	ToID   string
	Amount int64
}

// NewTransfer validates the transfer request
func NewTransfer(fromID, toID string, amount int64) (*Transfer, error) {
	if err := ValidateMemberID(fromID); err != nil {
		return nil, err
	}
	if err := ValidateMemberID(toID); err != nil {
		return nil, err
	}
	if fromID == toID {
		return nil, errs.ErrSameMember
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	return &Transfer{FromID: fromID, ToID: toID, Amount: amount}, nil
}

// LockOrder returns both member IDs in a fixed order so that concurrent
// transfers between the same pair always lock rows the same way.
func (t *Transfer) LockOrder() (first, second string) {
	if t.FromID < t.ToID {
		return t.FromID, t.ToID
	}
	return t.ToID, t.FromID
}

// TransferResult holds the balances of both members after a committed transfer
type TransferResult struct {
	TransactionID string
	FromID        string
	ToID          string
	Amount        int64
	FromBalance   int64
	ToBalance     int64
}

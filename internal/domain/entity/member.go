package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
)

// MaxMemberIDLength is the width of the member_id column
const MaxMemberIDLength = 64

// Member is an account holder with a money balance
type Member struct {
	ID    string // Unique identifier chosen by the caller
	money int64  // Balance in whole units (private)
}

// NewMember creates a member with the given ID and opening balance
func NewMember(id string, money int64) (*Member, error) {
	if err := ValidateMemberID(id); err != nil {
		return nil, err
	}
	if err := ValidateBalance(money); err != nil {
		return nil, err
	}

	return &Member{ID: id, money: money}, nil
}

// RestoreMember rebuilds a member from stored state without validation
func RestoreMember(id string, money int64) *Member {
	return &Member{ID: id, money: money}
}

// ValidateMemberID rejects empty, blank or oversized identifiers
func ValidateMemberID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty", errs.ErrInvalidMemberID)
	}
	if len(id) > MaxMemberIDLength {
		return fmt.Errorf("%w: longer than %d characters", errs.ErrInvalidMemberID, MaxMemberIDLength)
	}
	return nil
}

// Money returns the current balance
func (m *Member) Money() int64 {
	return m.money
}

// CanDebit reports whether the balance covers amount
func (m *Member) CanDebit(amount int64) bool {
	return m.money >= amount
}

// Debit subtracts amount from the balance.
// Returns an InsufficientBalanceError if the balance would go negative.
func (m *Member) Debit(amount int64) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if !m.CanDebit(amount) {
		return errs.NewInsufficientBalanceError(m.ID, amount, m.money)
	}

	m.money -= amount
	return nil
}

// Credit adds amount to the balance
func (m *Member) Credit(amount int64) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	sum, err := AddMoney(m.money, amount)
	if err != nil {
		return err
	}
	m.money = sum
	return nil
}

// WithID returns a copy of the member under a different identifier
func (m *Member) WithID(id string) *Member {
	return &Member{ID: id, money: m.money}
}

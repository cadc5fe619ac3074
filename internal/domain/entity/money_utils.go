package entity

import (
	"fmt"
	"math"

	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
)

// Money is kept in whole units. There is no fractional part and no currency.

// MaxMoney is the largest balance a member may hold
const MaxMoney int64 = math.MaxInt64 / 2

// ValidateAmount checks that a transfer amount is positive and within range
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", errs.ErrInvalidAmount, amount)
	}
	if amount > MaxMoney {
		return fmt.Errorf("%w: amount exceeds maximum of %d", errs.ErrInvalidAmount, MaxMoney)
	}
	return nil
}

// ValidateBalance checks that a balance is non-negative and within range
func ValidateBalance(balance int64) error {
	if balance < 0 {
		return fmt.Errorf("%w: balance cannot be negative, got %d", errs.ErrInvalidAmount, balance)
	}
	if balance > MaxMoney {
		return fmt.Errorf("%w: balance exceeds maximum of %d", errs.ErrInvalidAmount, MaxMoney)
	}
	return nil
}

// AddMoney adds two non-negative amounts, failing instead of overflowing MaxMoney
func AddMoney(balance, amount int64) (int64, error) {
	if amount > MaxMoney-balance {
		return 0, fmt.Errorf("%w: resulting balance exceeds maximum of %d", errs.ErrInvalidAmount, MaxMoney)
	}
	return balance + amount, nil
}

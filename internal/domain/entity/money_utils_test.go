package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	testCases := []struct {
		name    string
		amount  int64
		wantErr bool
	}{
		{"One unit", 1, false},
		{"Typical", 2000, false},
		{"Maximum", MaxMoney, false},
		{"Zero", 0, true},
		{"Negative", -5, true},
		{"Above maximum", MaxMoney + 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAmount(tc.amount)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateBalance(t *testing.T) {
	assert.NoError(t, ValidateBalance(0))
	assert.NoError(t, ValidateBalance(10000))
	assert.ErrorIs(t, ValidateBalance(-1), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateBalance(MaxMoney+1), errs.ErrInvalidAmount)
}

func TestAddMoney(t *testing.T) {
	t.Run("Regular sum", func(t *testing.T) {
		sum, err := AddMoney(10000, 2000)
		require.NoError(t, err)
		assert.Equal(t, int64(12000), sum)
	})

	t.Run("Exactly maximum", func(t *testing.T) {
		sum, err := AddMoney(MaxMoney-1, 1)
		require.NoError(t, err)
		assert.Equal(t, MaxMoney, sum)
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := AddMoney(MaxMoney, 1)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

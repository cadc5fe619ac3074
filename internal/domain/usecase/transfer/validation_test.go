package transfer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
)

func TestRecipientValidator(t *testing.T) {
	validator := NewRecipientValidator([]string{"FOR_ERROR", " frozen ", ""})

	tests := []struct {
		name     string
		memberID string
		rejected bool
	}{
		{name: "Blocked Member", memberID: "FOR_ERROR", rejected: true},
		{name: "Trimmed Entry", memberID: "frozen", rejected: true},
		{name: "Regular Member", memberID: "memberB"},
		{name: "Blank Entry Ignored", memberID: ""},
		{name: "Case Sensitive", memberID: "for_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.memberID)
			assert.Equal(t, tt.rejected, validator.isBlocked(tt.memberID))
			if tt.rejected {
				assert.True(t, errors.Is(err, errs.ErrTransferRejected))
				assert.Contains(t, err.Error(), tt.memberID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNilValidatorAllowsEveryone(t *testing.T) {
	service := NewService(nil, nil, 0, nil)
	assert.NoError(t, service.validator.Validate("FOR_ERROR"))
}

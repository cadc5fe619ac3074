package transfer

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
)

// RecipientValidator decides whether a member may receive transfers
type RecipientValidator struct {
	blocked map[string]struct{}
}

// NewRecipientValidator creates a validator that rejects the given member IDs
func NewRecipientValidator(blocked []string) *RecipientValidator {
	set := make(map[string]struct{}, len(blocked))
	for _, id := range blocked {
		id = strings.TrimSpace(id)
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return &RecipientValidator{blocked: set}
}

// Validate returns ErrTransferRejected when memberID is blocked
func (v *RecipientValidator) Validate(memberID string) error {
	if v.isBlocked(memberID) {
		return fmt.Errorf("%w: member %s cannot receive transfers", errs.ErrTransferRejected, memberID)
	}
	return nil
}

func (v *RecipientValidator) isBlocked(memberID string) bool {
	_, ok := v.blocked[memberID]
	return ok
}

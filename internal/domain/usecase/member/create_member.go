package member

import (
	"context"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
)

// derivedSuffixLength is how much of a fresh uuid is appended to a taken ID
const derivedSuffixLength = 8

// Create registers a member with the given ID and opening balance.
//
// If the ID is already taken, the member is saved again under a derived ID
// (id + "-" + 8 random characters), at most duplicateKeyRetries times. Each
// attempt runs in its own transaction because a failed insert aborts the one
// it ran in.
func (u *MemberUseCase) Create(ctx context.Context, id string, money int64) (*entity.Member, error) {
	member, err := entity.NewMember(id, money)
	if err != nil {
		return nil, err
	}

	candidate := member
	for attempt := 0; ; attempt++ {
		err := u.transactor.Run(ctx, func(ctx context.Context, tx persistence.Tx) error {
			return tx.Members().Save(ctx, candidate)
		})
		if err == nil {
			break
		}

		if !isDuplicateKey(err) || attempt >= u.duplicateKeyRetries {
			u.logger.Error("Failed to create member", map[string]any{
				"member_id": candidate.ID,
				"attempt":   attempt + 1,
				"error":     err.Error(),
			})
			return nil, err
		}

		next := u.derivedID(id)
		u.logger.Warn("Member ID already taken, retrying with a derived ID", map[string]any{
			"member_id":  candidate.ID,
			"derived_id": next,
			"attempt":    attempt + 1,
		})
		candidate = member.WithID(next)
	}

	u.logger.Info("Member created", map[string]any{
		"member_id":    candidate.ID,
		"requested_id": id,
		"money":        candidate.Money(),
	})

	return candidate, nil
}

// isDuplicateKey reports whether the insert was rejected for a taken ID and
// the transaction ended cleanly. A failed commit or rollback leaves the data
// state unknown, so it is returned even when its cause was a unique violation.
func isDuplicateKey(err error) bool {
	return errs.IsUniqueViolation(err) && !errs.IsTransactionFailed(err)
}

// derivedID appends a random suffix to id, shortening id so the result still
// fits the member_id column
func (u *MemberUseCase) derivedID(id string) string {
	suffix := u.newSuffix()
	if len(suffix) > derivedSuffixLength {
		suffix = suffix[:derivedSuffixLength]
	}

	maxBase := entity.MaxMemberIDLength - len(suffix) - 1
	if len(id) > maxBase {
		id = id[:maxBase]
	}
	return id + "-" + suffix
}

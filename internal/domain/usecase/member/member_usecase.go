package member

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
)

// MemberUseCase handles member-related business logic
type MemberUseCase struct {
	transactor          persistence.Transactor
	duplicateKeyRetries int
	newSuffix           func() string
	logger              coreport.Logger
}

// NewMemberUseCase creates a new MemberUseCase. duplicateKeyRetries is how
// many derived IDs Create tries after the requested one is taken.
func NewMemberUseCase(
	transactor persistence.Transactor,
	duplicateKeyRetries int,
	logger coreport.Logger,
) *MemberUseCase {
	if duplicateKeyRetries < 0 {
		duplicateKeyRetries = 0
	}

	return &MemberUseCase{
		transactor:          transactor,
		duplicateKeyRetries: duplicateKeyRetries,
		newSuffix:           uuid.NewString,
		logger:              logger,
	}
}

// Get returns a member by ID, read in a read-only transaction
func (u *MemberUseCase) Get(ctx context.Context, id string) (*entity.Member, error) {
	if err := entity.ValidateMemberID(id); err != nil {
		return nil, err
	}

	var member *entity.Member
	err := u.transactor.RunWithOptions(ctx, persistence.TxOptions{ReadOnly: true}, func(ctx context.Context, tx persistence.Tx) error {
		found, err := tx.Members().FindByID(ctx, id)
		if err != nil {
			return err
		}
		member = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

// Delete removes a member. Deleting a missing member succeeds.
func (u *MemberUseCase) Delete(ctx context.Context, id string) error {
	if err := entity.ValidateMemberID(id); err != nil {
		return err
	}

	err := u.transactor.Run(ctx, func(ctx context.Context, tx persistence.Tx) error {
		return tx.Members().Delete(ctx, id)
	})
	if err != nil {
		u.logger.Error("Failed to delete member", map[string]any{
			"member_id": id,
			"error":     err.Error(),
		})
		return err
	}

	u.logger.Info("Member deleted", map[string]any{
		"member_id": id,
	})
	return nil
}

package persistence

import (
	"context"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
)

// MemberRepository reads and writes members through the connection of the
// transaction it was obtained from. It never acquires or releases connections.
type MemberRepository interface {
	// Save inserts a new member
	//
	// Possible errors:
	// - ErrConstraintViolation: If a member with the same ID already exists
	// - ErrTransactionFailed: If the owning transaction already completed
	Save(ctx context.Context, member *entity.Member) error

	// FindByID retrieves a member by ID
	//
	// Possible errors:
	// - ErrMemberNotFound: If no member has this ID
	FindByID(ctx context.Context, id string) (*entity.Member, error)

	// FindByIDForUpdate retrieves a member and locks its row until the
	// transaction ends
	//
	// Possible errors:
	// - ErrMemberNotFound: If no member has this ID
	FindByIDForUpdate(ctx context.Context, id string) (*entity.Member, error)

	// Update sets the balance of a member
	//
	// Possible errors:
	// - ErrMemberNotFound: If no member has this ID
	Update(ctx context.Context, id string, money int64) error

	// Delete removes a member. Deleting a missing member is not an error.
	Delete(ctx context.Context, id string) error
}

package usecase

import (
	"context"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
)

// MemberUseCase defines member lifecycle operations
type MemberUseCase interface {
	// Create registers a member. When the ID is taken, a derived ID may be
	// used instead; the returned member carries the ID actually stored.
	Create(ctx context.Context, id string, money int64) (*entity.Member, error)

	// Get returns a member by ID
	Get(ctx context.Context, id string) (*entity.Member, error)

	// Delete removes a member
	Delete(ctx context.Context, id string) error
}

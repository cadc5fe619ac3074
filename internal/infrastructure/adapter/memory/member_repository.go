package memory

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/database"
)

// MemberRepository implements persistence.MemberRepository on a store connection
type MemberRepository struct {
	conn        *Conn
	errorMapper *database.ErrorMapper
	logger      coreport.Logger
}

// Save inserts a new member
func (r *MemberRepository) Save(ctx context.Context, member *entity.Member) error {
	if err := ctx.Err(); err != nil {
		return r.errorMapper.MapError(err, "saving member")
	}
	if err := r.conn.insert(member.ID, member.Money()); err != nil {
		return r.handleError("saving member", err, member.ID)
	}
	return nil
}

// FindByID retrieves a member by ID
func (r *MemberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, r.errorMapper.MapError(err, "finding member")
	}

	money, ok := r.conn.get(id)
	if !ok {
		return nil, errs.ErrMemberNotFound
	}
	return entity.RestoreMember(id, money), nil
}

// FindByIDForUpdate retrieves a member and holds its row lock until the transaction ends
func (r *MemberRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Member, error) {
	if err := r.conn.lock(ctx, id); err != nil {
		return nil, r.handleError("locking member", err, id)
	}
	return r.FindByID(ctx, id)
}

// Update sets the balance of a member
func (r *MemberRepository) Update(ctx context.Context, id string, money int64) error {
	if err := r.conn.lock(ctx, id); err != nil {
		return r.handleError("updating member", err, id)
	}

	found, err := r.conn.update(id, money)
	if err != nil {
		return r.handleError("updating member", err, id)
	}
	if !found {
		return errs.ErrMemberNotFound
	}
	return nil
}

// Delete removes a member. A missing row is not an error.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	if err := r.conn.lock(ctx, id); err != nil {
		return r.handleError("deleting member", err, id)
	}
	if err := r.conn.delete(id); err != nil {
		return r.handleError("deleting member", err, id)
	}
	return nil
}

func (r *MemberRepository) handleError(operation string, err error, memberID string) error {
	mapped := r.errorMapper.MapError(err, operation)
	r.logger.Debug(fmt.Sprintf("Store rejected %s", operation), map[string]any{
		"member_id": memberID,
		"error":     err.Error(),
		"kind":      string(errs.KindOf(mapped)),
	})
	return mapped
}

// Factory builds member repositories for connections lent by a Store
type Factory struct {
	errorMapper *database.ErrorMapper
	logger      coreport.Logger
}

// NewFactory creates a repository factory
func NewFactory(errorMapper *database.ErrorMapper, logger coreport.Logger) *Factory {
	return &Factory{errorMapper: errorMapper, logger: logger}
}

// Members returns a member repository bound to conn
func (f *Factory) Members(conn persistence.Conn) persistence.MemberRepository {
	c, ok := conn.(*Conn)
	if !ok {
		return database.NewFailingMemberRepository(fmt.Errorf("%w: connection %T was not lent by a memory store", errs.ErrStore, conn))
	}
	return &MemberRepository{conn: c, errorMapper: f.errorMapper, logger: f.logger}
}

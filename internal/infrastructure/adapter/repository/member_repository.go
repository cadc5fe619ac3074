package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberRepository implements persistence.MemberRepository with GORM on a
// single borrowed connection
type MemberRepository struct {
	db          *gorm.DB
	conn        database.GormConn
	errorMapper *database.ErrorMapper
	logger      coreport.Logger
}

// NewMemberRepository creates a repository whose statements run on conn
func NewMemberRepository(db *gorm.DB, conn database.GormConn, errorMapper *database.ErrorMapper, logger coreport.Logger) *MemberRepository {
	return &MemberRepository{
		db:          db,
		conn:        conn,
		errorMapper: errorMapper,
		logger:      logger,
	}
}

// session returns a gorm handle that executes on the connection's current
// transaction instead of the shared pool
func (r *MemberRepository) session(ctx context.Context) (*gorm.DB, error) {
	pool, err := r.conn.ConnPool(ctx)
	if err != nil {
		return nil, r.errorMapper.MapError(err, "bind connection")
	}

	tx := r.db.Session(&gorm.Session{
		NewDB:                  true,
		Context:                ctx,
		SkipDefaultTransaction: true,
	})
	tx.Statement.ConnPool = pool
	return tx, nil
}

// handleDatabaseError logs and translates a statement failure
func (r *MemberRepository) handleDatabaseError(operation string, err error, memberID string) error {
	mapped := r.errorMapper.MapNotFound(err, operation, errs.ErrMemberNotFound)

	fields := map[string]any{
		"member_id": memberID,
		"error":     err.Error(),
		"kind":      string(errs.KindOf(mapped)),
	}
	switch errs.KindOf(mapped) {
	case errs.KindNotFound, errs.KindConstraintViolation:
		r.logger.Debug(fmt.Sprintf("Database rejected %s", operation), fields)
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}

	return mapped
}

// Save inserts a new member row
func (r *MemberRepository) Save(ctx context.Context, member *entity.Member) error {
	tx, err := r.session(ctx)
	if err != nil {
		return err
	}

	if err := tx.Create(model.FromEntity(member)).Error; err != nil {
		return r.handleDatabaseError("saving member", err, member.ID)
	}

	r.logger.Debug("Member saved", map[string]any{
		"member_id": member.ID,
		"money":     member.Money(),
	})
	return nil
}

// FindByID retrieves a member by ID
func (r *MemberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	tx, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	return r.find(tx, id, "finding member")
}

// FindByIDForUpdate retrieves a member with SELECT ... FOR UPDATE
func (r *MemberRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Member, error) {
	tx, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	return r.find(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id, "locking member")
}

func (r *MemberRepository) find(tx *gorm.DB, id, operation string) (*entity.Member, error) {
	var row model.Member
	if err := tx.Where("member_id = ?", id).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, id)
	}
	return row.ToEntity(), nil
}

// Update sets the money of a member
func (r *MemberRepository) Update(ctx context.Context, id string, money int64) error {
	tx, err := r.session(ctx)
	if err != nil {
		return err
	}

	result := tx.Model(&model.Member{}).Where("member_id = ?", id).Update("money", money)
	if result.Error != nil {
		return r.handleDatabaseError("updating member", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrMemberNotFound
	}

	r.logger.Debug("Member updated", map[string]any{
		"member_id": id,
		"money":     money,
	})
	return nil
}

// Delete removes a member. A missing row is not an error.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.session(ctx)
	if err != nil {
		return err
	}

	if err := tx.Where("member_id = ?", id).Delete(&model.Member{}).Error; err != nil {
		return r.handleDatabaseError("deleting member", err, id)
	}
	return nil
}

// Factory builds member repositories for connections lent by SQLPool
type Factory struct {
	db          *gorm.DB
	errorMapper *database.ErrorMapper
	logger      coreport.Logger
}

// NewFactory creates a repository factory
func NewFactory(db *gorm.DB, errorMapper *database.ErrorMapper, logger coreport.Logger) *Factory {
	return &Factory{db: db, errorMapper: errorMapper, logger: logger}
}

// Members returns a member repository bound to conn
func (f *Factory) Members(conn persistence.Conn) persistence.MemberRepository {
	gc, ok := conn.(database.GormConn)
	if !ok {
		return database.NewFailingMemberRepository(fmt.Errorf("%w: connection %T cannot run gorm statements", errs.ErrStore, conn))
	}
	return NewMemberRepository(f.db, gc, f.errorMapper, f.logger)
}

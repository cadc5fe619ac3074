package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/logger"
	timeAdapter "github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/time"
)

type repoFixture struct {
	mock sqlmock.Sqlmock
	conn persistence.Conn
	repo persistence.MemberRepository
}

// newRepoFixture opens gorm over sqlmock and binds a repository to a
// connection that is inside a transaction
func newRepoFixture(t *testing.T) *repoFixture {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	log := logger.NewNoopLogger()
	pool := database.NewSQLPool(sqlDB, time.Second, timeAdapter.NewRealTimeProvider(), log)

	mock.ExpectBegin()
	conn, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, conn.SetAutoCommit(context.Background(), false, nil))

	return &repoFixture{
		mock: mock,
		conn: conn,
		repo: NewFactory(db, database.NewErrorMapper(), log).Members(conn),
	}
}

const (
	insertMember = `INSERT INTO "member" ("member_id","money") VALUES ($1,$2)`
	selectMember = `SELECT * FROM "member" WHERE member_id = $1`
	updateMember = `UPDATE "member" SET "money"=$1 WHERE member_id = $2`
	deleteMember = `DELETE FROM "member" WHERE member_id = $1`
)

func TestSave(t *testing.T) {
	t.Run("Inserts Inside Transaction", func(t *testing.T) {
		f := newRepoFixture(t)
		f.mock.ExpectExec(regexp.QuoteMeta(insertMember)).
			WithArgs("memberA", int64(10000)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		f.mock.ExpectCommit()

		require.NoError(t, f.repo.Save(context.Background(), entity.RestoreMember("memberA", 10000)))
		require.NoError(t, f.conn.Commit(context.Background()))
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Key", func(t *testing.T) {
		f := newRepoFixture(t)
		f.mock.ExpectExec(regexp.QuoteMeta(insertMember)).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"member_pkey\""})

		err := f.repo.Save(context.Background(), entity.RestoreMember("memberA", 1))

		assert.True(t, errs.IsUniqueViolation(err))
		assert.False(t, errors.Is(err, errs.ErrStore))
	})

	t.Run("Check Constraint", func(t *testing.T) {
		f := newRepoFixture(t)
		f.mock.ExpectExec(regexp.QuoteMeta(insertMember)).
			WillReturnError(&pgconn.PgError{Code: "23514", Message: "new row violates check constraint"})

		err := f.repo.Save(context.Background(), entity.RestoreMember("memberA", 1))

		assert.True(t, errs.IsConstraintViolation(err))
		assert.False(t, errs.IsUniqueViolation(err))
	})
}

func TestFindByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		f := newRepoFixture(t)
		f.mock.ExpectQuery(regexp.QuoteMeta(selectMember)).
			WillReturnRows(sqlmock.NewRows([]string{"member_id", "money"}).AddRow("memberA", int64(10000)))

		member, err := f.repo.FindByID(context.Background(), "memberA")

		require.NoError(t, err)
		assert.Equal(t, "memberA", member.ID)
		assert.Equal(t, int64(10000), member.Money())
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newRepoFixture(t)
		f.mock.ExpectQuery(regexp.QuoteMeta(selectMember)).
			WillReturnRows(sqlmock.NewRows([]string{"member_id", "money"}))

		_, err := f.repo.FindByID(context.Background(), "ghost")

		assert.ErrorIs(t, err, errs.ErrMemberNotFound)
	})

	t.Run("Store Failure", func(t *testing.T) {
		f := newRepoFixture(t)
		f.mock.ExpectQuery(regexp.QuoteMeta(selectMember)).
			WillReturnError(&pgconn.PgError{Code: "42P01", Message: "relation \"member\" does not exist"})

		_, err := f.repo.FindByID(context.Background(), "memberA")

		var storeErr *errs.StoreError
		require.True(t, errors.As(err, &storeErr))
		assert.Equal(t, "42P01", storeErr.Code)
	})
}

func TestFindByIDForUpdate(t *testing.T) {
	f := newRepoFixture(t)
	f.mock.ExpectQuery(regexp.QuoteMeta(selectMember) + `.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"member_id", "money"}).AddRow("memberA", int64(5)))

	member, err := f.repo.FindByIDForUpdate(context.Background(), "memberA")

	require.NoError(t, err)
	assert.Equal(t, int64(5), member.Money())
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	t.Run("Updates Balance", func(t *testing.T) {
		f := newRepoFixture(t)
		f.mock.ExpectExec(regexp.QuoteMeta(updateMember)).
			WithArgs(int64(8000), "memberA").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, f.repo.Update(context.Background(), "memberA", 8000))
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("Missing Member", func(t *testing.T) {
		f := newRepoFixture(t)
		f.mock.ExpectExec(regexp.QuoteMeta(updateMember)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, f.repo.Update(context.Background(), "ghost", 1), errs.ErrMemberNotFound)
	})
}

func TestDelete(t *testing.T) {
	f := newRepoFixture(t)
	f.mock.ExpectExec(regexp.QuoteMeta(deleteMember)).
		WithArgs("memberA").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, f.repo.Delete(context.Background(), "memberA"))
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestFactoryRejectsForeignConnection(t *testing.T) {
	factory := NewFactory(nil, database.NewErrorMapper(), logger.NewNoopLogger())
	repo := factory.Members(struct{ persistence.Conn }{})

	_, err := repo.FindByID(context.Background(), "memberA")
	assert.ErrorIs(t, err, errs.ErrStore)
}

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/logger"
	timeAdapter "github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/time"
)

func TestClassifyStatement(t *testing.T) {
	tests := []struct {
		sql  string
		want statementInfo
	}{
		{`SELECT * FROM "member" WHERE member_id = $1 ORDER BY "member"."member_id" LIMIT $2 FOR UPDATE`, statementInfo{verb: "SELECT", table: "member", locking: true}},
		{`SELECT * FROM "member" WHERE member_id = $1`, statementInfo{verb: "SELECT", table: "member"}},
		{`INSERT INTO "member" ("member_id","money") VALUES ($1,$2)`, statementInfo{verb: "INSERT", table: "member"}},
		{`UPDATE "member" SET "money"=$1 WHERE member_id = $2`, statementInfo{verb: "UPDATE", table: "member"}},
		{`delete from member where member_id = $1`, statementInfo{verb: "DELETE", table: "member"}},
		{`CREATE TABLE "member" ("member_id" varchar(64))`, statementInfo{}},
		{"   ", statementInfo{}},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyStatement(tt.sql))
		})
	}
}

func TestDatabaseLoggerTrace(t *testing.T) {
	newLogger := func(level string) (gormlogger.Interface, *observer.ObservedLogs) {
		zc, logs := observer.New(zapcore.DebugLevel)
		return NewDatabaseLogger(logger.NewZapLoggerWithCore(zc, core.LogLevelDebug), timeAdapter.NewRealTimeProvider(), level), logs
	}
	stmt := func() (string, int64) { return `UPDATE "member" SET "money"=$1 WHERE member_id = $2`, 1 }

	t.Run("query carries transaction id", func(t *testing.T) {
		l, logs := newLogger("info")
		ctx := context.WithValue(context.Background(), txContextKey, &TxContext{id: "tx-1"})

		l.Trace(ctx, time.Now(), stmt, nil)

		entries := logs.FilterMessage("SQL Query").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "tx-1", fields["transaction_id"])
		assert.Equal(t, "UPDATE", fields["type"])
		assert.Equal(t, "member", fields["table"])
	})

	t.Run("error", func(t *testing.T) {
		l, logs := newLogger("warn")

		l.Trace(context.Background(), time.Now(), stmt, errors.New("deadlock detected"))

		assert.Equal(t, 1, logs.FilterMessage("SQL Error").Len())
	})

	t.Run("not found is not an error", func(t *testing.T) {
		l, logs := newLogger("warn")

		l.Trace(context.Background(), time.Now(), stmt, gorm.ErrRecordNotFound)

		assert.Zero(t, logs.Len())
	})

	t.Run("slow", func(t *testing.T) {
		l, logs := newLogger("warn")

		l.Trace(context.Background(), time.Now().Add(-time.Second), stmt, nil)

		assert.Equal(t, 1, logs.FilterMessage("Slow SQL Query").Len())
	})

	t.Run("silent", func(t *testing.T) {
		l, logs := newLogger("silent")

		l.Trace(context.Background(), time.Now().Add(-time.Second), stmt, errors.New("boom"))

		assert.Zero(t, logs.Len())
	})
}

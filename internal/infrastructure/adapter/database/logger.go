package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a GORM logger that writes through the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a new database logger. level is one of
// silent, error, warn or info.
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      parseGormLogLevel(level),
		slowThreshold: 200 * time.Millisecond,
		timeProvider:  timeProvider,
	}
}

func parseGormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// WithSlowThreshold returns a new logger with updated slow threshold
func (l *DatabaseLogger) WithSlowThreshold(threshold time.Duration) logger.Interface {
	newLogger := *l
	newLogger.slowThreshold = threshold
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Trace logs one executed statement. Failures other than not-found are
// errors, statements slower than the threshold are warnings, the rest is debug.
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.timeProvider.Since(begin).Std()
	sql, rows := fc()

	fields := map[string]any{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
		"source":  "database",
	}

	stmt := classifyStatement(sql)
	if stmt.verb != "" {
		fields["type"] = stmt.verb
	}
	if stmt.table != "" {
		fields["table"] = stmt.table
	}
	if stmt.locking {
		fields["locking"] = true
	}

	// Statements issued inside a coordinated transaction carry its ID
	if tx, ok := ctx.Value(txContextKey).(*TxContext); ok && tx != nil {
		fields["transaction_id"] = tx.ID()
	}

	if err != nil {
		fields["error"] = err.Error()
	}

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		if l.logLevel >= logger.Info {
			l.coreLogger.Debug("SQL Query", fields)
		}
	case err != nil && l.logLevel >= logger.Error:
		l.coreLogger.Error("SQL Error", fields)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}

type statementInfo struct {
	verb    string
	table   string
	locking bool
}

// classifyStatement extracts the verb and target table of a single SQL
// statement. Quoted identifiers are unquoted; anything unrecognised yields
// an empty verb.
func classifyStatement(sql string) statementInfo {
	words := strings.Fields(sql)
	if len(words) == 0 {
		return statementInfo{}
	}

	info := statementInfo{verb: strings.ToUpper(words[0])}
	var tableKeyword string
	switch info.verb {
	case "SELECT", "DELETE":
		tableKeyword = "FROM"
	case "INSERT":
		tableKeyword = "INTO"
	case "UPDATE":
		if len(words) > 1 {
			info.table = unquoteIdentifier(words[1])
		}
	default:
		return statementInfo{}
	}

	for i, w := range words {
		upper := strings.ToUpper(w)
		if tableKeyword != "" && info.table == "" && upper == tableKeyword && i+1 < len(words) {
			info.table = unquoteIdentifier(words[i+1])
		}
		if upper == "FOR" && i+1 < len(words) {
			next := strings.ToUpper(words[i+1])
			info.locking = next == "UPDATE" || next == "SHARE"
		}
	}
	return info
}

func unquoteIdentifier(s string) string {
	if i := strings.IndexAny(s, "(,;"); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, "\"`")
}

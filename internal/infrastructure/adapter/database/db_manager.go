package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager owns the gorm handle and the database/sql pool underneath it
type Manager struct {
	config       *Config
	db           *gorm.DB
	sqlDB        *sql.DB
	logger       coreport.Logger
	errorMapper  *ErrorMapper
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// Connect opens the database, retrying transient failures with backoff
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if m.config.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	retry := DefaultRetryConfig()
	retry.MaxAttempts = m.config.RetryAttempts
	if m.config.RetryDelay > 0 {
		retry.RetryInterval = m.config.RetryDelay
		retry.MaxInterval = 8 * m.config.RetryDelay
	}

	err := RetryOnTransientError(ctx, retry, func(ctx context.Context) error {
		gormDB, err := gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
			Logger:                 NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc:                m.timeProvider.Now,
			SkipDefaultTransaction: true,
		})
		if err != nil {
			return m.errorMapper.MapError(err, "connect")
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			return fmt.Errorf("failed to get database connection: %w", err)
		}

		pingCtx, cancel := m.timeProvider.WithTimeout(ctx, coreport.Duration(m.queryTimeout()))
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			_ = sqlDB.Close()
			return m.errorMapper.MapError(err, "ping")
		}

		m.db = gormDB
		m.sqlDB = sqlDB
		return nil
	}, m.errorMapper, m.logger, m.timeProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", retry.MaxAttempts, err)
	}

	m.sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	m.sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	m.sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	m.sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":            m.config.Host,
		"name":            m.config.Database,
		"max_open_conns":  m.config.MaxOpenConns,
		"max_idle_conns":  m.config.MaxIdleConns,
		"acquire_timeout": m.config.AcquireTimeout.String(),
	})

	return m.db, nil
}

// EnsureSchema creates the member table when it does not exist yet
func (m *Manager) EnsureSchema(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&model.Member{}); err != nil {
		return m.errorMapper.MapError(err, "ensure schema")
	}
	return nil
}

// Pool returns the connection pool transactions borrow from
func (m *Manager) Pool() *SQLPool {
	return NewSQLPool(m.sqlDB, m.config.AcquireTimeout, m.timeProvider, m.logger)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// SQLDB returns the underlying database/sql handle
func (m *Manager) SQLDB() *sql.DB {
	return m.sqlDB
}

// ErrorMapper returns the error mapper
func (m *Manager) ErrorMapper() *ErrorMapper {
	return m.errorMapper
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)
	if m.sqlDB == nil {
		return nil
	}
	return m.sqlDB.Close()
}

func (m *Manager) queryTimeout() time.Duration {
	if m.config.QueryTimeout > 0 {
		return m.config.QueryTimeout
	}
	return 5 * time.Second
}

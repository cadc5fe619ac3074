package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Transfer    TransferConfig  `mapstructure:"transfer"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	AcquireTimeout  time.Duration `mapstructure:"acquireTimeout"`  // milliseconds
	SlowTransaction time.Duration `mapstructure:"slowTransaction"` // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// TransferConfig contains transfer and member settings
type TransferConfig struct {
	// BlockedMembers are recipients every transfer to is rejected
	BlockedMembers []string `mapstructure:"blockedMembers"`
	// DuplicateKeyRetries is how many derived IDs member creation tries after a duplicate key
	DuplicateKeyRetries int `mapstructure:"duplicateKeyRetries"`
	// Isolation is the isolation level of transfer transactions
	Isolation string `mapstructure:"isolation"`
}

// RateLimitConfig contains per-client request limits
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Rate uses the limiter format, e.g. "100-S" or "1000-M"
	Rate string `mapstructure:"rate"`
}

// Validate checks the settings that have no safe fallback
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			return errors.New("database host is required")
		}
		if c.Database.Database == "" {
			return errors.New("database name is required")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.Database.MaxOpenConns)
	}
	if c.Transfer.DuplicateKeyRetries < 0 {
		return fmt.Errorf("duplicate key retries must be non-negative, got: %d", c.Transfer.DuplicateKeyRetries)
	}

	switch c.Transfer.Isolation {
	case "", "default", "read_committed", "repeatable_read", "serializable":
	default:
		return fmt.Errorf("invalid transfer isolation: %s", c.Transfer.Isolation)
	}

	return nil
}

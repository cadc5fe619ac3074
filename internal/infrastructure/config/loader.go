package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "TC"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment named by TC_ENV
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the first of paths that has it. A
// missing file is not an error; defaults and environment overrides still apply.
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Set environment variables to override config
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 20)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)  // minutes
	v.SetDefault("database.connMaxIdleTime", 15)  // minutes
	v.SetDefault("database.queryTimeout", 5)      // seconds
	v.SetDefault("database.acquireTimeout", 3000) // milliseconds
	v.SetDefault("database.slowTransaction", 500) // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("transfer.blockedMembers", []string{"FOR_ERROR"})
	v.SetDefault("transfer.duplicateKeyRetries", 1)
	v.SetDefault("transfer.isolation", "read_committed")

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.rate", "200-S")
}

// getEnvironment determines the environment to use based on TC_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over the config file for
// keys whose camelCase names AutomaticEnv cannot match
func processEnvOverrides(v *viper.Viper) {
	overrideString(v, "TC_DB_DRIVER", "database.driver")
	overrideString(v, "TC_DB_HOST", "database.host")
	overrideString(v, "TC_DB_PORT", "database.port")
	overrideString(v, "TC_DB_USERNAME", "database.username")
	overrideString(v, "TC_DB_PASSWORD", "database.password")
	overrideString(v, "TC_DB_NAME", "database.database")
	overrideString(v, "TC_DB_SSL_MODE", "database.sslMode")
	overrideString(v, "TC_DB_LOG_LEVEL", "database.logLevel")

	if maxOpenConns := getEnvInt("TC_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("TC_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if acquireTimeout := getEnvInt("TC_DB_ACQUIRE_TIMEOUT_MS", 0); acquireTimeout > 0 {
		v.Set("database.acquireTimeout", acquireTimeout)
	}
	if queryTimeout := getEnvInt("TC_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("TC_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if retryDelay := getEnvInt("TC_DB_RETRY_DELAY_SECONDS", -1); retryDelay >= 0 {
		v.Set("database.retryDelay", retryDelay)
	}

	overrideString(v, "TC_SERVER_HOST", "server.host")
	if serverPort := getEnvInt("TC_SERVER_PORT", 0); serverPort > 0 {
		v.Set("server.port", serverPort)
	}

	overrideString(v, "TC_LOGGER_LEVEL", "logger.level")
	overrideString(v, "TC_LOGGER_FORMAT", "logger.format")

	if blocked := os.Getenv("TC_TRANSFER_BLOCKED_MEMBERS"); blocked != "" {
		v.Set("transfer.blockedMembers", splitList(blocked))
	}
	if retries := getEnvInt("TC_TRANSFER_DUPLICATE_KEY_RETRIES", -1); retries >= 0 {
		v.Set("transfer.duplicateKeyRetries", retries)
	}
	overrideString(v, "TC_TRANSFER_ISOLATION", "transfer.isolation")

	overrideString(v, "TC_RATE_LIMIT_RATE", "rateLimit.rate")
	if enabled := os.Getenv("TC_RATE_LIMIT_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			v.Set("rateLimit.enabled", b)
		}
	}
}

func overrideString(v *viper.Viper, env, key string) {
	if value := os.Getenv(env); value != "" {
		v.Set(key, value)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Database.AcquireTimeout = time.Duration(config.Database.AcquireTimeout) * time.Millisecond
	config.Database.SlowTransaction = time.Duration(config.Database.SlowTransaction) * time.Millisecond
}

package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/config"
)

func TestZapLoggerLevels(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerWithCore(observed, core.LogLevelWarn)

	log.Debug("debug message", nil)
	log.Info("info message", nil)
	log.Warn("warn message", map[string]any{"connection_id": "c-1"})
	log.Error("error message", map[string]any{"error": errors.New("boom")})

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "warn message", entries[0].Message)
	assert.Equal(t, "c-1", entries[0].ContextMap()["connection_id"])
	assert.Equal(t, "error message", entries[1].Message)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("now visible", nil)
	assert.Equal(t, 1, logs.FilterMessage("now visible").Len())
}

func TestNewZapLogger(t *testing.T) {
	t.Run("Json Format", func(t *testing.T) {
		log, err := NewZapLogger(config.LoggerConfig{Level: "error", Format: "json", Output: "stderr"})
		require.NoError(t, err)
		assert.Equal(t, core.LogLevelError, log.GetLevel())
	})

	t.Run("Invalid Level", func(t *testing.T) {
		_, err := NewZapLogger(config.LoggerConfig{Level: "loud"})
		assert.Error(t, err)
	})
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	assert.Equal(t, core.LogLevelInfo, log.GetLevel())

	log.SetLevel(core.LogLevelError)
	log.Error("ignored", nil)

	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.NoError(t, log.Flush())
}

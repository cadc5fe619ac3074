package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/logger"
	mcore "github.com/amirhossein-jamali/transfer-coordinator/mocks/port/core"
)

// immediateTimer makes every backoff elapse at once
func immediateTimer(t *testing.T) *mcore.MockTimeProvider {
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().After(mock.Anything).RunAndReturn(func(core.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	}).Maybe()
	return tp
}

func TestRetryOnTransientError(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, RetryInterval: time.Millisecond, MaxInterval: 10 * time.Millisecond}
	refused := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	t.Run("Succeeds After Transient Failures", func(t *testing.T) {
		attempts := 0
		err := RetryOnTransientError(context.Background(), cfg, func(context.Context) error {
			attempts++
			if attempts < 3 {
				return refused
			}
			return nil
		}, NewErrorMapper(), logger.NewNoopLogger(), immediateTimer(t))

		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Stops On Permanent Error", func(t *testing.T) {
		attempts := 0
		permanent := errors.New("password authentication failed")
		err := RetryOnTransientError(context.Background(), cfg, func(context.Context) error {
			attempts++
			return permanent
		}, NewErrorMapper(), logger.NewNoopLogger(), immediateTimer(t))

		assert.Same(t, permanent, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("Gives Up After Max Attempts", func(t *testing.T) {
		attempts := 0
		err := RetryOnTransientError(context.Background(), cfg, func(context.Context) error {
			attempts++
			return refused
		}, NewErrorMapper(), logger.NewNoopLogger(), immediateTimer(t))

		assert.Same(t, refused, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Canceled While Waiting", func(t *testing.T) {
		tp := mcore.NewMockTimeProvider(t)
		tp.EXPECT().After(mock.Anything).Return(make(chan time.Time)).Once()
		ctx, cancel := context.WithCancel(context.Background())

		err := RetryOnTransientError(ctx, cfg, func(context.Context) error {
			cancel()
			return refused
		}, NewErrorMapper(), logger.NewNoopLogger(), tp)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, cfg))

	cfg.JitterFactor = 0.5
	for attempt := range 4 {
		backoff := calculateBackoffWithJitter(attempt, cfg)
		assert.GreaterOrEqual(t, backoff, cfg.RetryInterval)
		assert.LessOrEqual(t, backoff, time.Duration(float64(cfg.MaxInterval)*1.5))
	}
}

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRetrier(t *testing.T, cfg Config) *Retrier {
	l, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)
	return New(cfg, l)
}

func fastConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
		RetryableFunc: func(err error) bool {
			return true
		},
	}
}

func TestExecute_SucceedsFirstTry(t *testing.T) {
	r := testRetrier(t, fastConfig())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	r := testRetrier(t, fastConfig())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	r := testRetrier(t, fastConfig())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("still broken")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "retry limit exceeded")
	assert.Equal(t, 4, calls) // initial attempt + 3 retries
}

func TestExecute_NonRetryableStopsImmediately(t *testing.T) {
	cfg := fastConfig()
	permanent := errors.New("permanent")
	cfg.RetryableFunc = func(err error) bool {
		return !errors.Is(err, permanent)
	}
	r := testRetrier(t, cfg)

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	r := testRetrier(t, fastConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(ctx context.Context) error {
		return errors.New("never succeeds")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

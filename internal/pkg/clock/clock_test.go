package clock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/card-forge/internal/pkg/clock"
)

func TestFixed(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := &clock.Fixed{At: at}
	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestSleep(t *testing.T) {
	t.Run("zero duration returns immediately", func(t *testing.T) {
		assert.NoError(t, clock.Sleep(context.Background(), 0))
	})

	t.Run("waits for the duration", func(t *testing.T) {
		start := time.Now()
		assert.NoError(t, clock.Sleep(context.Background(), 5*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	})

	t.Run("canceled context cuts the wait short", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := clock.Sleep(ctx, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

package promise_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/promisekit/pkg/promise"
)

func TestDelay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	start := time.Now()
	_, err := promise.Delay(50 * time.Millisecond).Await(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond,
		"delay guarantees a lower bound")
}

func TestDelayResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("delays a success", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		p := promise.DelayResult(promise.Resolved("value"), 50*time.Millisecond)

		v, err := p.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, "value", v)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("delay starts after the source succeeds", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		p := promise.DelayResult(delayedValue(1, 40*time.Millisecond), 40*time.Millisecond)

		_, err := p.Await(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("failure passes through without delay", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		start := time.Now()
		p := promise.DelayResult(promise.Rejected[int](boom), 200*time.Millisecond)

		_, err := p.Await(ctx)
		assert.Equal(t, boom, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond,
			"failures are not delayed")
	})
}

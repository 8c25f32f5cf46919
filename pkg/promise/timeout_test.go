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

func TestTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejects with the default error when the timer fires first", func(t *testing.T) {
		t.Parallel()
		p := promise.Timeout(never[int](), 40*time.Millisecond)

		_, err := p.Await(ctx)
		var timeoutErr *promise.TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, 40*time.Millisecond, timeoutErr.After)
		assert.Contains(t, err.Error(), "40", "message carries the literal duration")
	})

	t.Run("mirrors a source that settles in time", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		p := promise.Timeout(delayedValue("quick", 20*time.Millisecond), 500*time.Millisecond)

		v, err := p.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, "quick", v)
		assert.Less(t, time.Since(start), 400*time.Millisecond,
			"must not wait out the full timeout")
	})

	t.Run("mirrors a source failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		p := promise.Timeout(delayedError[int](boom, 10*time.Millisecond), 500*time.Millisecond)

		_, err := p.Await(ctx)
		assert.Equal(t, boom, err)
	})

	t.Run("uses the supplied failure value", func(t *testing.T) {
		t.Parallel()
		deadline := errors.New("deadline exceeded")
		p := promise.Timeout(never[string](), 30*time.Millisecond, deadline)

		_, err := p.Await(ctx)
		assert.Equal(t, deadline, err)
	})

	t.Run("late source settlement is inert", func(t *testing.T) {
		t.Parallel()
		p := promise.Timeout(delayedValue("late", 80*time.Millisecond), 20*time.Millisecond)

		_, err := p.Await(ctx)
		var timeoutErr *promise.TimeoutError
		require.ErrorAs(t, err, &timeoutErr)

		// Let the source fire; the delivered outcome must not change.
		time.Sleep(120 * time.Millisecond)
		_, err = p.Await(ctx)
		assert.ErrorAs(t, err, &timeoutErr)
	})
}

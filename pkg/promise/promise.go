package promise

import (
	"context"
)

// Promise represents the result of an asynchronous computation: a value of
// type T or an error, settled exactly once.
type Promise[T any] struct {
	cell  Cell
	done  chan struct{}
	value T
	err   error
}

// New constructs a promise through the active Provider and runs worker
// synchronously with its resolve/reject pair. The first call to either
// settles the promise; later calls are no-ops. A nil error passed to reject
// is replaced with ErrNilRejection. A panic inside worker is not intercepted.
func New[T any](worker func(resolve func(T), reject func(error))) *Promise[T] {
	p := fromCell[T](CurrentProvider().NewCell())
	worker(
		func(v T) { p.cell.Fulfill(v) },
		func(err error) {
			if err == nil {
				err = ErrNilRejection
			}
			p.cell.Fail(err)
		},
	)
	return p
}

func fromCell[T any](cell Cell) *Promise[T] {
	p := &Promise[T]{cell: cell, done: make(chan struct{})}
	cell.OnSettle(func(v any, err error) {
		if err != nil {
			p.err = err
		} else {
			tv, _ := v.(T)
			p.value = tv
		}
		close(p.done)
	})
	return p
}

// Resolved returns a promise already settled with v.
func Resolved[T any](v T) *Promise[T] {
	return New(func(resolve func(T), _ func(error)) {
		resolve(v)
	})
}

// Rejected returns a promise already settled with err.
func Rejected[T any](err error) *Promise[T] {
	return New(func(_ func(T), reject func(error)) {
		reject(err)
	})
}

// Subscribe registers fn to run once p settles. If p is already settled, fn
// runs immediately on the calling goroutine; otherwise it runs on the
// settling goroutine. On failure fn receives the zero value of T and the
// error.
func (p *Promise[T]) Subscribe(fn func(T, error)) {
	p.cell.OnSettle(func(v any, err error) {
		if err != nil {
			var zero T
			fn(zero, err)
			return
		}
		tv, _ := v.(T)
		fn(tv, nil)
	})
}

// Await blocks until p settles or ctx is done, whichever comes first, and
// returns the outcome. Context expiry only stops the wait; the underlying
// computation keeps running and the promise can still be awaited again.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// IsComplete reports whether p has settled, without blocking.
func (p *Promise[T]) IsComplete() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Then returns a promise settled with fn applied to p's value. A failure of p
// skips fn and passes through verbatim; an error returned by fn rejects the
// result.
func Then[T, U any](p *Promise[T], fn func(T) (U, error)) *Promise[U] {
	return New(func(resolve func(U), reject func(error)) {
		p.Subscribe(func(v T, err error) {
			if err != nil {
				reject(err)
				return
			}
			u, err := fn(v)
			if err != nil {
				reject(err)
				return
			}
			resolve(u)
		})
	})
}

// Catch returns a promise that mirrors p on success and recovers from a
// failure by settling with fn's result instead.
func Catch[T any](p *Promise[T], fn func(error) (T, error)) *Promise[T] {
	return New(func(resolve func(T), reject func(error)) {
		p.Subscribe(func(v T, err error) {
			if err == nil {
				resolve(v)
				return
			}
			recovered, err := fn(err)
			if err != nil {
				reject(err)
				return
			}
			resolve(recovered)
		})
	})
}

// Async executes fn on its own goroutine and returns the promise for its
// result. If ctx is already done before fn starts, the promise is rejected
// with the context error and fn is never called.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Promise[U] {
	return New(func(resolve func(U), reject func(error)) {
		go func() {
			// Early exit prevents starting work when context is pre-canceled.
			select {
			case <-ctx.Done():
				reject(ctx.Err())
				return
			default:
			}

			v, err := fn(ctx, param)
			if err != nil {
				reject(err)
				return
			}
			resolve(v)
		}()
	})
}

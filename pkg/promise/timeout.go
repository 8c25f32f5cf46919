package promise

import (
	"sync/atomic"
	"time"
)

// Timeout mirrors p unless the internal timer of duration d fires first, in
// which case it rejects with the supplied failure value, or with a
// *TimeoutError carrying d when none is given. The default failure value is
// constructed once, at call time. Whichever side loses still runs to
// completion but cannot change the already-settled outcome.
func Timeout[T any](p *Promise[T], d time.Duration, failure ...error) *Promise[T] {
	timeoutErr := error(&TimeoutError{After: d})
	if len(failure) > 0 && failure[0] != nil {
		timeoutErr = failure[0]
	}

	return New(func(resolve func(T), reject func(error)) {
		var won atomic.Bool
		timer := time.AfterFunc(d, func() {
			if won.CompareAndSwap(false, true) {
				reject(timeoutErr)
			}
		})
		p.Subscribe(func(v T, err error) {
			if !won.CompareAndSwap(false, true) {
				return
			}
			timer.Stop()
			if err != nil {
				reject(err)
				return
			}
			resolve(v)
		})
	})
}

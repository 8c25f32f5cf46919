package promise

import "time"

// Delay resolves after at least d has elapsed. Only the lower bound is
// guaranteed.
func Delay(d time.Duration) *Promise[struct{}] {
	return New(func(resolve func(struct{}), _ func(error)) {
		time.AfterFunc(d, func() {
			resolve(struct{}{})
		})
	})
}

// DelayResult resolves with p's value at least d after p succeeds. A failure
// of p passes through immediately, with no added delay.
func DelayResult[T any](p *Promise[T], d time.Duration) *Promise[T] {
	return New(func(resolve func(T), reject func(error)) {
		p.Subscribe(func(v T, err error) {
			if err != nil {
				reject(err)
				return
			}
			time.AfterFunc(d, func() {
				resolve(v)
			})
		})
	})
}

package promise

import "sync/atomic"

// Race settles with the outcome of whichever item settles first. Immediate
// values settle during traversal, so the first immediate value in input order
// wins over any promise that has not yet settled; the race is only genuinely
// asynchronous among the pending promises themselves. Continuations are still
// registered on every item after a winner is known, but they are inert. An
// empty input resolves immediately with the zero value.
func Race[T any](items []Item[T]) *Promise[T] {
	return New(func(resolve func(T), reject func(error)) {
		if len(items) == 0 {
			var zero T
			resolve(zero)
			return
		}
		var won atomic.Bool
		for _, it := range items {
			p, ok := it.pending()
			if !ok {
				if won.CompareAndSwap(false, true) {
					resolve(it.v)
				}
				continue
			}
			p.Subscribe(func(v T, err error) {
				if !won.CompareAndSwap(false, true) {
					return
				}
				if err != nil {
					reject(err)
					return
				}
				resolve(v)
			})
		}
	})
}

// RaceMap is Race for mapping-shaped inputs. Traversal follows Go's map
// enumeration order, so when several immediate values are present the winner
// among them is unspecified.
func RaceMap[T any](items map[string]Item[T]) *Promise[T] {
	return New(func(resolve func(T), reject func(error)) {
		if len(items) == 0 {
			var zero T
			resolve(zero)
			return
		}
		var won atomic.Bool
		for _, it := range items {
			p, ok := it.pending()
			if !ok {
				if won.CompareAndSwap(false, true) {
					resolve(it.v)
				}
				continue
			}
			p.Subscribe(func(v T, err error) {
				if !won.CompareAndSwap(false, true) {
					return
				}
				if err != nil {
					reject(err)
					return
				}
				resolve(v)
			})
		}
	})
}

package promise

import "sync"

// joiner tracks the outstanding settlements of one combinator invocation.
//
// The pending count starts at one: the traversal itself holds a unit until
// every item has been visited, so a collection whose items all settle
// synchronously (or that has no asynchronous items at all) cannot finalize
// mid-loop. The mutex also serializes accumulator mutation across item
// continuations, which may arrive on any goroutine.
type joiner struct {
	mu      sync.Mutex
	pending int
	settled bool
}

func newJoiner() *joiner {
	return &joiner{pending: 1}
}

// add records one more outstanding asynchronous item.
func (j *joiner) add() {
	j.mu.Lock()
	j.pending++
	j.mu.Unlock()
}

// finish runs store (if non-nil) under the joiner lock, releases one pending
// unit and reports whether the caller must finalize the aggregate. Finalize
// is reported at most once, and never after abort has claimed the aggregate.
func (j *joiner) finish(store func()) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if store != nil {
		store()
	}
	j.pending--
	if j.pending == 0 && !j.settled {
		j.settled = true
		return true
	}
	return false
}

// abort claims the right to settle the aggregate early. It reports false if
// the aggregate was already settled or claimed, making first-failure
// settlement exactly-once.
func (j *joiner) abort() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.settled {
		return false
	}
	j.settled = true
	return true
}

// store runs fn under the joiner lock without touching the pending count.
// Used for immediate values settled at traversal time.
func (j *joiner) store(fn func()) {
	j.mu.Lock()
	fn()
	j.mu.Unlock()
}

// condense drops the slots of xs that are not marked present, preserving the
// relative order of the remaining entries.
func condense[E any](xs []E, present []bool) []E {
	out := make([]E, 0, len(xs))
	for i, x := range xs {
		if present[i] {
			out = append(out, x)
		}
	}
	return out
}

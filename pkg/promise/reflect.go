package promise

// State describes how a single aggregation item settled.
type State string

const (
	// StateFulfilled marks an item whose promise completed successfully.
	StateFulfilled State = "fulfilled"
	// StateRejected marks an item whose promise completed with a failure.
	StateRejected State = "rejected"
	// StateNotPromise marks an item supplied as an immediate value.
	StateNotPromise State = "not-promise"
)

// Outcome is the per-item status record produced by Reflect and ReflectMap.
// Value carries the success value or the immediate value; Err carries the
// failure when State is StateRejected.
type Outcome[T any] struct {
	State State
	Value T
	Err   error
}

// Reflect waits for every item unconditionally and resolves with a status
// record per key. It never rejects: failures are reported in the records
// instead of the promise. An empty input resolves immediately.
func Reflect[T any](items []Item[T]) *Promise[[]Outcome[T]] {
	return New(func(resolve func([]Outcome[T]), _ func(error)) {
		j := newJoiner()
		outcomes := make([]Outcome[T], len(items))
		for i, it := range items {
			p, ok := it.pending()
			if !ok {
				v := it.v
				j.store(func() { outcomes[i] = Outcome[T]{State: StateNotPromise, Value: v} })
				continue
			}
			j.add()
			p.Subscribe(func(v T, err error) {
				done := j.finish(func() {
					if err != nil {
						outcomes[i] = Outcome[T]{State: StateRejected, Err: err}
						return
					}
					outcomes[i] = Outcome[T]{State: StateFulfilled, Value: v}
				})
				if done {
					resolve(outcomes)
				}
			})
		}
		if j.finish(nil) {
			resolve(outcomes)
		}
	})
}

// ReflectMap is Reflect for mapping-shaped inputs.
func ReflectMap[T any](items map[string]Item[T]) *Promise[map[string]Outcome[T]] {
	return New(func(resolve func(map[string]Outcome[T]), _ func(error)) {
		j := newJoiner()
		outcomes := make(map[string]Outcome[T], len(items))
		for key, it := range items {
			p, ok := it.pending()
			if !ok {
				v := it.v
				j.store(func() { outcomes[key] = Outcome[T]{State: StateNotPromise, Value: v} })
				continue
			}
			j.add()
			p.Subscribe(func(v T, err error) {
				done := j.finish(func() {
					if err != nil {
						outcomes[key] = Outcome[T]{State: StateRejected, Err: err}
						return
					}
					outcomes[key] = Outcome[T]{State: StateFulfilled, Value: v}
				})
				if done {
					resolve(outcomes)
				}
			})
		}
		if j.finish(nil) {
			resolve(outcomes)
		}
	})
}

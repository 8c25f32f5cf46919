package promise

type settleConfig struct {
	sparse bool
}

// SettleOption configures a Settle or SettleMap call.
type SettleOption func(*settleConfig)

// WithSparse preserves the original indices of the rejection accumulator,
// leaving nil gaps at the positions that did not fail. By default the
// accumulator is condensed: non-failing positions are removed and the
// remaining failures keep their original relative order under new indices.
// The option has no effect on SettleMap, where keys carry no position.
func WithSparse() SettleOption {
	return func(c *settleConfig) {
		c.sparse = true
	}
}

// Settle waits for every item to complete, success or failure, with no
// fail-fast: the aggregate never settles before the slowest item. If no item
// failed it resolves with the values in input order; otherwise it rejects
// with a *SettleError carrying every failure. An empty input resolves
// immediately.
func Settle[T any](items []Item[T], opts ...SettleOption) *Promise[[]T] {
	var cfg settleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return New(func(resolve func([]T), reject func(error)) {
		j := newJoiner()
		n := len(items)
		results := make([]T, n)
		failures := make([]error, n)
		failed := make([]bool, n)
		anyFailed := false

		finalize := func() {
			if !anyFailed {
				resolve(results)
				return
			}
			errs := failures
			if !cfg.sparse {
				errs = condense(failures, failed)
			}
			reject(&SettleError{Errors: errs})
		}

		for i, it := range items {
			p, ok := it.pending()
			if !ok {
				v := it.v
				j.store(func() { results[i] = v })
				continue
			}
			j.add()
			p.Subscribe(func(v T, err error) {
				done := j.finish(func() {
					if err != nil {
						failures[i] = err
						failed[i] = true
						anyFailed = true
						return
					}
					results[i] = v
				})
				if done {
					finalize()
				}
			})
		}
		if j.finish(nil) {
			finalize()
		}
	})
}

// SettleMap is Settle for mapping-shaped inputs. On failure it rejects with
// a *SettleMapError holding one entry per failed key; successful keys do not
// appear in the rejection value.
func SettleMap[T any](items map[string]Item[T], opts ...SettleOption) *Promise[map[string]T] {
	// Options are accepted for signature symmetry; sparse carries no
	// meaning for mapping shapes.
	var cfg settleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return New(func(resolve func(map[string]T), reject func(error)) {
		j := newJoiner()
		results := make(map[string]T, len(items))
		failures := make(map[string]error)

		finalize := func() {
			if len(failures) == 0 {
				resolve(results)
				return
			}
			reject(&SettleMapError{Errors: failures})
		}

		for key, it := range items {
			p, ok := it.pending()
			if !ok {
				v := it.v
				j.store(func() { results[key] = v })
				continue
			}
			j.add()
			p.Subscribe(func(v T, err error) {
				done := j.finish(func() {
					if err != nil {
						failures[key] = err
						return
					}
					results[key] = v
				})
				if done {
					finalize()
				}
			})
		}
		if j.finish(nil) {
			finalize()
		}
	})
}

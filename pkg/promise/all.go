package promise

// All waits for every item to succeed and resolves with their values in
// input order. The first failure, in completion order rather than input
// order, rejects the aggregate immediately with that item's error; later
// completions are still observed but cannot change the outcome. An empty
// input resolves immediately with an empty result.
func All[T any](items []Item[T]) *Promise[[]T] {
	return New(func(resolve func([]T), reject func(error)) {
		j := newJoiner()
		results := make([]T, len(items))
		for i, it := range items {
			p, ok := it.pending()
			if !ok {
				v := it.v
				j.store(func() { results[i] = v })
				continue
			}
			j.add()
			p.Subscribe(func(v T, err error) {
				if err != nil {
					if j.abort() {
						reject(err)
					}
					j.finish(nil)
					return
				}
				if j.finish(func() { results[i] = v }) {
					resolve(results)
				}
			})
		}
		if j.finish(nil) {
			resolve(results)
		}
	})
}

// AllMap is All for mapping-shaped inputs: the result holds one entry per
// input key.
func AllMap[T any](items map[string]Item[T]) *Promise[map[string]T] {
	return New(func(resolve func(map[string]T), reject func(error)) {
		j := newJoiner()
		results := make(map[string]T, len(items))
		for key, it := range items {
			p, ok := it.pending()
			if !ok {
				v := it.v
				j.store(func() { results[key] = v })
				continue
			}
			j.add()
			p.Subscribe(func(v T, err error) {
				if err != nil {
					if j.abort() {
						reject(err)
					}
					j.finish(nil)
					return
				}
				if j.finish(func() { results[key] = v }) {
					resolve(results)
				}
			})
		}
		if j.finish(nil) {
			resolve(results)
		}
	})
}

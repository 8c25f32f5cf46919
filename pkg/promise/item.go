package promise

// Item is a single aggregation input: either a pending promise or an
// immediate plain value. The tag is fixed at construction, so the combinators
// decide behavior once per item at traversal time. Immediate values settle
// synchronously during traversal and contribute to the output right away.
type Item[T any] struct {
	p *Promise[T]
	v T
}

// Value wraps an immediate value.
func Value[T any](v T) Item[T] {
	return Item[T]{v: v}
}

// Wrap wraps a pending promise. Wrapping nil yields an immediate zero value.
func Wrap[T any](p *Promise[T]) Item[T] {
	return Item[T]{p: p}
}

// Values builds a sequence of immediate items.
func Values[T any](vs ...T) []Item[T] {
	items := make([]Item[T], len(vs))
	for i, v := range vs {
		items[i] = Value(v)
	}
	return items
}

// Items builds a sequence of promise items.
func Items[T any](ps ...*Promise[T]) []Item[T] {
	items := make([]Item[T], len(ps))
	for i, p := range ps {
		items[i] = Wrap(p)
	}
	return items
}

func (it Item[T]) pending() (*Promise[T], bool) {
	return it.p, it.p != nil
}

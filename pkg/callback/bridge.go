package callback

import (
	"strings"

	"github.com/dmitrymomot/promisekit/pkg/promise"
)

// Callbackify returns a promise mirroring p and additionally reports p's
// outcome to cb using the error-first convention: on success cb receives
// (nil, value), on failure (err, zero value).
func Callbackify[T any](p *promise.Promise[T], cb func(error, T)) *promise.Promise[T] {
	return promise.New(func(resolve func(T), reject func(error)) {
		p.Subscribe(func(v T, err error) {
			cb(err, v)
			if err != nil {
				reject(err)
				return
			}
			resolve(v)
		})
	})
}

// Promisify adapts a callback-style function with no leading parameters into
// a function returning a promise per call.
func Promisify[T any](fn func(cb func(error, T))) func() *promise.Promise[T] {
	return func() *promise.Promise[T] {
		return promise.New(func(resolve func(T), reject func(error)) {
			fn(settler(resolve, reject))
		})
	}
}

// Promisify1 adapts a callback-style function with one leading parameter.
func Promisify1[A, T any](fn func(a A, cb func(error, T))) func(A) *promise.Promise[T] {
	return func(a A) *promise.Promise[T] {
		return promise.New(func(resolve func(T), reject func(error)) {
			fn(a, settler(resolve, reject))
		})
	}
}

// Promisify2 adapts a callback-style function with two leading parameters.
func Promisify2[A, B, T any](fn func(a A, b B, cb func(error, T))) func(A, B) *promise.Promise[T] {
	return func(a A, b B) *promise.Promise[T] {
		return promise.New(func(resolve func(T), reject func(error)) {
			fn(a, b, settler(resolve, reject))
		})
	}
}

func settler[T any](resolve func(T), reject func(error)) func(error, T) {
	return func(err error, v T) {
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	}
}

// Suffix is appended to a method name to form its bridged sibling.
const Suffix = "Async"

// Func is the uniform callback-style method shape bridged by PromisifyAll.
type Func func(args []any, cb func(err error, v any))

// AsyncFunc is the bridged shape stored under the suffixed name.
type AsyncFunc func(args ...any) *promise.Promise[any]

// MethodSet is an explicitly registered set of named members. Only entries
// holding Func values are eligible for bridging; anything else is carried
// along untouched.
type MethodSet map[string]any

// PromisifyAll adds a "<name>Async" AsyncFunc sibling for every eligible
// Func in the set, mutating and returning the same set. An entry is skipped
// when its name already ends with Suffix, when its suffixed sibling is
// already present, or when its value is not a Func, so repeated calls are
// idempotent and never overwrite existing members.
func PromisifyAll(methods MethodSet) MethodSet {
	// Snapshot the names first: eligibility is decided against the set as it
	// was when the call started, not against siblings added along the way.
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}

	for _, name := range names {
		if strings.HasSuffix(name, Suffix) {
			continue
		}
		if _, exists := methods[name+Suffix]; exists {
			continue
		}
		fn, ok := methods[name].(Func)
		if !ok {
			continue
		}
		methods[name+Suffix] = AsyncFunc(func(args ...any) *promise.Promise[any] {
			return promise.New(func(resolve func(any), reject func(error)) {
				fn(args, func(err error, v any) {
					if err != nil {
						reject(err)
						return
					}
					resolve(v)
				})
			})
		})
	}
	return methods
}

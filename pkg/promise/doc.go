// Package promise provides generic deferred results and a set of combinators
// for aggregating, racing, delaying and timing them out.
//
// The package is centred around the generic type Promise that represents the
// eventual outcome of an asynchronous operation: a value of type T or an
// error, settled exactly once. A Promise can be obtained from New, which runs
// a worker function that receives a resolve/reject pair, from the pre-settled
// constructors Resolved and Rejected, or from Async, which starts the
// supplied function in its own goroutine and immediately returns the promise
// for its result. The caller can then wait for completion with Await, poll
// the state with IsComplete, or register a completion continuation with
// Subscribe.
//
// On top of the single-promise surface, the aggregation combinators
// coordinate a keyed collection of items, where every item is either a
// pending promise or an immediate plain value (see Item, Value and Wrap):
//
//   - All / AllMap wait for every item and fail fast on the first failure.
//   - Settle / SettleMap wait for every item unconditionally and collect all
//     failures into the rejection value.
//   - Race / RaceMap mirror whichever item settles first.
//   - Reflect / ReflectMap always succeed, reporting a per-item Outcome.
//
// Sequence-shaped inputs ([]Item[T]) produce sequence-shaped results and
// mapping-shaped inputs (map[string]Item[T]) produce mapping-shaped results,
// key for key. The timing combinators Delay, DelayResult and Timeout add
// lower-bound delays and deadline failures, and Then/Catch compose
// continuations into new promises.
//
// # Usage
//
//	import (
//	    "context"
//	    "time"
//
//	    "github.com/dmitrymomot/promisekit/pkg/promise"
//	)
//
//	func main() {
//	    ctx := context.Background()
//
//	    users := promise.Async(ctx, 42, func(_ context.Context, id int) (string, error) {
//	        return loadUser(id)
//	    })
//	    orders := promise.Async(ctx, 42, func(_ context.Context, id int) (string, error) {
//	        return loadOrders(id)
//	    })
//
//	    both := promise.All([]promise.Item[string]{
//	        promise.Wrap(users),
//	        promise.Wrap(orders),
//	        promise.Value("cached"),
//	    })
//
//	    results, err := promise.Timeout(both, 2*time.Second).Await(ctx)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(results)
//	}
//
// # Swappable Settlement Provider
//
// Every promise constructed by this package, combinator outputs included, is
// backed by a settlement Cell obtained from the process-wide Provider.
// SetProvider replaces the provider for all subsequently constructed
// promises, which lets callers substitute an alternative deferred-result
// implementation once and have the substitution apply transitively to every
// combinator. Promises that already exist keep their original cells;
// coordinating a swap while other operations are in flight is the caller's
// responsibility.
//
// # Error Handling
//
// Failure values are propagated verbatim: no combinator wraps, coerces or
// replaces an item's error. The only synthesized failures are TimeoutError,
// used when Timeout fires without an explicit failure value, and
// ErrNilRejection, which replaces a nil error passed to a reject callback so
// a failure can never be mistaken for a success. Settle's rejection value is
// the collected failure accumulator itself, carried on SettleError or
// SettleMapError. A panic inside a worker passed to New is not intercepted.
//
// # Concurrency
//
// Combinators never block the calling goroutine; continuations run on
// whichever goroutine settles the item. Each combinator invocation owns its
// accumulators and serializes continuation effects internally, so user code
// only needs to synchronize state it shares across continuations itself.
// Losing continuations in Race and Timeout still run to completion but
// cannot change the already-settled outcome.
package promise

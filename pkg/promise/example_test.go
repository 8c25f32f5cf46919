package promise_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/promisekit/pkg/promise"
)

func ExampleAll() {
	ctx := context.Background()

	p := promise.All([]promise.Item[int]{
		promise.Wrap(promise.Resolved(1)),
		promise.Value(2),
		promise.Wrap(promise.Resolved(3)),
	})

	results, err := p.Await(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(results)
	// Output: [1 2 3]
}

func ExampleReflect() {
	ctx := context.Background()

	p := promise.Reflect([]promise.Item[string]{
		promise.Wrap(promise.Resolved("ok")),
		promise.Wrap(promise.Rejected[string](errors.New("boom"))),
		promise.Value("plain"),
	})

	outcomes, _ := p.Await(ctx)
	for _, o := range outcomes {
		fmt.Println(o.State)
	}
	// Output:
	// fulfilled
	// rejected
	// not-promise
}

func ExampleTimeout() {
	ctx := context.Background()

	slow := promise.New(func(resolve func(string), _ func(error)) {
		time.AfterFunc(time.Second, func() { resolve("too late") })
	})

	_, err := promise.Timeout(slow, 10*time.Millisecond).Await(ctx)
	fmt.Println(err)
	// Output: promise: timeout after 10 milliseconds
}

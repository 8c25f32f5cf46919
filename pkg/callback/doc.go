// Package callback bridges between callback-style asynchronous functions and
// the promise package.
//
// Legacy asynchronous APIs report their outcome through a trailing callback
// following the error-first convention: the callback receives (err, value)
// and a nil error signals success. This package adapts such functions into
// promise-returning ones (Promisify, Promisify1, Promisify2, PromisifyAll)
// and, in the opposite direction, feeds a promise's outcome into an
// error-first callback (Callbackify).
//
// Every promise produced here is constructed through the promise package's
// settlement provider, so swapping the provider with promise.SetProvider
// applies to bridged functions as well.
//
// # Bulk Bridging
//
// PromisifyAll works over an explicitly registered MethodSet rather than
// reflecting over arbitrary objects: callers list the (name, Func) pairs to
// bridge, and for every eligible entry a "<name>Async" sibling is added to
// the same set. Entries whose name already carries the suffix, entries whose
// suffixed sibling already exists, and entries that are not Func values are
// left untouched, so repeated calls are idempotent.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/promisekit/pkg/callback"
//	    "github.com/dmitrymomot/promisekit/pkg/promise"
//	)
//
//	readFile := callback.Promisify1(func(path string, cb func(error, []byte)) {
//	    go func() { cb(legacyRead(path)) }()
//	})
//
//	data, err := readFile("config.json").Await(ctx)
package callback

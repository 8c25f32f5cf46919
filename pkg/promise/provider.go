package promise

import (
	"sync"
	"sync/atomic"
)

// Cell is an exactly-once settlement slot. It is the untyped core behind
// every Promise: Fulfill and Fail report whether the call settled the cell,
// and OnSettle registers a continuation that runs once the cell is settled.
// A continuation registered after settlement runs immediately on the calling
// goroutine; otherwise it runs on the settling goroutine, in registration
// order.
type Cell interface {
	Fulfill(v any) bool
	Fail(err error) bool
	OnSettle(fn func(v any, err error))
}

// Provider constructs the settlement cells backing every promise created by
// this package.
type Provider interface {
	NewCell() Cell
}

type providerBox struct {
	p Provider
}

var activeProvider atomic.Pointer[providerBox]

func init() {
	activeProvider.Store(&providerBox{p: ChannelProvider{}})
}

// SetProvider replaces the provider used by every subsequently constructed
// promise, combinator outputs included. Promises that already exist keep
// their original cells; swapping while other operations are in flight is the
// caller's responsibility to coordinate. A nil provider restores the default
// ChannelProvider.
func SetProvider(p Provider) {
	if p == nil {
		p = ChannelProvider{}
	}
	activeProvider.Store(&providerBox{p: p})
}

// CurrentProvider returns the provider in effect.
func CurrentProvider() Provider {
	return activeProvider.Load().p
}

// ChannelProvider is the default Provider: a mutex-guarded cell with an
// explicit settled flag and a continuation list.
type ChannelProvider struct{}

func (ChannelProvider) NewCell() Cell {
	return &channelCell{}
}

type channelCell struct {
	mu        sync.Mutex
	settled   bool
	value     any
	err       error
	callbacks []func(v any, err error)
}

func (c *channelCell) Fulfill(v any) bool {
	return c.settle(v, nil)
}

func (c *channelCell) Fail(err error) bool {
	return c.settle(nil, err)
}

func (c *channelCell) settle(v any, err error) bool {
	c.mu.Lock()
	if c.settled {
		c.mu.Unlock()
		return false
	}
	c.settled = true
	c.value = v
	c.err = err
	callbacks := c.callbacks
	c.callbacks = nil
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn(v, err)
	}
	return true
}

func (c *channelCell) OnSettle(fn func(v any, err error)) {
	c.mu.Lock()
	if !c.settled {
		c.callbacks = append(c.callbacks, fn)
		c.mu.Unlock()
		return
	}
	v, err := c.value, c.err
	c.mu.Unlock()

	fn(v, err)
}

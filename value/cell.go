package value

import (
	"sync"

	"github.com/npillmayer/weft/lifecycle"
)

// Cell is a streaming value: it holds a current value and emits every
// new value to its subscribers.
type Cell[T any] struct {
	mu   sync.Mutex
	v    T
	subs subscribers[Receiver[T]]
}

// NewCell creates a cell with an initial value.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

// Set replaces the current value and emits it.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
	c.subs.each(func(r Receiver[T]) {
		r.Event(v)
	})
}

// Subscribe delivers every new value to recv until scope is aborted.
// With Echo, the current value is delivered to recv.Init right away.
func (c *Cell[T]) Subscribe(scope *lifecycle.Scope, recv Receiver[T], opts ...SubscribeOption) {
	if !c.subs.add(scope, recv) {
		return
	}
	tracer().Debugf("cell subscription, %d subscribers", c.subs.len())
	if wantsEcho(opts) {
		recv.Init(c.Get())
	}
}

// SubscribeAny is part of interface Observable.
func (c *Cell[T]) SubscribeAny(scope *lifecycle.Scope, recv Receiver[any], opts ...SubscribeOption) {
	c.Subscribe(scope, anyReceiver[T]{r: recv}, opts...)
}

// Subscribers returns the number of live subscriptions.
func (c *Cell[T]) Subscribers() int {
	return c.subs.len()
}

var _ Observable = &Cell[int]{}
var _ Source[int] = &Cell[int]{}

package value

import (
	"slices"
	"sync"
)

// Promise is a one-shot asynchronous value. Continuations registered with
// Then run synchronously inside the call to Resolve, or immediately if the
// promise has already been resolved.
type Promise[T any] struct {
	mu            sync.Mutex
	resolved      bool
	value         T
	continuations []*continuation[T]
}

type continuation[T any] struct {
	fn func(T)
}

// NewPromise creates an unresolved promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{}
}

// Resolved creates a promise which is already resolved to v.
func Resolved[T any](v T) *Promise[T] {
	return &Promise[T]{resolved: true, value: v}
}

// Resolve resolves p to v and runs all pending continuations. Only the first
// call has an effect; Resolve returns false for subsequent calls.
func (p *Promise[T]) Resolve(v T) bool {
	p.mu.Lock()
	if p.resolved {
		p.mu.Unlock()
		return false
	}
	p.resolved, p.value = true, v
	conts := p.continuations
	p.continuations = nil
	p.mu.Unlock()
	for _, c := range conts {
		c.fn(v)
	}
	return true
}

// Then registers a continuation. Calling cancel before p resolves drops
// fn; afterwards it is a no-op.
func (p *Promise[T]) Then(fn func(T)) (cancel func()) {
	p.mu.Lock()
	if p.resolved {
		v := p.value
		p.mu.Unlock()
		fn(v)
		return func() {}
	}
	c := &continuation[T]{fn: fn}
	p.continuations = append(p.continuations, c)
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if i := slices.Index(p.continuations, c); i >= 0 {
			p.continuations = slices.Delete(p.continuations, i, i+1)
		}
	}
}

// Pending returns the number of continuations waiting for p to resolve.
func (p *Promise[T]) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.continuations)
}

// Value returns the resolved value, if any.
func (p *Promise[T]) Value() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.resolved
}

// AwaitAny is part of interface Awaitable.
func (p *Promise[T]) AwaitAny(fn func(any)) (cancel func()) {
	return p.Then(func(v T) { fn(v) })
}

var _ Awaitable = &Promise[int]{}

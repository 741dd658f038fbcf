package lifecycle

import (
	"sync"
)

// Disposable is a resource which may be released.
// Dispose must be safe to call more than once.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to a Disposable. The function is called
// on every call to Dispose; wrap it with Once for idempotence.
type DisposeFunc func()

// Dispose calls f.
func (f DisposeFunc) Dispose() {
	if f != nil {
		f()
	}
}

type noop struct{}

func (noop) Dispose()     {}
func (noop) IsNoop() bool { return true }

// Noop is a disposable which does nothing.
var Noop Disposable = noop{}

// IsNoop is true for nil disposables, Noop, and disposables which report
// themselves as no-ops by a method IsNoop() bool.
func IsNoop(d Disposable) bool {
	if d == nil {
		return true
	}
	if n, ok := d.(interface{ IsNoop() bool }); ok {
		return n.IsNoop()
	}
	return false
}

// Once returns a disposable which calls f on its first Dispose only.
func Once(f func()) Disposable {
	if f == nil {
		return Noop
	}
	return &once{f: f}
}

type once struct {
	o sync.Once
	f func()
}

func (d *once) Dispose() {
	d.o.Do(d.f)
}

// Disposer collects disposables and releases them together.
// The zero value is ready to use.
type Disposer struct {
	mu       sync.Mutex
	items    []Disposable
	disposed bool
}

// Add registers d. No-ops are skipped. If the disposer has already been
// disposed, d is disposed immediately.
func (dd *Disposer) Add(d Disposable) {
	if IsNoop(d) {
		return
	}
	dd.mu.Lock()
	if dd.disposed {
		dd.mu.Unlock()
		d.Dispose()
		return
	}
	dd.items = append(dd.items, d)
	dd.mu.Unlock()
}

// AddFunc registers a function to be called on disposal.
func (dd *Disposer) AddFunc(f func()) {
	if f != nil {
		dd.Add(DisposeFunc(f))
	}
}

// Dispose releases all registered disposables in reverse order.
// Subsequent calls have no effect.
func (dd *Disposer) Dispose() {
	dd.mu.Lock()
	if dd.disposed {
		dd.mu.Unlock()
		return
	}
	dd.disposed = true
	items := dd.items
	dd.items = nil
	dd.mu.Unlock()
	tracer().Debugf("disposing %d resources", len(items))
	for i := len(items) - 1; i >= 0; i-- {
		items[i].Dispose()
	}
}

// Disposed is true after Dispose has been called.
func (dd *Disposer) Disposed() bool {
	dd.mu.Lock()
	defer dd.mu.Unlock()
	return dd.disposed
}

// Len returns the number of disposables waiting for disposal.
func (dd *Disposer) Len() int {
	dd.mu.Lock()
	defer dd.mu.Unlock()
	return len(dd.items)
}

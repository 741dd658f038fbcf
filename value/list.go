package value

import (
	"fmt"
	"sync"

	"github.com/npillmayer/weft/lifecycle"
)

// ListOp is the kind of mutation reported by a List.
type ListOp int8

// Mutations of lists.
const (
	OpPush ListOp = iota
	OpPop
	OpUnshift
	OpShift
	OpSplice
	OpSet
	OpBatch
)

func (op ListOp) String() string {
	switch op {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpUnshift:
		return "unshift"
	case OpShift:
		return "shift"
	case OpSplice:
		return "splice"
	case OpSet:
		return "set"
	case OpBatch:
		return "batch"
	}
	return fmt.Sprintf("ListOp(%d)", int8(op))
}

// ListEvent describes a single mutation of a list.
//
//	OpPush, OpUnshift:  Items have been appended / prepended
//	OpPop, OpShift:     the last / first item has been removed
//	OpSplice:           DeleteCount items at Index have been replaced by Items
//	OpSet:              the item at Index has been replaced by Items[0]
//	OpBatch:            the events in Batch have happened, in order
//
// An OpSet without Items removes the item at Index.
type ListEvent[T any] struct {
	Op          ListOp
	Index       int
	DeleteCount int
	Items       []T
	Batch       []ListEvent[T]
}

// ListReceiver receives the mutations of a streaming list.
type ListReceiver[T any] interface {
	Init(items []T)
	Event(ev ListEvent[T])
}

// ListSource is a streaming list.
type ListSource[T any] interface {
	SubscribeList(scope *lifecycle.Scope, recv ListReceiver[T])
}

// List is a streaming array. Every mutation is emitted as a ListEvent.
type List[T any] struct {
	mu      sync.Mutex
	items   []T
	pending *[]ListEvent[T] // non-nil while batching
	subs    subscribers[ListReceiver[T]]
}

// NewList creates a list with initial items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: append([]T(nil), items...)}
}

// Items returns a snapshot of the items.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// At returns the item at index i.
func (l *List[T]) At(i int) T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items[i]
}

// emit is called with l.mu held and releases it.
func (l *List[T]) emit(ev ListEvent[T]) {
	if l.pending != nil {
		*l.pending = append(*l.pending, ev)
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	tracer().Debugf("list %s at %d", ev.Op, ev.Index)
	l.subs.each(func(r ListReceiver[T]) { r.Event(ev) })
}

// Push appends items.
func (l *List[T]) Push(items ...T) {
	if len(items) == 0 {
		return
	}
	l.mu.Lock()
	at := len(l.items)
	l.items = append(l.items, items...)
	l.emit(ListEvent[T]{Op: OpPush, Index: at, Items: append([]T(nil), items...)})
}

// Pop removes and returns the last item.
func (l *List[T]) Pop() (T, bool) {
	var zero T
	l.mu.Lock()
	if len(l.items) == 0 {
		l.mu.Unlock()
		return zero, false
	}
	at := len(l.items) - 1
	last := l.items[at]
	l.items[at] = zero
	l.items = l.items[:at]
	l.emit(ListEvent[T]{Op: OpPop, Index: at, DeleteCount: 1})
	return last, true
}

// Unshift prepends items.
func (l *List[T]) Unshift(items ...T) {
	if len(items) == 0 {
		return
	}
	l.mu.Lock()
	l.items = append(append([]T(nil), items...), l.items...)
	l.emit(ListEvent[T]{Op: OpUnshift, Items: append([]T(nil), items...)})
}

// Shift removes and returns the first item.
func (l *List[T]) Shift() (T, bool) {
	var zero T
	l.mu.Lock()
	if len(l.items) == 0 {
		l.mu.Unlock()
		return zero, false
	}
	first := l.items[0]
	l.items = append([]T(nil), l.items[1:]...)
	l.emit(ListEvent[T]{Op: OpShift, DeleteCount: 1})
	return first, true
}

// Splice removes deleteCount items at index and inserts items in their place.
// A negative index counts from the end. index and deleteCount are clamped to
// the bounds of the list. Splice returns the removed items.
func (l *List[T]) Splice(index int, deleteCount int, items ...T) []T {
	l.mu.Lock()
	n := len(l.items)
	if index < 0 {
		index = max(n+index, 0)
	}
	index = min(index, n)
	deleteCount = max(min(deleteCount, n-index), 0)
	if deleteCount == 0 && len(items) == 0 {
		l.mu.Unlock()
		return nil
	}
	removed := append([]T(nil), l.items[index:index+deleteCount]...)
	rest := append([]T(nil), l.items[index+deleteCount:]...)
	l.items = append(append(l.items[:index], items...), rest...)
	l.emit(ListEvent[T]{Op: OpSplice, Index: index, DeleteCount: deleteCount,
		Items: append([]T(nil), items...)})
	return removed
}

// SetAt replaces the item at index i.
func (l *List[T]) SetAt(i int, v T) {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		panic(fmt.Sprintf("list index %d out of range [0:%d]", i, len(l.items)))
	}
	l.items[i] = v
	l.emit(ListEvent[T]{Op: OpSet, Index: i, Items: []T{v}})
}

// Batch runs fn and emits all mutations performed by fn as a single
// OpBatch event. Nested batches are flattened into the outermost one.
func (l *List[T]) Batch(fn func(*List[T])) {
	l.mu.Lock()
	if l.pending != nil {
		l.mu.Unlock()
		fn(l)
		return
	}
	var events []ListEvent[T]
	l.pending = &events
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.pending = nil
		if len(events) == 0 {
			l.mu.Unlock()
			return
		}
		l.emit(ListEvent[T]{Op: OpBatch, Batch: events})
	}()
	fn(l)
}

// SubscribeList is part of interface ListSource. The current items are
// delivered to recv.Init right away.
func (l *List[T]) SubscribeList(scope *lifecycle.Scope, recv ListReceiver[T]) {
	if l.subs.add(scope, recv) {
		recv.Init(l.Items())
	}
}

// Subscribers returns the number of live subscriptions.
func (l *List[T]) Subscribers() int {
	return l.subs.len()
}

// Apply replays ev onto items and returns the result. It is the reference
// semantics of list events, used by receivers which mirror a list.
func Apply[T any](items []T, ev ListEvent[T]) []T {
	switch ev.Op {
	case OpPush:
		return append(items, ev.Items...)
	case OpPop:
		if len(items) > 0 {
			return items[:len(items)-1]
		}
	case OpUnshift:
		return append(append([]T(nil), ev.Items...), items...)
	case OpShift:
		if len(items) > 0 {
			return items[1:]
		}
	case OpSplice:
		rest := append([]T(nil), items[ev.Index+ev.DeleteCount:]...)
		return append(append(items[:ev.Index], ev.Items...), rest...)
	case OpSet:
		if ev.Index < 0 || ev.Index >= len(items) {
			break
		}
		if len(ev.Items) == 0 {
			return append(items[:ev.Index], items[ev.Index+1:]...)
		}
		items[ev.Index] = ev.Items[0]
	case OpBatch:
		for _, sub := range ev.Batch {
			items = Apply(items, sub)
		}
	}
	return items
}

var _ ListSource[int] = &List[int]{}

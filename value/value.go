package value

import (
	"sync"

	"github.com/npillmayer/weft/lifecycle"
)

// Receiver receives the values of a streaming source. Init is called with
// the current value when subscribing with Echo, Event with every new value.
type Receiver[T any] interface {
	Init(T)
	Event(T)
}

// ReceiverFunc adapts a function to a Receiver, for both Init and Event.
type ReceiverFunc[T any] func(T)

// Init calls f.
func (f ReceiverFunc[T]) Init(v T) { f(v) }

// Event calls f.
func (f ReceiverFunc[T]) Event(v T) { f(v) }

// SubscribeOption configures a subscription.
type SubscribeOption struct {
	echo bool
}

// Echo requests the current value to be replayed synchronously on subscription.
func Echo() SubscribeOption {
	return SubscribeOption{echo: true}
}

func wantsEcho(opts []SubscribeOption) bool {
	for _, o := range opts {
		if o.echo {
			return true
		}
	}
	return false
}

// Source is a typed streaming value.
type Source[T any] interface {
	Subscribe(scope *lifecycle.Scope, recv Receiver[T], opts ...SubscribeOption)
}

// Observable is the type-erased form of a streaming value.
type Observable interface {
	SubscribeAny(scope *lifecycle.Scope, recv Receiver[any], opts ...SubscribeOption)
}

// Awaitable is the type-erased form of a one-shot asynchronous value.
// AwaitAny registers fn for the result; cancel withdraws it.
type Awaitable interface {
	AwaitAny(fn func(any)) (cancel func())
}

// IsAsync is true for one-shot asynchronous values.
func IsAsync(v any) bool {
	_, ok := v.(Awaitable)
	return ok
}

// IsStreaming is true for streaming values.
func IsStreaming(v any) bool {
	_, ok := v.(Observable)
	return ok
}

// IsLiteral is true for values which are neither asynchronous nor streaming.
func IsLiteral(v any) bool {
	return !IsAsync(v) && !IsStreaming(v)
}

// --- Subscriber lists ------------------------------------------------------

type subscription[R any] struct {
	scope *lifecycle.Scope
	recv  R
}

// subscribers is a list of receivers, each scoped by a lifecycle.Scope.
type subscribers[R any] struct {
	mu   sync.Mutex
	subs []*subscription[R]
}

// add registers recv. It returns false if scope is already aborted.
func (l *subscribers[R]) add(scope *lifecycle.Scope, recv R) bool {
	if scope.Aborted() {
		return false
	}
	sub := &subscription[R]{scope: scope, recv: recv}
	l.mu.Lock()
	l.subs = append(l.subs, sub)
	l.mu.Unlock()
	scope.OnAbort(func() { l.remove(sub) })
	return true
}

func (l *subscribers[R]) remove(sub *subscription[R]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.subs {
		if s == sub {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return
		}
	}
}

// each calls f for every receiver whose scope is still alive. Receivers
// subscribing during delivery do not see the current delivery.
func (l *subscribers[R]) each(f func(R)) {
	l.mu.Lock()
	subs := make([]*subscription[R], len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()
	for _, s := range subs {
		if !s.scope.Aborted() {
			f(s.recv)
		}
	}
}

func (l *subscribers[R]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

// anyReceiver adapts a Receiver[any] to a Receiver[T].
type anyReceiver[T any] struct {
	r Receiver[any]
}

func (a anyReceiver[T]) Init(v T)  { a.r.Init(v) }
func (a anyReceiver[T]) Event(v T) { a.r.Event(v) }

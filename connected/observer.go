package connected

import (
	"slices"
	"weak"

	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/lifecycle"
	"golang.org/x/net/html"
)

// Observer dispatches connection changes of nodes to subscribers.
// The zero value is ready to use.
type Observer struct {
	sources dom.NodeMap[*source]
}

// source is the backing observation of a single node. It must not
// reference the node.
type source struct {
	subs []*subscriber
	stop func() // nil while offline
}

type subscriber struct {
	fn func(connected bool)
}

// Default is the observer used by Watch.
var Default = &Observer{}

// Watch subscribes fn to connection changes of n, using the default observer.
func Watch(scope *lifecycle.Scope, n *html.Node, fn func(connected bool)) {
	Default.Subscribe(scope, n, fn)
}

// Subscribe calls fn whenever n is connected to or disconnected from a
// document, until scope is aborted.
func (o *Observer) Subscribe(scope *lifecycle.Scope, n *html.Node, fn func(connected bool)) {
	if scope.Aborted() {
		return
	}
	sub := &subscriber{fn: fn}
	var src *source
	o.sources.Update(n, func(old *source, present bool) (*source, bool) {
		if !present {
			old = &source{}
		}
		old.subs = append(old.subs, sub)
		src = old
		return old, true
	})
	if src.stop == nil {
		tracer().Debugf("source for %s goes online", dom.Describe(n))
		src.stop = dom.ObserveConnection(n, src.dispatch)
	}
	key := weak.Make(n)
	scope.OnAbort(func() {
		o.unsubscribe(key, src, sub)
	})
}

func (o *Observer) unsubscribe(key weak.Pointer[html.Node], src *source, sub *subscriber) {
	i := slices.Index(src.subs, sub)
	if i < 0 {
		return
	}
	src.subs = slices.Delete(src.subs, i, i+1)
	if len(src.subs) > 0 {
		return
	}
	tracer().Debugf("source goes offline")
	if src.stop != nil {
		src.stop()
		src.stop = nil
	}
	if n := key.Value(); n != nil {
		o.sources.Update(n, func(cur *source, present bool) (*source, bool) {
			return cur, present && cur != src
		})
	}
}

func (src *source) dispatch(connected bool) {
	for _, sub := range slices.Clone(src.subs) {
		sub.fn(connected)
	}
}

// Sources returns the number of backing sources currently held.
func (o *Observer) Sources() int {
	return o.sources.Len()
}

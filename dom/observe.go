package dom

import (
	"weak"

	"golang.org/x/net/html"
)

// connectionObserver is a single registration for connection changes of a node.
// Registrations are not shared: every call to ObserveConnection creates a
// new one, the way every native observer in a browser is a separate object.
type connectionObserver struct {
	notify func(connected bool)
}

var connectionObservers NodeMap[[]*connectionObserver]

// ObserveConnection registers fn to be called whenever n becomes connected to
// or disconnected from a document, as a consequence of InsertBefore, AppendChild
// or Remove on n or one of its ancestors. The returned stop function ends the
// observation; calling it more than once is harmless. stop does not keep n
// alive.
func ObserveConnection(n *html.Node, fn func(connected bool)) (stop func()) {
	obs := &connectionObserver{notify: fn}
	connectionObservers.Update(n, func(old []*connectionObserver, _ bool) ([]*connectionObserver, bool) {
		return append(old, obs), true
	})
	tracer().Debugf("observing connection of %s", Describe(n))
	key := weak.Make(n)
	return func() {
		n := key.Value()
		if n == nil {
			return
		}
		connectionObservers.Update(n, func(old []*connectionObserver, present bool) ([]*connectionObserver, bool) {
			if !present {
				return nil, false
			}
			rest := make([]*connectionObserver, 0, len(old))
			for _, o := range old {
				if o != obs {
					rest = append(rest, o)
				}
			}
			return rest, len(rest) > 0
		})
	}
}

// notifyConnection dispatches connection changes for the subtree of n,
// given n's connectedness before the mutation.
func notifyConnection(n *html.Node, was bool) {
	now := IsConnected(n)
	if was == now || connectionObservers.Len() == 0 {
		return
	}
	var pending []*connectionObserver
	Walk(n, func(x *html.Node) {
		if obs, ok := connectionObservers.Get(x); ok {
			pending = append(pending, obs...)
		}
	})
	for _, o := range pending {
		o.notify(now)
	}
}

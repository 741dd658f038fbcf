package dynlist

import (
	"fmt"
	"slices"

	"github.com/npillmayer/weft/lifecycle"
	"github.com/npillmayer/weft/location"
	"github.com/npillmayer/weft/noderange"
	"github.com/npillmayer/weft/value"
	"golang.org/x/net/html"
)

// Controller mirrors a streaming list of ranges as a chain of segments.
// It is the driver data of a list range.
type Controller struct {
	src   value.ListSource[*noderange.Range]
	scope *lifecycle.Scope // owner
	sub   *lifecycle.Scope // subscription, while attached
	loc   *location.Pointer
	segs  []*segment
	err   error // first segment failure since attachment
}

// New creates a list range mirroring src. The subscription to src lives
// while the range is attached, and at most as long as scope.
func New(src value.ListSource[*noderange.Range], scope *lifecycle.Scope) *noderange.Range {
	c := &Controller{src: src, scope: scope}
	return noderange.New[*Controller](driver{}, c)
}

// ControllerOf returns the controller of a list range.
func ControllerOf(r *noderange.Range) (*Controller, bool) {
	return noderange.Data[*Controller](r)
}

// Len returns the number of segments.
func (c *Controller) Len() int {
	return len(c.segs)
}

// Err returns the first error of a segment failing to attach since the
// list range has been attached, or nil.
func (c *Controller) Err() error {
	return c.err
}

// Ranges returns the ranges of all segments, in chain order.
func (c *Controller) Ranges() []*noderange.Range {
	rs := make([]*noderange.Range, len(c.segs))
	for i, s := range c.segs {
		rs[i] = s.r
	}
	return rs
}

// --- ListReceiver ----------------------------------------------------------

// Init replaces all segments by segments for items.
func (c *Controller) Init(items []*noderange.Range) {
	tracer().Debugf("list init with %d items", len(items))
	c.clear()
	c.insert(0, items)
}

// Event applies a list mutation to the chain.
func (c *Controller) Event(ev value.ListEvent[*noderange.Range]) {
	if c.loc == nil {
		return
	}
	tracer().Debugf("list event %s", ev.Op)
	switch ev.Op {
	case value.OpPush:
		c.insert(len(c.segs), ev.Items)
	case value.OpPop:
		c.delete(len(c.segs)-1, 1)
	case value.OpUnshift:
		c.insert(0, ev.Items)
	case value.OpShift:
		c.delete(0, 1)
	case value.OpSplice:
		c.delete(ev.Index, ev.DeleteCount)
		c.insert(ev.Index, ev.Items)
	case value.OpSet:
		if ev.Index < 0 || ev.Index >= len(c.segs) {
			break
		}
		c.delete(ev.Index, 1)
		c.insert(ev.Index, ev.Items[:min(len(ev.Items), 1)])
	case value.OpBatch:
		for _, sub := range ev.Batch {
			c.Event(sub)
		}
	}
}

// insert creates segments for items at index i, linking them between the
// segments at i-1 and i.
func (c *Controller) insert(i int, items []*noderange.Range) {
	if len(items) == 0 {
		return
	}
	i = max(0, min(i, len(c.segs)))
	var prev, next *segment
	if i > 0 {
		prev = c.segs[i-1]
	}
	if i < len(c.segs) {
		next = c.segs[i]
	}
	created := make([]*segment, len(items))
	for k, r := range items {
		if r == nil {
			r = noderange.Empty()
		}
		s := &segment{r: r}
		s.link(prev, next)
		if err := r.Attach(s.pointer(c.loc)); err != nil {
			tracer().Errorf("list segment %d: %v", i+k, err)
			if c.err == nil {
				c.err = fmt.Errorf("list segment %d: %w", i+k, err)
			}
		}
		created[k] = s
		prev = s
	}
	c.segs = slices.Insert(c.segs, i, created...)
}

// delete detaches n segments starting at index i.
func (c *Controller) delete(i int, n int) {
	if i < 0 || n <= 0 || i >= len(c.segs) {
		return
	}
	n = min(n, len(c.segs)-i)
	for _, s := range c.segs[i : i+n] {
		s.r.Remove()
		s.unlink()
	}
	c.segs = slices.Delete(c.segs, i, i+n)
}

func (c *Controller) clear() {
	for _, s := range c.segs {
		s.r.Remove()
		s.prev, s.next = nil, nil
	}
	c.segs = nil
}

// --- Driver ----------------------------------------------------------------

type driver struct{}

func (driver) IsImmutableRange(*Controller) bool { return false }

func (driver) FirstActiveNode(c *Controller) *html.Node {
	for _, s := range c.segs {
		if n := s.r.FirstNode(); n != nil {
			return n
		}
	}
	return nil
}

func (driver) LastActiveNode(c *Controller) *html.Node {
	for i := len(c.segs) - 1; i >= 0; i-- {
		if n := c.segs[i].r.LastNode(); n != nil {
			return n
		}
	}
	return nil
}

func (driver) AttachedLocation(c *Controller) *location.Pointer {
	return c.loc
}

func (driver) AttachError(c *Controller) error {
	return c.err
}

// AttachToDOM subscribes to the list. The snapshot delivered on
// subscription creates the segments.
func (driver) AttachToDOM(c *Controller, loc *location.Pointer) {
	c.loc, c.err = loc, nil
	c.sub = c.scope.Child()
	c.src.SubscribeList(c.sub, c)
}

// RemoveFromDOM unsubscribes and detaches every segment. The segments are
// kept until the next attachment, so that disposal still reaches them.
func (driver) RemoveFromDOM(c *Controller) {
	if c.loc == nil {
		return
	}
	c.sub.Abort()
	c.sub = nil
	for _, s := range c.segs {
		s.r.Remove()
	}
	c.loc = nil
}

func (driver) Dispose(c *Controller) {
	if c.sub != nil {
		c.sub.Abort()
		c.sub = nil
	}
	for _, s := range c.segs {
		s.r.Dispose()
	}
	c.segs = nil
	c.loc = nil
}

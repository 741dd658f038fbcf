package dynlist

import (
	"fmt"

	"github.com/npillmayer/weft/lifecycle"
	"github.com/npillmayer/weft/location"
	"github.com/npillmayer/weft/noderange"
	"github.com/npillmayer/weft/value"
	"golang.org/x/net/html"
)

type slot struct {
	src     value.Source[*noderange.Range]
	scope   *lifecycle.Scope
	sub     *lifecycle.Scope
	loc     *location.Pointer
	current *noderange.Range
	err     error // attachment failure of current
}

// Slot creates a range showing the range src currently holds. Every new
// value replaces the previous range at the same location; the previous
// range is detached, not disposed.
func Slot(src value.Source[*noderange.Range], scope *lifecycle.Scope) *noderange.Range {
	return noderange.New[*slot](slotDriver{}, &slot{src: src, scope: scope})
}

func (s *slot) Init(r *noderange.Range) {
	s.Event(r)
}

func (s *slot) Event(r *noderange.Range) {
	if s.loc == nil {
		return
	}
	if r == s.current {
		return
	}
	if s.current != nil {
		s.current.Remove()
	}
	s.current, s.err = r, nil
	if r == nil {
		return
	}
	if err := r.Attach(s.loc); err != nil {
		tracer().Errorf("slot: %v", err)
		s.err = fmt.Errorf("slot: %w", err)
	}
}

type slotDriver struct{}

func (slotDriver) IsImmutableRange(*slot) bool { return false }

func (slotDriver) FirstActiveNode(s *slot) *html.Node {
	if s.current == nil {
		return nil
	}
	return s.current.FirstNode()
}

func (slotDriver) LastActiveNode(s *slot) *html.Node {
	if s.current == nil {
		return nil
	}
	return s.current.LastNode()
}

func (slotDriver) AttachedLocation(s *slot) *location.Pointer {
	return s.loc
}

func (slotDriver) AttachError(s *slot) error {
	return s.err
}

func (slotDriver) AttachToDOM(s *slot, loc *location.Pointer) {
	s.loc, s.err = loc, nil
	s.sub = s.scope.Child()
	s.current = nil
	s.src.Subscribe(s.sub, s, value.Echo())
}

func (slotDriver) RemoveFromDOM(s *slot) {
	if s.loc == nil {
		return
	}
	s.sub.Abort()
	s.sub = nil
	if s.current != nil {
		s.current.Remove()
	}
	s.loc = nil
}

func (slotDriver) Dispose(s *slot) {
	if s.sub != nil {
		s.sub.Abort()
		s.sub = nil
	}
	if s.current != nil {
		s.current.Dispose()
		s.current = nil
	}
	s.loc = nil
}

package dynlist

import (
	"github.com/npillmayer/weft/location"
	"github.com/npillmayer/weft/noderange"
	"golang.org/x/net/html"
)

// segment is a link of the chain, wrapping one item's range.
type segment struct {
	r    *noderange.Range
	prev *segment
	next *segment
}

// lastNode returns the last node of s or, if s is empty, of the nearest
// non-empty segment before s.
func (s *segment) lastNode(parent *html.Node) *html.Node {
	for ; s != nil; s = s.prev {
		if n := s.r.LastNode(); n != nil && n.Parent == parent {
			return n
		}
	}
	return nil
}

// firstNode returns the first node of s or, if s is empty, of the nearest
// non-empty segment after s.
func (s *segment) firstNode(parent *html.Node) *html.Node {
	for ; s != nil; s = s.next {
		if n := s.r.FirstNode(); n != nil && n.Parent == parent {
			return n
		}
	}
	return nil
}

// pointer derives the location of s from the location of the whole chain.
func (s *segment) pointer(outer *location.Pointer) *location.Pointer {
	parent := outer.Parent()
	return location.Within(outer,
		func() *html.Node { return s.prev.lastNode(parent) },
		func() *html.Node { return s.next.firstNode(parent) },
	)
}

// link inserts s between prev and next, either of which may be nil.
func (s *segment) link(prev, next *segment) {
	s.prev, s.next = prev, next
	if prev != nil {
		prev.next = s
	}
	if next != nil {
		next.prev = s
	}
}

// unlink takes s out of the chain, connecting its neighbours.
func (s *segment) unlink() {
	if s.prev != nil {
		s.prev.next = s.next
	}
	if s.next != nil {
		s.next.prev = s.prev
	}
	s.prev, s.next = nil, nil
}

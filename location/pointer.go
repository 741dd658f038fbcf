package location

import (
	"fmt"

	"github.com/npillmayer/weft/dom"
	"golang.org/x/net/html"
)

// Anchor resolves a neighbouring node of an insertion point. It is called
// afresh on every insertion and may return nil.
type Anchor func() *html.Node

// Static returns an anchor which always resolves to n.
// For a nil node it returns a nil anchor, i.e. no anchor at all.
func Static(n *html.Node) Anchor {
	if n == nil {
		return nil
	}
	return func() *html.Node { return n }
}

// Strategy is the insertion strategy of a Pointer.
type Strategy int8

// Insertion strategies, in order of precedence.
const (
	InsertBeforeNext Strategy = iota
	InsertAfterPrevious
	AppendLast
)

func (s Strategy) String() string {
	switch s {
	case InsertBeforeNext:
		return "insert-before-next"
	case InsertAfterPrevious:
		return "insert-after-previous"
	}
	return "append-last"
}

// Props are the construction parameters of a Pointer.
type Props struct {
	Parent               *html.Node
	PreviousOuterSibling Anchor
	NextOuterSibling     Anchor
}

// Pointer is an insertion point in the DOM. Pointers are immutable.
type Pointer struct {
	parent   *html.Node
	prev     Anchor
	next     Anchor
	strategy Strategy
}

// At returns a pointer which appends to parent.
func At(parent *html.Node) *Pointer {
	return &Pointer{parent: parent, strategy: AppendLast}
}

// New creates a pointer from props. The strategy is chosen from the anchors
// present: next sibling before previous sibling before appending.
func New(props Props) *Pointer {
	p := &Pointer{
		parent: props.Parent,
		prev:   props.PreviousOuterSibling,
		next:   props.NextOuterSibling,
	}
	switch {
	case p.next != nil:
		p.strategy = InsertBeforeNext
	case p.prev != nil:
		p.strategy = InsertAfterPrevious
	default:
		p.strategy = AppendLast
	}
	return p
}

// Parent returns the parent element of the insertion point.
func (p *Pointer) Parent() *html.Node {
	return p.parent
}

// Strategy returns the active insertion strategy.
func (p *Pointer) Strategy() Strategy {
	return p.strategy
}

// PreviousOuterSibling resolves the previous anchor. It is nil if the
// pointer has no previous anchor.
func (p *Pointer) PreviousOuterSibling() *html.Node {
	if p.prev == nil {
		return nil
	}
	return p.prev()
}

// NextOuterSibling resolves the next anchor. It is nil if the pointer has
// no next anchor.
func (p *Pointer) NextOuterSibling() *html.Node {
	if p.next == nil {
		return nil
	}
	return p.next()
}

// Reference resolves the node before which the next insertion would
// happen. nil means appending to the parent.
func (p *Pointer) Reference() *html.Node {
	switch p.strategy {
	case InsertBeforeNext:
		return p.next()
	case InsertAfterPrevious:
		prev := p.prev()
		if prev == nil {
			return p.parent.FirstChild
		}
		return prev.NextSibling
	}
	return nil
}

// Append inserts n at the insertion point. Anchors are resolved anew for
// every call.
func (p *Pointer) Append(n *html.Node) {
	dom.InsertBefore(p.parent, n, p.Reference())
}

// AppendEach inserts nodes at the insertion point, keeping their order.
// The anchors are resolved once, before the first node is inserted.
func (p *Pointer) AppendEach(nodes ...*html.Node) {
	if len(nodes) == 0 {
		return
	}
	ref := p.Reference()
	if ref != nil {
		// a reference node which is itself being inserted is already in place
		in := make(map[*html.Node]bool, len(nodes))
		for _, n := range nodes {
			in[n] = true
		}
		for ref != nil && in[ref] {
			ref = ref.NextSibling
		}
	}
	for _, n := range nodes {
		dom.InsertBefore(p.parent, n, ref)
	}
}

// Within derives a pointer for content nested in a region at p. prev and
// next resolve the local neighbours within the region (e.g. sibling
// sub-ranges); when they resolve to nil, the derived pointer falls back to
// p's own anchors. The derived pointer mirrors p's strategy: a pointer
// anchored on its previous sibling only yields pointers anchored on
// previous siblings only.
func Within(p *Pointer, prev Anchor, next Anchor) *Pointer {
	prevOrOuter := func() *html.Node {
		if prev != nil {
			if n := prev(); n != nil {
				return n
			}
		}
		return p.PreviousOuterSibling()
	}
	if p.strategy == InsertAfterPrevious {
		return New(Props{Parent: p.parent, PreviousOuterSibling: prevOrOuter})
	}
	nextOrOuter := func() *html.Node {
		if next != nil {
			if n := next(); n != nil {
				return n
			}
		}
		return p.NextOuterSibling()
	}
	return New(Props{Parent: p.parent, PreviousOuterSibling: prevOrOuter, NextOuterSibling: nextOrOuter})
}

func (p *Pointer) String() string {
	return fmt.Sprintf("Pointer(%s in %s)", p.strategy, dom.Describe(p.parent))
}

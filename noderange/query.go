package noderange

import (
	"fmt"
	"iter"

	"github.com/npillmayer/weft/dom"
	"golang.org/x/net/html"
)

// --- Boundaries ------------------------------------------------------------

// FirstNodeRequired returns the first active node or fails with dom.ErrNotFound.
func (r *Range) FirstNodeRequired() (*html.Node, error) {
	if n := r.FirstNode(); n != nil {
		return n, nil
	}
	return nil, dom.NotFound("first active node of empty range %s", r.name)
}

// LastNodeRequired returns the last active node or fails with dom.ErrNotFound.
func (r *Range) LastNodeRequired() (*html.Node, error) {
	if n := r.LastNode(); n != nil {
		return n, nil
	}
	return nil, dom.NotFound("last active node of empty range %s", r.name)
}

// FirstElement returns the first element of the range, or nil.
func (r *Range) FirstElement() *html.Node {
	return r.FirstOfKind(dom.Element)
}

// LastElement returns the last element of the range, or nil.
func (r *Range) LastElement() *html.Node {
	return r.LastOfKind(dom.Element)
}

// FirstElementRequired returns the first element or fails with dom.ErrNotFound.
func (r *Range) FirstElementRequired() (*html.Node, error) {
	if el := r.FirstElement(); el != nil {
		return el, nil
	}
	return nil, dom.NotFound("first active element of range %s", r.name)
}

// LastElementRequired returns the last element or fails with dom.ErrNotFound.
func (r *Range) LastElementRequired() (*html.Node, error) {
	if el := r.LastElement(); el != nil {
		return el, nil
	}
	return nil, dom.NotFound("last active element of range %s", r.name)
}

// FirstOfKind returns the first node of kind k, or nil.
func (r *Range) FirstOfKind(k dom.Kind) *html.Node {
	for n := range r.NodesOfKind(k) {
		return n
	}
	return nil
}

// LastOfKind returns the last node of kind k, or nil.
func (r *Range) LastOfKind(k dom.Kind) *html.Node {
	for n := range r.backward() {
		if k.Match(n) {
			return n
		}
	}
	return nil
}

// FirstNodeAs returns the first active node, which has to be of kind k.
// It fails with dom.ErrNotFound for an empty range and with
// dom.ErrTypeMismatch if the node is of a different kind.
func (r *Range) FirstNodeAs(k dom.Kind) (*html.Node, error) {
	n, err := r.FirstNodeRequired()
	if err != nil {
		return nil, err
	}
	if !k.Match(n) {
		return nil, dom.TypeMismatch("first active node of "+r.name, k, n)
	}
	return n, nil
}

// LastNodeAs is the counterpart of FirstNodeAs for the last active node.
func (r *Range) LastNodeAs(k dom.Kind) (*html.Node, error) {
	n, err := r.LastNodeRequired()
	if err != nil {
		return nil, err
	}
	if !k.Match(n) {
		return nil, dom.TypeMismatch("last active node of "+r.name, k, n)
	}
	return n, nil
}

// --- Sequences -------------------------------------------------------------

// Nodes returns the sequence of all top-level nodes of the range, from the
// first to the last active node. The sequence is evaluated lazily and may be
// iterated more than once; every iteration sees the current content.
func (r *Range) Nodes() iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		first, last := r.boundaries()
		for n := first; n != nil; n = n.NextSibling {
			if !yield(n) || n == last {
				return
			}
		}
	}
}

func (r *Range) backward() iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		first, last := r.boundaries()
		for n := last; n != nil; n = n.PrevSibling {
			if !yield(n) || n == first {
				return
			}
		}
	}
}

// NodesOfKind returns the sequence of top-level nodes of kind k.
func (r *Range) NodesOfKind(k dom.Kind) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for n := range r.Nodes() {
			if k.Match(n) && !yield(n) {
				return
			}
		}
	}
}

// Elements returns the sequence of top-level elements.
func (r *Range) Elements() iter.Seq[*html.Node] {
	return r.NodesOfKind(dom.Element)
}

// HTMLElements returns the sequence of top-level HTML elements.
func (r *Range) HTMLElements() iter.Seq[*html.Node] {
	return r.NodesOfKind(dom.HTMLElement)
}

// SVGElements returns the sequence of top-level SVG elements.
func (r *Range) SVGElements() iter.Seq[*html.Node] {
	return r.NodesOfKind(dom.SVGElement)
}

// StyledElements returns the sequence of top-level elements carrying an
// inline style.
func (r *Range) StyledElements() iter.Seq[*html.Node] {
	return r.NodesOfKind(dom.StyledElement)
}

// --- Selectors -------------------------------------------------------------

// QuerySelectorAll returns all elements matching sel: for every top-level
// element in order, the element itself (if it matches) followed by its
// matching descendants.
func (r *Range) QuerySelectorAll(sel string) ([]*html.Node, error) {
	s, err := dom.Compile(sel)
	if err != nil {
		return nil, err
	}
	var result []*html.Node
	for el := range r.Elements() {
		if s.Match(el) {
			result = append(result, el)
		}
		result = append(result, s.QueryAll(el)...)
	}
	return result, nil
}

// QuerySelector returns the first element matching sel, or nil.
func (r *Range) QuerySelector(sel string) (*html.Node, error) {
	s, err := dom.Compile(sel)
	if err != nil {
		return nil, err
	}
	for el := range r.Elements() {
		if s.Match(el) {
			return el, nil
		}
		if n := s.Query(el); n != nil {
			return n, nil
		}
	}
	return nil, nil
}

// QuerySelectorRequired returns the first element matching sel. It fails
// with dom.ErrNotFound, naming the selector, if nothing matches.
func (r *Range) QuerySelectorRequired(sel string) (*html.Node, error) {
	el, err := r.QuerySelector(sel)
	if err != nil {
		return nil, err
	}
	if el == nil {
		return nil, dom.NotFound("no element matches selector %q", sel)
	}
	return el, nil
}

// QuerySelectorAs returns the first element matching sel, which has to be
// of kind k. It fails with dom.ErrNotFound if nothing matches and with
// dom.ErrTypeMismatch if the match is of a different kind.
func (r *Range) QuerySelectorAs(sel string, k dom.Kind) (*html.Node, error) {
	el, err := r.QuerySelectorRequired(sel)
	if err != nil {
		return nil, err
	}
	if !k.Match(el) {
		return nil, dom.TypeMismatch(fmt.Sprintf("querySelector(%q)", sel), k, el)
	}
	return el, nil
}

// --- Bulk attributes -------------------------------------------------------

// SetAttribute sets an attribute on every top-level element currently in the
// range. Prefixed names (xlink:href, ...) are set in their namespace.
//
// This is a one-time operation: elements entering the range later do not
// receive the attribute. Use package aspect for bindings which follow the
// range's content.
func (r *Range) SetAttribute(name string, value string) {
	for el := range r.Elements() {
		dom.SetQualifiedAttribute(el, name, value)
	}
}

// RemoveAttribute removes an attribute from every top-level element
// currently in the range. Like SetAttribute, it is not retroactive.
func (r *Range) RemoveAttribute(name string) {
	for el := range r.Elements() {
		dom.RemoveQualifiedAttribute(el, name)
	}
}

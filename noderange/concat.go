package noderange

import (
	"fmt"

	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/location"
	"golang.org/x/net/html"
)

type concat struct {
	parts     []*Range
	immutable bool
	first     *html.Node // precomputed for immutable parts
	last      *html.Node
	loc       *location.Pointer
	err       error // first part failure of the last attachment
}

type concatDriver struct{}

func (concatDriver) IsImmutableRange(d *concat) bool { return d.immutable }

func (concatDriver) FirstActiveNode(d *concat) *html.Node {
	if d.immutable {
		return d.first
	}
	for _, part := range d.parts {
		if n := part.FirstNode(); n != nil {
			return n
		}
	}
	return nil
}

func (concatDriver) LastActiveNode(d *concat) *html.Node {
	if d.immutable {
		return d.last
	}
	for i := len(d.parts) - 1; i >= 0; i-- {
		if n := d.parts[i].LastNode(); n != nil {
			return n
		}
	}
	return nil
}

func (concatDriver) AttachedLocation(d *concat) *location.Pointer {
	return d.loc
}

func (concatDriver) AttachError(d *concat) error {
	return d.err
}

// AttachToDOM attaches the parts one after the other. Every part gets a
// pointer anchored on its neighbour parts, falling back to loc's anchors.
// Parts are attached back to front, so that each part finds its successor
// in place; if loc is anchored on a previous sibling only, they are
// attached front to back instead.
func (concatDriver) AttachToDOM(d *concat, loc *location.Pointer) {
	d.loc, d.err = loc, nil
	attach := func(i int) {
		at := location.Within(loc, d.previousNode(i, loc.Parent()), d.nextNode(i, loc.Parent()))
		if err := d.parts[i].Attach(at); err != nil {
			tracer().Errorf("concat: part %d: %v", i, err)
			if d.err == nil {
				d.err = fmt.Errorf("part %d: %w", i, err)
			}
		}
	}
	if loc.Strategy() == location.InsertAfterPrevious {
		for i := range d.parts {
			attach(i)
		}
		return
	}
	for i := len(d.parts) - 1; i >= 0; i-- {
		attach(i)
	}
}

// previousNode anchors part i on the last node of the nearest preceding
// part which currently lives in parent.
func (d *concat) previousNode(i int, parent *html.Node) location.Anchor {
	return func() *html.Node {
		for j := i - 1; j >= 0; j-- {
			if n := d.parts[j].LastNode(); n != nil && n.Parent == parent {
				return n
			}
		}
		return nil
	}
}

// nextNode anchors part i on the first node of the nearest following part
// which currently lives in parent.
func (d *concat) nextNode(i int, parent *html.Node) location.Anchor {
	return func() *html.Node {
		for j := i + 1; j < len(d.parts); j++ {
			if n := d.parts[j].FirstNode(); n != nil && n.Parent == parent {
				return n
			}
		}
		return nil
	}
}

func (concatDriver) RemoveFromDOM(d *concat) {
	for _, part := range d.parts {
		part.Remove()
	}
	d.loc = nil
}

func (concatDriver) Dispose(d *concat) {
	for _, part := range d.parts {
		part.Dispose()
	}
	d.loc = nil
}

// ConcatAll returns a range consisting of the given ranges, in order. The
// result is immutable if every part is immutable. Attaching, removing and
// disposing the result does the same to every part.
func ConcatAll(parts ...*Range) *Range {
	d := &concat{immutable: true}
	for _, part := range parts {
		if part == nil {
			continue
		}
		d.parts = append(d.parts, part)
		d.immutable = d.immutable && part.IsImmutable()
	}
	if d.immutable {
		for _, part := range d.parts {
			if d.first = part.FirstNode(); d.first != nil {
				break
			}
		}
		for i := len(d.parts) - 1; i >= 0; i-- {
			if d.last = d.parts[i].LastNode(); d.last != nil {
				break
			}
		}
		dom.Invariant((d.first == nil) == (d.last == nil),
			"concatenation of %d immutable ranges has first node %s but last node %s",
			len(d.parts), dom.Describe(d.first), dom.Describe(d.last))
	}
	r := New[*concat](concatDriver{}, d)
	r.name = "concat"
	return r
}

// Parts returns the ranges a concatenation consists of. For other ranges
// it returns nil.
func Parts(r *Range) []*Range {
	if d, ok := Data[*concat](r); ok {
		return d.parts
	}
	return nil
}

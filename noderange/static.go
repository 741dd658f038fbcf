package noderange

import (
	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/location"
	"golang.org/x/net/html"
)

// --- Empty -----------------------------------------------------------------

type emptyDriver struct{}

func (emptyDriver) IsImmutableRange(struct{}) bool              { return true }
func (emptyDriver) FirstActiveNode(struct{}) *html.Node         { return nil }
func (emptyDriver) LastActiveNode(struct{}) *html.Node          { return nil }
func (emptyDriver) AttachedLocation(struct{}) *location.Pointer { return nil }
func (emptyDriver) AttachToDOM(struct{}, *location.Pointer)     {}
func (emptyDriver) RemoveFromDOM(struct{})                      {}
func (emptyDriver) Dispose(struct{})                            {}

// Empty returns a range without nodes. Every call creates a new range.
func Empty() *Range {
	r := New[struct{}](emptyDriver{}, struct{}{})
	r.name = "empty"
	return r
}

// --- Static nodes ----------------------------------------------------------

type nodes struct {
	nodes []*html.Node
	loc   *location.Pointer
}

type nodesDriver struct{}

func (nodesDriver) IsImmutableRange(*nodes) bool { return true }

func (nodesDriver) FirstActiveNode(d *nodes) *html.Node {
	if len(d.nodes) == 0 {
		return nil
	}
	return d.nodes[0]
}

func (nodesDriver) LastActiveNode(d *nodes) *html.Node {
	if len(d.nodes) == 0 {
		return nil
	}
	return d.nodes[len(d.nodes)-1]
}

func (nodesDriver) AttachedLocation(d *nodes) *location.Pointer {
	return d.loc
}

func (nodesDriver) AttachToDOM(d *nodes, loc *location.Pointer) {
	loc.AppendEach(d.nodes...)
	d.loc = loc
}

// RemoveFromDOM detaches the nodes even if they were placed without the
// range.
func (nodesDriver) RemoveFromDOM(d *nodes) {
	for _, n := range d.nodes {
		dom.Remove(n)
	}
	d.loc = nil
}

func (nodesDriver) Dispose(d *nodes) {
	d.loc = nil
}

// FromNode returns a range consisting of exactly n.
// For a nil node it returns an empty range.
func FromNode(n *html.Node) *Range {
	if n == nil {
		return Empty()
	}
	r := New[*nodes](nodesDriver{}, &nodes{nodes: []*html.Node{n}})
	r.name = "node " + dom.Describe(n)
	return r
}

// FromNodes returns a range consisting of the given nodes, in order.
// Nil nodes are skipped.
func FromNodes(ns ...*html.Node) *Range {
	d := &nodes{nodes: make([]*html.Node, 0, len(ns))}
	for _, n := range ns {
		if n != nil {
			d.nodes = append(d.nodes, n)
		}
	}
	r := New[*nodes](nodesDriver{}, d)
	r.name = "nodes"
	return r
}

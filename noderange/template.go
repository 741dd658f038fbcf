package noderange

import (
	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/location"
	"golang.org/x/net/html"
)

// instance is an instantiated template: static top-level nodes plus a
// cache of id-tagged elements.
type instance struct {
	nodes
	ids map[string]*html.Node
}

type templateDriver struct{}

func (templateDriver) IsImmutableRange(*instance) bool { return true }

func (templateDriver) FirstActiveNode(d *instance) *html.Node {
	return nodesDriver{}.FirstActiveNode(&d.nodes)
}

func (templateDriver) LastActiveNode(d *instance) *html.Node {
	return nodesDriver{}.LastActiveNode(&d.nodes)
}

func (templateDriver) AttachedLocation(d *instance) *location.Pointer {
	return d.loc
}

func (templateDriver) AttachToDOM(d *instance, loc *location.Pointer) {
	nodesDriver{}.AttachToDOM(&d.nodes, loc)
}

func (templateDriver) RemoveFromDOM(d *instance) {
	nodesDriver{}.RemoveFromDOM(&d.nodes)
}

func (templateDriver) Dispose(d *instance) {
	d.loc = nil
	d.ids = nil
}

// ElementByID extracts the id-tagged elements of the instance on first use.
// The id attributes are stripped from the nodes, so that several instances
// of one template may live in a document without clashing ids.
func (templateDriver) ElementByID(d *instance, id string) *html.Node {
	if d.ids == nil {
		d.ids = make(map[string]*html.Node)
		for _, n := range d.nodes.nodes {
			dom.Walk(n, func(n *html.Node) {
				if n.Type != html.ElementNode {
					return
				}
				if v, ok := dom.GetAttribute(n, "id"); ok {
					if _, dup := d.ids[v]; !dup {
						d.ids[v] = n
					}
					dom.RemoveAttribute(n, "id")
				}
			})
		}
		tracer().Debugf("template instance: extracted %d ids", len(d.ids))
	}
	return d.ids[id]
}

// FromTemplate returns a range over freshly instantiated template nodes.
// Its elements can be looked up with Range.ByID.
func FromTemplate(ns []*html.Node) *Range {
	d := &instance{}
	for _, n := range ns {
		if n != nil {
			d.nodes.nodes = append(d.nodes.nodes, n)
		}
	}
	r := New[*instance](templateDriver{}, d)
	r.name = "template"
	return r
}

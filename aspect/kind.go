package aspect

import (
	"github.com/npillmayer/weft/dom"
	"golang.org/x/net/html"
)

// Kind is a kind of aspect. It determines which elements qualify and how a
// literal is written to and removed from an element.
type Kind struct {
	name      string
	qualifies dom.Kind
	apply     func(el *html.Node, name string, v any)
	remove    func(el *html.Node, name string)
}

func (k Kind) String() string {
	return k.name
}

// Attribute binds attributes. Prefixed names (svg:, xlink:, xml:, xmlns:)
// are set in their namespace.
var Attribute = Kind{
	name:      "attribute",
	qualifies: dom.Element,
	apply: func(el *html.Node, name string, v any) {
		dom.SetQualifiedAttribute(el, name, dom.Stringify(v))
	},
	remove: dom.RemoveQualifiedAttribute,
}

// Style binds inline style properties.
var Style = Kind{
	name:      "style",
	qualifies: dom.StyledElement,
	apply: func(el *html.Node, name string, v any) {
		dom.Style(el).SetProperty(name, dom.Stringify(v))
	},
	remove: func(el *html.Node, name string) {
		dom.Style(el).RemoveProperty(name)
	},
}

// Property binds element properties. Values are stored as they are.
var Property = Kind{
	name:      "property",
	qualifies: dom.Element,
	apply:     dom.SetProperty,
	remove:    dom.DeleteProperty,
}

// Dataset binds dataset entries, given by their camel-cased names.
var Dataset = Kind{
	name:      "dataset",
	qualifies: dom.DatasetElement,
	apply: func(el *html.Node, name string, v any) {
		dom.Dataset(el).Set(name, dom.Stringify(v))
	},
	remove: func(el *html.Node, name string) {
		dom.Dataset(el).Delete(name)
	},
}

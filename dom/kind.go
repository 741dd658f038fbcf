package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Kind is a named predicate on DOM nodes. Kinds are used to filter
// sequences of nodes and to check the type of nodes found by a query.
type Kind struct {
	Name  string
	match func(*html.Node) bool
}

// NewKind creates a kind from a name and a predicate.
func NewKind(name string, match func(*html.Node) bool) Kind {
	return Kind{Name: name, match: match}
}

// Match is true if n is non-nil and of kind k.
func (k Kind) Match(n *html.Node) bool {
	if n == nil {
		return false
	}
	if k.match == nil {
		return true
	}
	return k.match(n)
}

func (k Kind) String() string {
	return k.Name
}

// Predefined node kinds.
var (
	AnyNode        = Kind{Name: "Node"}
	Element        = Kind{Name: "Element", match: isElement}
	HTMLElement    = Kind{Name: "HTMLElement", match: isHTMLElement}
	SVGElement     = Kind{Name: "SVGElement", match: isSVGElement}
	StyledElement  = Kind{Name: "ElementCSSInlineStyle", match: isStyled}
	DatasetElement = Kind{Name: "HTMLOrSVGElement", match: isStyled}
	Text           = Kind{Name: "Text", match: func(n *html.Node) bool { return n.Type == html.TextNode }}
	Comment        = Kind{Name: "Comment", match: func(n *html.Node) bool { return n.Type == html.CommentNode }}
)

func isElement(n *html.Node) bool {
	return n.Type == html.ElementNode
}

func isHTMLElement(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Namespace == "" || n.Namespace == "html")
}

func isSVGElement(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Namespace == "svg"
}

// HTML, SVG and MathML elements carry an inline style and a dataset.
func isStyled(n *html.Node) bool {
	return isHTMLElement(n) || isSVGElement(n) || (n.Type == html.ElementNode && n.Namespace == "math")
}

// Describe returns a short, human readable description of a node,
// e.g. "<div>", "<svg:path>" or "#text".
func Describe(n *html.Node) string {
	if n == nil {
		return "null"
	}
	switch n.Type {
	case html.ElementNode:
		var b strings.Builder
		b.WriteByte('<')
		if n.Namespace != "" && n.Namespace != "html" {
			b.WriteString(n.Namespace)
			b.WriteByte(':')
		}
		b.WriteString(n.Data)
		b.WriteByte('>')
		return b.String()
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "#raw"
}

package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewDocument creates an empty HTML document with a head and a body.
func NewDocument() *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	root := CreateElement("html")
	doc.AppendChild(root)
	root.AppendChild(CreateElement("head"))
	root.AppendChild(CreateElement("body"))
	return doc
}

// Body returns the body element of a document, or nil.
func Body(doc *html.Node) *html.Node {
	return findAtom(doc, atom.Body)
}

func findAtom(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findAtom(ch, a); r != nil {
			return r
		}
	}
	return nil
}

// CreateElement creates a detached HTML element.
func CreateElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// CreateElementNS creates a detached element in a namespace. ns may be a
// namespace URI or one of the short forms used by x/net/html ("svg", "math").
func CreateElementNS(ns string, tag string) *html.Node {
	el := CreateElement(tag)
	switch ns {
	case SVGNamespace, "svg":
		el.Namespace = "svg"
		el.DataAtom = 0
	case MathMLNamespace, "math":
		el.Namespace = "math"
		el.DataAtom = 0
	}
	return el
}

// CreateText creates a detached text node.
func CreateText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// CreateComment creates a detached comment node.
func CreateComment(text string) *html.Node {
	return &html.Node{Type: html.CommentNode, Data: text}
}

// IsConnected is true if n is part of a document tree.
func IsConnected(n *html.Node) bool {
	if n == nil {
		return false
	}
	for n.Parent != nil {
		n = n.Parent
	}
	return n.Type == html.DocumentNode
}

// Contains is true if n is an inclusive descendant of root.
func Contains(root, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// InsertBefore inserts n as a child of parent, immediately before ref.
// If ref is nil, n is appended as the last child. A node which already has
// a parent is moved. Connection observers of n's subtree are notified if
// n's connectedness changes.
func InsertBefore(parent, n, ref *html.Node) {
	if n == ref {
		return
	}
	Invariant(parent != nil, "cannot insert %s into null parent", Describe(n))
	Invariant(!Contains(n, parent), "cannot insert %s into its own descendant", Describe(n))
	Invariant(ref == nil || ref.Parent == parent, "reference node %s is not a child of %s",
		Describe(ref), Describe(parent))
	was := IsConnected(n)
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	parent.InsertBefore(n, ref)
	notifyConnection(n, was)
}

// AppendChild appends n as the last child of parent.
func AppendChild(parent, n *html.Node) {
	InsertBefore(parent, n, nil)
}

// Prepend inserts n as the first child of parent.
func Prepend(parent, n *html.Node) {
	InsertBefore(parent, n, parent.FirstChild)
}

// Remove detaches n from its parent. Removing a detached node is a no-op.
func Remove(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	was := IsConnected(n)
	n.Parent.RemoveChild(n)
	notifyConnection(n, was)
}

// TextContent returns the concatenated text of n's subtree.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode || n.Type == html.CommentNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.TextNode {
				b.WriteString(ch.Data)
			} else if ch.Type == html.ElementNode {
				walk(ch)
			}
		}
	}
	walk(n)
	return b.String()
}

// SetTextContent replaces all children of el with a single text node.
// An empty text leaves el without children.
func SetTextContent(el *html.Node, text string) {
	for el.FirstChild != nil {
		Remove(el.FirstChild)
	}
	if text != "" {
		AppendChild(el, CreateText(text))
	}
}

// Walk calls f for n and every node of its subtree, in document order.
func Walk(n *html.Node, f func(*html.Node)) {
	if n == nil {
		return
	}
	f(n)
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		Walk(ch, f)
	}
}

// Clone creates a deep copy of n. Element properties are not copied.
func Clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.AppendChild(Clone(ch))
	}
	return c
}

package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Namespace URIs.
const (
	HTMLNamespace   = "http://www.w3.org/1999/xhtml"
	SVGNamespace    = "http://www.w3.org/2000/svg"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
	XLinkNamespace  = "http://www.w3.org/1999/xlink"
	XMLNamespace    = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace  = "http://www.w3.org/2000/xmlns/"
)

// attribute name prefixes which select a namespace
var attrPrefixes = map[string]string{
	"svg":   SVGNamespace,
	"xlink": XLinkNamespace,
	"xml":   XMLNamespace,
	"xmlns": XMLNSNamespace,
}

// QualifyAttributeName splits a possibly prefixed attribute name into a
// namespace URI and a local name. Only the prefixes svg:, xlink:, xml: and
// xmlns: select a namespace; every other name is returned unchanged, with
// an empty namespace.
//
//	QualifyAttributeName("xlink:href")  =>  XLinkNamespace, "href"
//	QualifyAttributeName("data-x")      =>  "", "data-x"
func QualifyAttributeName(name string) (ns string, local string) {
	prefix, rest, found := strings.Cut(name, ":")
	if !found {
		return "", name
	}
	if uri, ok := attrPrefixes[prefix]; ok {
		return uri, rest
	}
	return "", name
}

// nsPrefix returns the prefix under which attributes of namespace ns are
// stored in html.Attribute.Namespace. This is what the x/net/html parser
// does for foreign content (e.g. Namespace "xlink", Key "href").
func nsPrefix(ns string, qualifiedName string) string {
	for p, uri := range attrPrefixes {
		if uri == ns {
			return p
		}
	}
	if prefix, _, found := strings.Cut(qualifiedName, ":"); found {
		return prefix
	}
	return ns
}

func attrIndex(el *html.Node, prefix, key string) int {
	for i, a := range el.Attr {
		if a.Namespace == prefix && a.Key == key {
			return i
		}
	}
	return -1
}

// qualifiedIndex finds an attribute by its qualified name, as getAttribute does.
func qualifiedIndex(el *html.Node, name string) int {
	if i := attrIndex(el, "", name); i >= 0 {
		return i
	}
	if prefix, local, found := strings.Cut(name, ":"); found {
		return attrIndex(el, prefix, local)
	}
	return -1
}

// GetAttribute returns the value of an attribute with a given qualified name.
func GetAttribute(el *html.Node, name string) (string, bool) {
	if el == nil {
		return "", false
	}
	if i := qualifiedIndex(el, name); i >= 0 {
		return el.Attr[i].Val, true
	}
	return "", false
}

// HasAttribute is true if el carries an attribute with the given qualified name.
func HasAttribute(el *html.Node, name string) bool {
	_, ok := GetAttribute(el, name)
	return ok
}

// SetAttribute sets an attribute without namespace.
func SetAttribute(el *html.Node, name string, value string) {
	SetAttributeNS(el, "", name, value)
}

// RemoveAttribute removes an attribute by its qualified name.
func RemoveAttribute(el *html.Node, name string) {
	if i := qualifiedIndex(el, name); i >= 0 {
		el.Attr = append(el.Attr[:i], el.Attr[i+1:]...)
	}
}

// SetAttributeNS sets an attribute in namespace ns. qualifiedName may carry a
// prefix, which is dropped from the stored local name.
func SetAttributeNS(el *html.Node, ns string, qualifiedName string, value string) {
	if el == nil || el.Type != html.ElementNode {
		return
	}
	prefix, local := "", qualifiedName
	if ns != "" {
		prefix = nsPrefix(ns, qualifiedName)
		if _, l, found := strings.Cut(qualifiedName, ":"); found {
			local = l
		}
		if ns == XMLNSNamespace && local == "xmlns" {
			prefix = ""
		}
	}
	if i := attrIndex(el, prefix, local); i >= 0 {
		el.Attr[i].Val = value
		return
	}
	el.Attr = append(el.Attr, html.Attribute{Namespace: prefix, Key: local, Val: value})
}

// RemoveAttributeNS removes the attribute with local name local in namespace ns.
func RemoveAttributeNS(el *html.Node, ns string, local string) {
	if el == nil {
		return
	}
	prefix := ""
	if ns != "" {
		prefix = nsPrefix(ns, "")
	}
	if i := attrIndex(el, prefix, local); i >= 0 {
		el.Attr = append(el.Attr[:i], el.Attr[i+1:]...)
	}
}

// SetQualifiedAttribute resolves the namespace of a possibly prefixed
// attribute name and sets it accordingly.
func SetQualifiedAttribute(el *html.Node, name string, value string) {
	ns, _ := QualifyAttributeName(name)
	SetAttributeNS(el, ns, name, value)
}

// RemoveQualifiedAttribute is the counterpart to SetQualifiedAttribute.
func RemoveQualifiedAttribute(el *html.Node, name string) {
	ns, local := QualifyAttributeName(name)
	RemoveAttributeNS(el, ns, local)
}

package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// DOMStringMap is the dataset of an element: its data-* attributes,
// addressed by camel-cased names.
type DOMStringMap struct {
	el *html.Node
}

// Dataset returns the dataset of el.
func Dataset(el *html.Node) DOMStringMap {
	return DOMStringMap{el: el}
}

// Get returns the value of dataset entry name.
func (ds DOMStringMap) Get(name string) (string, bool) {
	return GetAttribute(ds.el, DataAttributeName(name))
}

// Set sets dataset entry name.
func (ds DOMStringMap) Set(name string, value string) {
	SetAttribute(ds.el, DataAttributeName(name), value)
}

// Delete removes dataset entry name.
func (ds DOMStringMap) Delete(name string) {
	RemoveAttribute(ds.el, DataAttributeName(name))
}

// Keys returns the camel-cased names of all dataset entries.
func (ds DOMStringMap) Keys() []string {
	var keys []string
	for _, a := range ds.el.Attr {
		if a.Namespace == "" && strings.HasPrefix(a.Key, "data-") {
			keys = append(keys, datasetName(a.Key[5:]))
		}
	}
	return keys
}

// DataAttributeName converts a dataset name to its attribute name,
// e.g. "fooBar" to "data-foo-bar".
func DataAttributeName(name string) string {
	var b strings.Builder
	b.WriteString("data-")
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func datasetName(attr string) string {
	var b strings.Builder
	upper := false
	for _, r := range attr {
		if r == '-' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

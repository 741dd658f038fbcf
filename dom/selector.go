package dom

import (
	"fmt"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Selector is a compiled CSS selector group.
type Selector struct {
	source string
	sel    cascadia.Selector
}

var selectorCache sync.Map // string -> Selector

// Compile compiles a CSS selector group. Compiled selectors are cached.
func Compile(source string) (Selector, error) {
	if s, ok := selectorCache.Load(source); ok {
		return s.(Selector), nil
	}
	sel, err := cascadia.Compile(source)
	if err != nil {
		return Selector{}, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, source, err)
	}
	s := Selector{source: source, sel: sel}
	selectorCache.Store(source, s)
	return s, nil
}

func (s Selector) String() string {
	return s.source
}

// Match is true if element el matches the selector.
func (s Selector) Match(el *html.Node) bool {
	if el == nil || el.Type != html.ElementNode || s.sel == nil {
		return false
	}
	return s.sel.Match(el)
}

// QueryAll returns all descendants of root which match the selector, in
// document order. Like querySelectorAll, root itself is never included.
func (s Selector) QueryAll(root *html.Node) []*html.Node {
	if root == nil || s.sel == nil {
		return nil
	}
	return cascadia.QueryAll(root, s.sel)
}

// Query returns the first descendant of root which matches the selector.
func (s Selector) Query(root *html.Node) *html.Node {
	if root == nil || s.sel == nil {
		return nil
	}
	return cascadia.Query(root, s.sel)
}

// Matches compiles source and matches it against el.
func Matches(el *html.Node, source string) (bool, error) {
	s, err := Compile(source)
	if err != nil {
		return false, err
	}
	return s.Match(el), nil
}

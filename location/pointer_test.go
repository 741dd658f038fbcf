package location

import (
	"strings"
	"testing"

	"github.com/npillmayer/weft/dom"
	"golang.org/x/net/html"
)

func children(parent *html.Node) string {
	var names []string
	for ch := parent.FirstChild; ch != nil; ch = ch.NextSibling {
		names = append(names, ch.Data)
	}
	return strings.Join(names, " ")
}

func el(tag string) *html.Node {
	return dom.CreateElement(tag)
}

func TestStrategyPrecedence(t *testing.T) {
	parent := el("div")
	a := el("a")
	if s := At(parent).Strategy(); s != AppendLast {
		t.Errorf("expected At() to append, is %s", s)
	}
	if s := New(Props{Parent: parent, PreviousOuterSibling: Static(a), NextOuterSibling: Static(a)}).Strategy(); s != InsertBeforeNext {
		t.Errorf("expected next anchor to take precedence, is %s", s)
	}
	if s := New(Props{Parent: parent, PreviousOuterSibling: Static(a)}).Strategy(); s != InsertAfterPrevious {
		t.Errorf("expected previous anchor strategy, is %s", s)
	}
	if s := New(Props{Parent: parent, PreviousOuterSibling: Static(nil)}).Strategy(); s != AppendLast {
		t.Errorf("expected absent anchors to append, is %s", s)
	}
}

func TestNextSiblingGetterIsResolvedPerAppend(t *testing.T) {
	parent := el("div")
	x, y := el("x"), el("y")
	dom.AppendChild(parent, x)
	dom.AppendChild(parent, y)
	anchor := x
	p := New(Props{Parent: parent, NextOuterSibling: func() *html.Node { return anchor }})
	p.Append(el("a"))
	p.Append(el("b"))
	if got := children(parent); got != "a b x y" {
		t.Errorf("expected 'a b x y', is '%s'", got)
	}
	anchor = y
	p.Append(el("c"))
	if got := children(parent); got != "a b x c y" {
		t.Errorf("expected 'a b x c y', is '%s'", got)
	}
}

func TestPreviousSiblingStrategy(t *testing.T) {
	parent := el("div")
	x := el("x")
	dom.AppendChild(parent, x)
	var prev *html.Node
	p := New(Props{Parent: parent, PreviousOuterSibling: func() *html.Node { return prev }})
	p.Append(el("a")) // prev absent => prepend
	if got := children(parent); got != "a x" {
		t.Errorf("expected 'a x', is '%s'", got)
	}
	prev = x
	p.Append(el("b")) // x has no next sibling => append
	if got := children(parent); got != "a x b" {
		t.Errorf("expected 'a x b', is '%s'", got)
	}
	prev = parent.FirstChild
	p.AppendEach(el("c"), el("d"))
	if got := children(parent); got != "a c d x b" {
		t.Errorf("expected AppendEach to keep order: 'a c d x b', is '%s'", got)
	}
}

func TestAppendEachAtEnd(t *testing.T) {
	parent := el("div")
	At(parent).AppendEach(el("a"), el("b"), el("c"))
	if got := children(parent); got != "a b c" {
		t.Errorf("expected 'a b c', is '%s'", got)
	}
}

func TestWithinFallsBackToOuterAnchors(t *testing.T) {
	parent := el("div")
	first, last := el("first"), el("last")
	dom.AppendChild(parent, first)
	dom.AppendChild(parent, last)
	outer := New(Props{Parent: parent, PreviousOuterSibling: Static(first), NextOuterSibling: Static(last)})
	var local *html.Node
	inner := Within(outer, nil, func() *html.Node { return local })
	inner.Append(el("a"))
	if got := children(parent); got != "first a last" {
		t.Errorf("expected 'first a last', is '%s'", got)
	}
	local = parent.FirstChild.NextSibling
	inner.Append(el("b"))
	if got := children(parent); got != "first b a last" {
		t.Errorf("expected 'first b a last', is '%s'", got)
	}
	prevOnly := New(Props{Parent: parent, PreviousOuterSibling: Static(first)})
	if s := Within(prevOnly, nil, nil).Strategy(); s != InsertAfterPrevious {
		t.Errorf("expected derived pointer to mirror previous-only strategy, is %s", s)
	}
}

package noderange

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/lifecycle"
	"github.com/npillmayer/weft/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func children(parent *html.Node) string {
	var names []string
	for ch := parent.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			names = append(names, "#"+ch.Data)
			continue
		}
		names = append(names, ch.Data)
	}
	return strings.Join(names, " ")
}

func names(r *Range) string {
	var s []string
	for n := range r.Nodes() {
		s = append(s, n.Data)
	}
	return strings.Join(s, " ")
}

func el(tag string, attrs ...string) *html.Node {
	n := dom.CreateElement(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		dom.SetAttribute(n, attrs[i], attrs[i+1])
	}
	return n
}

func TestNodesStopAtLastNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.range")
	defer teardown()
	//
	parent := el("div")
	a, b, c, d := el("a"), el("b"), el("c"), el("d")
	for _, n := range []*html.Node{a, b, c, d} {
		dom.AppendChild(parent, n)
	}
	r := FromNodes(b, c)
	assert.Equal(t, "b c", names(r))
	assert.Equal(t, "b c", names(r), "sequence should be restartable")
	count := 0
	for range r.Nodes() {
		count++
		break
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, c, r.LastElement())
}

func TestEmptyRange(t *testing.T) {
	r := Empty()
	assert.True(t, r.IsEmpty())
	assert.True(t, r.IsImmutable())
	assert.Equal(t, "", names(r))
	_, err := r.FirstNodeRequired()
	assert.True(t, errors.Is(err, dom.ErrNotFound))
	_, err = r.LastElementRequired()
	assert.True(t, errors.Is(err, dom.ErrNotFound))
	assert.NotSame(t, Empty(), Empty())
	parent := el("div")
	require.NoError(t, r.AttachTo(parent))
	assert.Nil(t, parent.FirstChild)
}

func TestKindedLookups(t *testing.T) {
	txt := dom.CreateText("hello")
	p := el("p")
	svg := dom.CreateElementNS(dom.SVGNamespace, "svg")
	r := FromNodes(txt, p, svg)
	assert.Equal(t, p, r.FirstElement())
	assert.Equal(t, svg, r.LastElement())
	assert.Equal(t, p, r.FirstOfKind(dom.HTMLElement))
	assert.Equal(t, svg, r.LastOfKind(dom.SVGElement))
	assert.Nil(t, r.FirstOfKind(dom.Comment))
	_, err := r.FirstNodeAs(dom.Element)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dom.ErrTypeMismatch))
	assert.Contains(t, err.Error(), "#text")
	n, err := r.LastNodeAs(dom.SVGElement)
	require.NoError(t, err)
	assert.Equal(t, svg, n)
	var svgs []*html.Node
	for n := range r.SVGElements() {
		svgs = append(svgs, n)
	}
	assert.Equal(t, []*html.Node{svg}, svgs)
}

func TestQuerySelector(t *testing.T) {
	outer := el("div", "class", "x")
	inner := el("span", "class", "x")
	dom.AppendChild(outer, inner)
	p := el("p", "class", "x")
	r := FromNodes(outer, dom.CreateText(" "), p)
	all, err := r.QuerySelectorAll(".x")
	require.NoError(t, err)
	assert.Equal(t, []*html.Node{outer, inner, p}, all)
	first, err := r.QuerySelector("span.x")
	require.NoError(t, err)
	assert.Equal(t, inner, first)
	_, err = r.QuerySelectorRequired(".missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dom.ErrNotFound))
	assert.Contains(t, err.Error(), ".missing")
	_, err = r.QuerySelectorAs("p", dom.SVGElement)
	assert.True(t, errors.Is(err, dom.ErrTypeMismatch))
	_, err = r.QuerySelector("[[")
	assert.True(t, errors.Is(err, dom.ErrInvalidSelector))
}

func TestBulkAttributesAreNotRetroactive(t *testing.T) {
	a, b := el("a"), el("b")
	r := FromNodes(a, dom.CreateText("t"), b)
	r.SetAttribute("title", "x")
	assert.True(t, dom.HasAttribute(a, "title"))
	assert.True(t, dom.HasAttribute(b, "title"))
	r.RemoveAttribute("title")
	assert.False(t, dom.HasAttribute(a, "title"))
}

func TestStaticAttachRemove(t *testing.T) {
	parent := el("div")
	end := el("end")
	dom.AppendChild(parent, end)
	r := FromNodes(el("a"), el("b"))
	loc := location.New(location.Props{Parent: parent, NextOuterSibling: location.Static(end)})
	require.NoError(t, r.Attach(loc))
	assert.Equal(t, "a b end", children(parent))
	assert.Same(t, loc, r.AttachedLocation())
	r.Remove()
	assert.Equal(t, "end", children(parent))
	assert.Nil(t, r.AttachedLocation())
	r.Remove()
	require.NoError(t, r.Attach(loc))
	assert.Equal(t, "a b end", children(parent))
	// re-attaching moves the nodes
	require.NoError(t, r.AttachTo(parent))
	assert.Equal(t, "end a b", children(parent))
}

func TestConcatBoundaries(t *testing.T) {
	x, y, z := el("x"), el("y"), el("z")
	r := ConcatAll(Empty(), FromNode(x), Empty(), FromNodes(y, z), Empty())
	assert.True(t, r.IsImmutable())
	assert.Equal(t, x, r.FirstNode())
	assert.Equal(t, z, r.LastNode())
	assert.True(t, ConcatAll(Empty(), Empty()).IsEmpty())
	assert.True(t, ConcatAll().IsEmpty())
}

func TestConcatAttachOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.range")
	defer teardown()
	//
	build := func() *Range {
		return ConcatAll(FromNodes(el("a"), el("b")), Empty(), FromNode(el("c")))
	}
	parent := el("div")
	start, end := el("start"), el("end")
	dom.AppendChild(parent, start)
	dom.AppendChild(parent, end)
	r := build()
	require.NoError(t, r.Attach(location.New(location.Props{Parent: parent, NextOuterSibling: location.Static(end)})))
	assert.Equal(t, "start a b c end", children(parent))
	r.Remove()
	assert.Equal(t, "start end", children(parent))
	//
	r = build()
	require.NoError(t, r.Attach(location.New(location.Props{Parent: parent, PreviousOuterSibling: location.Static(start)})))
	assert.Equal(t, "start a b c end", children(parent))
	r.Remove()
	//
	r = build()
	require.NoError(t, r.AttachTo(parent))
	assert.Equal(t, "start end a b c", children(parent))
	assert.Equal(t, "a b c", names(r))
	assert.Len(t, Parts(r), 3)
}

func TestConcatReportsPartFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.range")
	defer teardown()
	//
	gone := FromNode(el("x"))
	gone.Dispose()
	r := ConcatAll(FromNode(el("a")), gone, FromNode(el("b")))
	parent := el("div")
	err := r.AttachTo(parent)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dom.ErrNotFound))
	assert.Contains(t, err.Error(), "part 1")
	assert.Equal(t, "a b", children(parent), "healthy parts stay attached")
	r.Remove()
	assert.Equal(t, "", children(parent))
	assert.NoError(t, ConcatAll(FromNode(el("c"))).AttachTo(parent))
}

func TestDisposeIsIdempotent(t *testing.T) {
	count := 0
	part := FromNode(el("a"))
	r := ConcatAll(part, Empty())
	r.OnDispose(lifecycle.DisposeFunc(func() { count++ }))
	r.Dispose()
	r.Dispose()
	assert.Equal(t, 1, count)
	assert.True(t, part.Disposed())
	assert.True(t, r.IsEmpty())
	err := r.AttachTo(el("div"))
	assert.True(t, errors.Is(err, dom.ErrNotFound))
}

func TestTemplateIDs(t *testing.T) {
	root := el("div", "id", "root")
	label := el("label", "id", "label")
	dom.AppendChild(root, label)
	r := FromTemplate([]*html.Node{root})
	n, err := r.ByID("label")
	require.NoError(t, err)
	assert.Equal(t, label, n)
	assert.False(t, dom.HasAttribute(label, "id"), "ids should be stripped")
	assert.False(t, dom.HasAttribute(root, "id"))
	n, err = r.ByID("root")
	require.NoError(t, err)
	assert.Equal(t, root, n)
	_, err = r.ByID("nope")
	assert.True(t, errors.Is(err, dom.ErrNotFound))
	_, err = FromNode(el("p")).ByID("x")
	assert.True(t, errors.Is(err, dom.ErrNotFound))
}

type brokenDriver struct{}

func (brokenDriver) IsImmutableRange(*html.Node) bool              { return false }
func (brokenDriver) FirstActiveNode(n *html.Node) *html.Node       { return n }
func (brokenDriver) LastActiveNode(*html.Node) *html.Node          { return nil }
func (brokenDriver) AttachedLocation(*html.Node) *location.Pointer { return nil }
func (brokenDriver) AttachToDOM(*html.Node, *location.Pointer)     {}
func (brokenDriver) RemoveFromDOM(*html.Node)                      {}
func (brokenDriver) Dispose(*html.Node)                            {}

func TestBoundaryInvariant(t *testing.T) {
	r := New[*html.Node](brokenDriver{}, el("a"))
	assert.PanicsWithValue(t, dom.InvariantViolation{
		Msg: "range noderange.brokenDriver reports first active node <a> but last active node null",
	}, func() { r.FirstNode() })
}

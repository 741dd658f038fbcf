package dom_test

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/weft/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestQualifyAttributeName(t *testing.T) {
	ns, local := dom.QualifyAttributeName("xlink:href")
	assert.Equal(t, dom.XLinkNamespace, ns)
	assert.Equal(t, "href", local)
	ns, local = dom.QualifyAttributeName("data-x")
	assert.Equal(t, "", ns)
	assert.Equal(t, "data-x", local)
	ns, local = dom.QualifyAttributeName("xml:lang")
	assert.Equal(t, dom.XMLNamespace, ns)
	assert.Equal(t, "lang", local)
	ns, local = dom.QualifyAttributeName("foo:bar")
	assert.Equal(t, "", ns)
	assert.Equal(t, "foo:bar", local)
}

func TestNamespacedAttributes(t *testing.T) {
	use := dom.CreateElementNS(dom.SVGNamespace, "use")
	dom.SetQualifiedAttribute(use, "xlink:href", "#icon")
	require.Len(t, use.Attr, 1)
	assert.Equal(t, html.Attribute{Namespace: "xlink", Key: "href", Val: "#icon"}, use.Attr[0])
	v, ok := dom.GetAttribute(use, "xlink:href")
	assert.True(t, ok)
	assert.Equal(t, "#icon", v)
	dom.SetQualifiedAttribute(use, "xlink:href", "#other")
	require.Len(t, use.Attr, 1)
	dom.RemoveQualifiedAttribute(use, "xlink:href")
	assert.Empty(t, use.Attr)
}

func TestInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	div := dom.CreateElement("div")
	st := dom.Style(div)
	st.SetProperty("color", "red")
	st.SetProperty("margin-top", "4px")
	s, _ := dom.GetAttribute(div, "style")
	assert.Equal(t, "color: red; margin-top: 4px;", s)
	st.SetProperty("color", "blue !important")
	assert.Equal(t, "blue", st.GetPropertyValue("color"))
	s, _ = dom.GetAttribute(div, "style")
	assert.Equal(t, "color: blue !important; margin-top: 4px;", s)
	assert.Equal(t, "4px", st.RemoveProperty("margin-top"))
	st.SetProperty("color", "")
	assert.False(t, dom.HasAttribute(div, "style"), "empty style should drop the attribute")
}

func TestDataset(t *testing.T) {
	div := dom.CreateElement("div")
	ds := dom.Dataset(div)
	ds.Set("userId", "7")
	v, ok := dom.GetAttribute(div, "data-user-id")
	assert.True(t, ok)
	assert.Equal(t, "7", v)
	assert.Equal(t, []string{"userId"}, ds.Keys())
	ds.Delete("userId")
	_, ok = ds.Get("userId")
	assert.False(t, ok)
}

func TestProperties(t *testing.T) {
	in := dom.CreateElement("input")
	dom.SetProperty(in, "value", 42)
	v, ok := dom.GetProperty(in, "value")
	assert.True(t, ok)
	assert.Equal(t, 42, v, "properties keep native values")
	dom.SetProperty(in, dom.PropClassName, "wide")
	c, _ := dom.GetAttribute(in, "class")
	assert.Equal(t, "wide", c)
	dom.DeleteProperty(in, "value")
	_, ok = dom.GetProperty(in, "value")
	assert.False(t, ok)
}

func TestInsertMovesNode(t *testing.T) {
	doc := dom.NewDocument()
	body := dom.Body(doc)
	a, b := dom.CreateElement("a"), dom.CreateElement("b")
	dom.AppendChild(body, a)
	dom.AppendChild(body, b)
	dom.InsertBefore(body, b, a)
	assert.Equal(t, b, body.FirstChild)
	assert.Equal(t, a, body.LastChild)
	dom.Remove(b)
	dom.Remove(b) // no-op
	assert.Equal(t, a, body.FirstChild)
	assert.Nil(t, b.Parent)
}

func TestInsertIntoDescendantPanics(t *testing.T) {
	outer, inner := dom.CreateElement("div"), dom.CreateElement("span")
	dom.AppendChild(outer, inner)
	defer func() {
		r := recover()
		_, ok := r.(dom.InvariantViolation)
		assert.True(t, ok, "expected invariant violation, got %v", r)
	}()
	dom.AppendChild(inner, outer)
}

func TestObserveConnection(t *testing.T) {
	doc := dom.NewDocument()
	body := dom.Body(doc)
	div, span := dom.CreateElement("div"), dom.CreateElement("span")
	dom.AppendChild(div, span)
	var seen []bool
	stop := dom.ObserveConnection(span, func(connected bool) {
		seen = append(seen, connected)
	})
	dom.AppendChild(body, div)
	dom.AppendChild(body, div) // move within document: no change
	dom.Remove(div)
	stop()
	stop()
	dom.AppendChild(body, div)
	assert.Equal(t, []bool{true, false}, seen)
}

func TestSelector(t *testing.T) {
	div := dom.CreateElement("div")
	dom.SetAttribute(div, "class", "box")
	p := dom.CreateElement("p")
	dom.SetAttribute(p, "class", "box")
	dom.AppendChild(div, p)
	sel, err := dom.Compile(".box")
	require.NoError(t, err)
	assert.True(t, sel.Match(div))
	assert.Equal(t, []*html.Node{p}, sel.QueryAll(div), "root must not be part of QueryAll")
	_, err = dom.Compile("div[")
	assert.True(t, errors.Is(err, dom.ErrInvalidSelector))
}

func TestDescribeAndKinds(t *testing.T) {
	path := dom.CreateElementNS("svg", "path")
	assert.Equal(t, "<svg:path>", dom.Describe(path))
	assert.Equal(t, "#text", dom.Describe(dom.CreateText("x")))
	assert.True(t, dom.SVGElement.Match(path))
	assert.False(t, dom.HTMLElement.Match(path))
	assert.True(t, dom.StyledElement.Match(path))
	err := dom.TypeMismatch(`querySelector("path")`, dom.HTMLElement, path)
	assert.True(t, errors.Is(err, dom.ErrTypeMismatch))
	assert.Contains(t, err.Error(), "HTMLElement")
	assert.Contains(t, err.Error(), "<svg:path>")
}

func TestNodeMapReinsertKeepsMemoryFlat(t *testing.T) {
	var m dom.NodeMap[int]
	n := dom.CreateElement("div")
	m.Set(n, 0)
	const rounds = 500_000
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	for i := range rounds {
		m.Delete(n)
		m.Set(n, i)
	}
	runtime.GC()
	runtime.ReadMemStats(&after)
	growth := int64(after.Sys) - int64(before.Sys)
	assert.Less(t, growth, int64(8<<20), "re-inserting one node grew memory by %d KiB", growth>>10)
	v, ok := m.Get(n)
	assert.True(t, ok)
	assert.Equal(t, rounds-1, v)
	assert.Equal(t, 1, m.Len())
	runtime.KeepAlive(n)
}

func TestNodeMapDropsCollectedNodes(t *testing.T) {
	var m dom.NodeMap[string]
	func() {
		n := dom.CreateElement("span")
		m.Set(n, "a")
		m.Update(n, func(string, bool) (string, bool) { return "", false })
		m.Set(n, "b")
		assert.Equal(t, 1, m.Len())
	}()
	assert.Eventually(t, func() bool {
		runtime.GC()
		return m.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

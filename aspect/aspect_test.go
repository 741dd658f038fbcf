package aspect

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/lifecycle"
	"github.com/npillmayer/weft/noderange"
	"github.com/npillmayer/weft/value"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func attr(el *html.Node, name string) string {
	v, _ := dom.GetAttribute(el, name)
	return v
}

func TestLiteralIsStringified(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.aspect")
	defer teardown()
	//
	div := dom.CreateElement("div")
	r := noderange.FromNodes(div, dom.CreateText("text is skipped"))
	b := Attributes(r, lifecycle.NewScope())
	b.Set("data-count", 5)
	assert.Equal(t, "5", attr(div, "data-count"))
	b.Set("data-count", nil)
	assert.False(t, dom.HasAttribute(div, "data-count"))
	b.Set("hidden", true)
	assert.Equal(t, "true", attr(div, "hidden"))
}

func TestNamespacedAttribute(t *testing.T) {
	use := dom.CreateElementNS(dom.SVGNamespace, "use")
	b := Attributes(noderange.FromNode(use), nil)
	b.Set("xlink:href", "#icon")
	assert.Equal(t, "#icon", attr(use, "xlink:href"))
	assert.Equal(t, "xlink", use.Attr[0].Namespace)
	b.Unset("xlink:href")
	assert.Empty(t, use.Attr)
}

// spy reports subscriptions before delegating to its cell.
type spy struct {
	*value.Cell[string]
	onSubscribe func()
}

func (p spy) SubscribeAny(scope *lifecycle.Scope, recv value.Receiver[any], opts ...value.SubscribeOption) {
	p.onSubscribe()
	p.Cell.SubscribeAny(scope, recv, opts...)
}

func TestStreamingBindingIsSuperseded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.aspect")
	defer teardown()
	//
	div := dom.CreateElement("div")
	b := Attributes(noderange.FromNode(div), lifecycle.NewScope())
	first := value.NewCell("a")
	b.Set("x", first)
	assert.Equal(t, "a", attr(div, "x"))
	first.Set("a2")
	assert.Equal(t, "a2", attr(div, "x"))
	//
	firstSubscribers := -1
	second := spy{Cell: value.NewCell("b")}
	second.onSubscribe = func() { firstSubscribers = first.Subscribers() }
	b.Set("x", second)
	assert.Equal(t, 0, firstSubscribers, "previous binding must be cancelled before the new one starts")
	assert.Equal(t, "b", attr(div, "x"))
	first.Set("stale")
	assert.Equal(t, "b", attr(div, "x"), "superseded source must not write")
	second.Set("b2")
	assert.Equal(t, "b2", attr(div, "x"))
	assert.True(t, b.Bound("x"))
	b.Set("x", "literal")
	assert.False(t, b.Bound("x"))
	assert.Equal(t, 0, second.Subscribers())
}

func TestAsyncValue(t *testing.T) {
	div := dom.CreateElement("div")
	scope := lifecycle.NewScope()
	b := Styles(noderange.FromNode(div), scope)
	p := value.NewPromise[any]()
	b.Set("color", p)
	assert.Equal(t, "", dom.Style(div).GetPropertyValue("color"))
	cell := value.NewCell("red")
	p.Resolve(cell)
	assert.Equal(t, "red", dom.Style(div).GetPropertyValue("color"))
	cell.Set("blue")
	assert.Equal(t, "blue", dom.Style(div).GetPropertyValue("color"))
	//
	late := value.NewPromise[string]()
	b.Set("margin", late)
	scope.Abort()
	late.Resolve("4px")
	assert.Equal(t, "", dom.Style(div).GetPropertyValue("margin"), "continuation after abort must be a no-op")
	assert.Equal(t, "", dom.Style(div).GetPropertyValue("color"), "dynamic aspects are removed on abort")
	assert.Equal(t, 0, cell.Subscribers())
}

func TestAbortUnassignsDynamicOnly(t *testing.T) {
	div := dom.CreateElement("div")
	scope := lifecycle.NewScope()
	b := Datasets(noderange.FromNode(div), scope)
	b.Set("staticValue", "s")
	b.Set("liveValue", value.NewCell(1))
	assert.Equal(t, "s", attr(div, "data-static-value"))
	assert.Equal(t, "1", attr(div, "data-live-value"))
	scope.Abort()
	assert.Equal(t, "s", attr(div, "data-static-value"))
	assert.False(t, dom.HasAttribute(div, "data-live-value"))
	b.Set("other", "x")
	assert.False(t, dom.HasAttribute(div, "data-other"), "aborted binder ignores new bindings")
}

func TestProperties(t *testing.T) {
	div := dom.CreateElement("div")
	b := Properties(noderange.FromNode(div), nil)
	payload := []int{1, 2}
	b.Set("payload", payload)
	v, ok := dom.GetProperty(div, "payload")
	assert.True(t, ok)
	assert.Equal(t, payload, v)
	b.Set("className", "box")
	assert.Equal(t, "box", attr(div, "class"))
	b.Unset("payload")
	_, ok = dom.GetProperty(div, "payload")
	assert.False(t, ok)
}

func TestAssignMapSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.aspect")
	defer teardown()
	//
	a, c := dom.CreateElement("a"), dom.CreateElement("b")
	b := Attributes(noderange.FromNodes(a, c), lifecycle.NewScope())
	m := value.NewMap(value.Entry{Key: "title", Value: "t"}, value.Entry{Key: "lang", Value: "en"})
	assert.NoError(t, b.Assign(m))
	assert.Equal(t, "t", attr(a, "title"))
	assert.Equal(t, "en", attr(c, "lang"))
	m.Set("title", value.NewCell("live"))
	assert.Equal(t, "live", attr(c, "title"))
	m.Delete("title")
	assert.False(t, dom.HasAttribute(a, "title"))
	assert.False(t, b.Bound("title"))
	//
	rec := value.NewRecord(map[string]any{"role": "button"})
	assert.NoError(t, b.Assign(rec))
	assert.Equal(t, "button", attr(a, "role"))
	rec.Delete("role")
	assert.False(t, dom.HasAttribute(a, "role"))
}

func TestAssignPlainAndAsync(t *testing.T) {
	div := dom.CreateElement("div")
	b := Attributes(noderange.FromNode(div), lifecycle.NewScope())
	assert.NoError(t, b.Assign(map[string]any{"b": 2, "a": 1}))
	assert.Equal(t, []html.Attribute{{Key: "a", Val: "1"}, {Key: "b", Val: "2"}}, div.Attr)
	p := value.NewPromise[value.Entries]()
	assert.NoError(t, b.Assign(p))
	p.Resolve(value.Entries{{Key: "c", Value: "3"}})
	assert.Equal(t, "3", attr(div, "c"))
	err := b.Assign(42)
	assert.True(t, errors.Is(err, ErrNotAMapping))
}

func TestSupersededAsyncValueIsWithdrawn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.aspect")
	defer teardown()
	//
	div := dom.CreateElement("div")
	scope := lifecycle.NewScope()
	b := Attributes(noderange.FromNode(div), scope)
	never := value.NewPromise[any]()
	for range 100 {
		b.Set("title", never)
	}
	assert.Equal(t, 1, never.Pending(), "only the live binding may wait")
	b.Unset("title")
	assert.Equal(t, 0, never.Pending())
	//
	b.Set("title", never)
	assert.NoError(t, b.Assign(value.NewPromise[any]()))
	later := value.NewPromise[any]()
	assert.NoError(t, b.Assign(later))
	scope.Abort()
	assert.Equal(t, 0, never.Pending())
	assert.Equal(t, 0, later.Pending())
	never.Resolve("late")
	assert.False(t, dom.HasAttribute(div, "title"))
}

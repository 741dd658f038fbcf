package noderange

import (
	"fmt"

	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/lifecycle"
	"github.com/npillmayer/weft/location"
	"golang.org/x/net/html"
)

// Driver implements a kind of range content. All methods receive the
// driver-owned data the range has been created with; drivers with mutable
// state use a pointer type for D.
type Driver[D any] interface {
	// IsImmutableRange reports whether the first and last active node will
	// never change. Ranges cache the boundaries of immutable content.
	IsImmutableRange(data D) bool
	// FirstActiveNode returns the first node of the content, or nil if empty.
	FirstActiveNode(data D) *html.Node
	// LastActiveNode returns the last node of the content, or nil if empty.
	LastActiveNode(data D) *html.Node
	// AttachedLocation returns the location the content is attached at, or nil.
	AttachedLocation(data D) *location.Pointer
	// AttachToDOM inserts the content at loc and records loc.
	AttachToDOM(data D, loc *location.Pointer)
	// RemoveFromDOM removes the content from the document and forgets the
	// location. It must be a no-op for unattached content.
	RemoveFromDOM(data D)
	// Dispose releases resources held by the content. It must be idempotent.
	Dispose(data D)
}

// IDLookup is an optional capability of drivers whose content carries
// id-tagged elements.
type IDLookup[D any] interface {
	ElementByID(data D, id string) *html.Node
}

// AttachReporter is an optional capability of drivers which attach other
// ranges. AttachError returns the first error of the most recent
// AttachToDOM, or nil.
type AttachReporter[D any] interface {
	AttachError(data D) error
}

// backing is a driver bound to its data, with the type parameter erased.
type backing interface {
	isImmutable() bool
	first() *html.Node
	last() *html.Node
	location() *location.Pointer
	attach(*location.Pointer)
	remove()
	dispose()
	byID(id string) (*html.Node, bool)
	attachErr() error
	payload() any
}

type bound[D any] struct {
	drv  Driver[D]
	data D
}

func (b bound[D]) isImmutable() bool            { return b.drv.IsImmutableRange(b.data) }
func (b bound[D]) first() *html.Node            { return b.drv.FirstActiveNode(b.data) }
func (b bound[D]) last() *html.Node             { return b.drv.LastActiveNode(b.data) }
func (b bound[D]) location() *location.Pointer  { return b.drv.AttachedLocation(b.data) }
func (b bound[D]) attach(loc *location.Pointer) { b.drv.AttachToDOM(b.data, loc) }
func (b bound[D]) remove()                      { b.drv.RemoveFromDOM(b.data) }
func (b bound[D]) dispose()                     { b.drv.Dispose(b.data) }
func (b bound[D]) payload() any                 { return b.data }

func (b bound[D]) attachErr() error {
	if rep, ok := b.drv.(AttachReporter[D]); ok {
		return rep.AttachError(b.data)
	}
	return nil
}

func (b bound[D]) byID(id string) (*html.Node, bool) {
	if l, ok := b.drv.(IDLookup[D]); ok {
		return l.ElementByID(b.data, id), true
	}
	return nil, false
}

// Range is a span of live DOM nodes, backed by a driver.
type Range struct {
	impl      backing
	immutable bool
	cached    bool
	first     *html.Node
	last      *html.Node
	disposed  bool
	resources lifecycle.Disposer
	name      string
}

// New creates a range from a driver and its data.
func New[D any](drv Driver[D], data D) *Range {
	b := bound[D]{drv: drv, data: data}
	return &Range{impl: b, immutable: b.isImmutable(), name: fmt.Sprintf("%T", drv)}
}

// Data returns the driver data of r, if it is of type D.
func Data[D any](r *Range) (D, bool) {
	d, ok := r.impl.payload().(D)
	return d, ok
}

// IsImmutable reports whether r's boundary nodes are fixed.
func (r *Range) IsImmutable() bool {
	return r.immutable
}

func (r *Range) boundaries() (first, last *html.Node) {
	if r.disposed {
		return nil, nil
	}
	if r.cached {
		return r.first, r.last
	}
	first, last = r.impl.first(), r.impl.last()
	dom.Invariant((first == nil) == (last == nil),
		"range %s reports first active node %s but last active node %s",
		r.name, dom.Describe(first), dom.Describe(last))
	if r.immutable {
		r.first, r.last, r.cached = first, last, true
	}
	return first, last
}

// FirstNode returns the first active node, or nil for an empty range.
func (r *Range) FirstNode() *html.Node {
	first, _ := r.boundaries()
	return first
}

// LastNode returns the last active node, or nil for an empty range.
func (r *Range) LastNode() *html.Node {
	_, last := r.boundaries()
	return last
}

// IsEmpty is true if the range currently has no nodes.
func (r *Range) IsEmpty() bool {
	return r.FirstNode() == nil
}

// AttachedLocation returns the location r is attached at, or nil.
func (r *Range) AttachedLocation() *location.Pointer {
	if r.disposed {
		return nil
	}
	return r.impl.location()
}

// Attach inserts the range's nodes at loc. Attaching an attached range
// first removes it from its current location. Attaching a disposed range
// fails with dom.ErrNotFound. If a nested range fails to attach, the
// others stay attached and Attach returns the first nested error.
func (r *Range) Attach(loc *location.Pointer) error {
	if r.disposed {
		return dom.NotFound("cannot attach disposed range %s", r.name)
	}
	if r.impl.location() != nil {
		r.impl.remove()
	}
	tracer().Debugf("attaching %s at %s", r.name, loc)
	r.impl.attach(loc)
	if err := r.impl.attachErr(); err != nil {
		return fmt.Errorf("attaching %s: %w", r.name, err)
	}
	return nil
}

// AttachTo appends the range's nodes to parent.
func (r *Range) AttachTo(parent *html.Node) error {
	return r.Attach(location.At(parent))
}

// Remove takes the range's nodes out of the document. Removing an
// unattached range is a no-op.
func (r *Range) Remove() {
	if r.disposed {
		return
	}
	r.impl.remove()
}

// Dispose releases the resources held by the range and by everything
// registered with OnDispose. The nodes are not removed from the document.
// Dispose is idempotent.
func (r *Range) Dispose() {
	if r.disposed {
		return
	}
	tracer().Debugf("disposing %s", r.name)
	r.disposed = true
	r.impl.dispose()
	r.resources.Dispose()
	r.first, r.last = nil, nil
}

// Disposed is true after Dispose has been called.
func (r *Range) Disposed() bool {
	return r.disposed
}

// OnDispose registers a resource to be disposed together with r.
func (r *Range) OnDispose(d lifecycle.Disposable) {
	r.resources.Add(d)
}

// ByID returns the element tagged with id, for ranges which support id
// lookup (instantiated templates). It fails with dom.ErrNotFound if there
// is no such element.
func (r *Range) ByID(id string) (*html.Node, error) {
	if r.disposed {
		return nil, dom.NotFound("element #%s in disposed range", id)
	}
	el, ok := r.impl.byID(id)
	if !ok {
		return nil, dom.NotFound("element #%s: range %s has no id lookup", id, r.name)
	}
	if el == nil {
		return nil, dom.NotFound("element #%s", id)
	}
	return el, nil
}

func (r *Range) String() string {
	first, last := r.boundaries()
	return fmt.Sprintf("Range(%s %s…%s)", r.name, dom.Describe(first), dom.Describe(last))
}

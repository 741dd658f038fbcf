package aspect

import (
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/weft/lifecycle"
	"github.com/npillmayer/weft/value"
	"golang.org/x/net/html"
)

// ErrNotAMapping is returned by Assign for values which are not mappings.
var ErrNotAMapping = errors.New("value is not a mapping")

// Targets is a set of elements to bind aspects to. *noderange.Range
// implements it.
type Targets interface {
	Elements() iter.Seq[*html.Node]
}

// Binder binds aspects of one kind to the elements of a target.
type Binder struct {
	kind    Kind
	targets Targets
	scope   *lifecycle.Scope
	handles map[string]*lifecycle.Scope // bindings of dynamic values
}

// Bind creates a binder. All bindings end when scope is aborted.
func Bind(kind Kind, targets Targets, scope *lifecycle.Scope) *Binder {
	b := &Binder{
		kind:    kind,
		targets: targets,
		scope:   scope,
		handles: make(map[string]*lifecycle.Scope),
	}
	scope.OnAbort(b.release)
	return b
}

// Attributes creates a binder for attributes.
func Attributes(targets Targets, scope *lifecycle.Scope) *Binder {
	return Bind(Attribute, targets, scope)
}

// Styles creates a binder for inline styles.
func Styles(targets Targets, scope *lifecycle.Scope) *Binder {
	return Bind(Style, targets, scope)
}

// Properties creates a binder for element properties.
func Properties(targets Targets, scope *lifecycle.Scope) *Binder {
	return Bind(Property, targets, scope)
}

// Datasets creates a binder for dataset entries.
func Datasets(targets Targets, scope *lifecycle.Scope) *Binder {
	return Bind(Dataset, targets, scope)
}

// Kind returns the kind of aspect b binds.
func (b *Binder) Kind() Kind {
	return b.kind
}

// Set binds name to v, replacing any previous binding of name.
func (b *Binder) Set(name string, v any) {
	if b.scope.Aborted() {
		return
	}
	b.cancel(name)
	if value.IsLiteral(v) {
		b.apply(name, v)
		return
	}
	h := b.scope.Child()
	b.handles[name] = h
	b.resolve(h, name, v)
}

// Unset ends the binding of name and removes the aspect from every element.
func (b *Binder) Unset(name string) {
	b.cancel(name)
	b.apply(name, nil)
}

// Bound reports whether name is currently bound to a dynamic value.
func (b *Binder) Bound(name string) bool {
	_, ok := b.handles[name]
	return ok
}

func (b *Binder) cancel(name string) {
	if h, ok := b.handles[name]; ok {
		delete(b.handles, name)
		tracer().Debugf("%s %q: cancelling previous binding", b.kind, name)
		h.Abort()
	}
}

// resolve applies v within scope h. Asynchronous results are resolved
// again; a streaming value emitting non-literals resolves each of them in
// a scope of its own, which ends with the next emission.
func (b *Binder) resolve(h *lifecycle.Scope, name string, v any) {
	switch x := v.(type) {
	case value.Awaitable:
		await(h, x, func(r any) {
			b.resolve(h, name, r)
		})
	case value.Observable:
		var inner *lifecycle.Scope
		x.SubscribeAny(h, value.ReceiverFunc[any](func(r any) {
			if inner != nil {
				inner.Abort()
				inner = nil
			}
			if value.IsLiteral(r) {
				b.apply(name, r)
				return
			}
			inner = h.Child()
			b.resolve(inner, name, r)
		}), value.Echo())
	default:
		b.apply(name, v)
	}
}

// await calls fn with the result of a, unless scope is aborted first.
// Aborting scope withdraws the continuation from a.
func await(scope *lifecycle.Scope, a value.Awaitable, fn func(any)) {
	settled := false
	var unhook func()
	cancel := a.AwaitAny(func(r any) {
		settled = true
		if unhook != nil {
			unhook()
		}
		if scope.Aborted() {
			return
		}
		fn(r)
	})
	if !settled {
		unhook = scope.OnAbort(cancel)
	}
}

// apply writes a literal to every qualifying element. nil removes the aspect.
func (b *Binder) apply(name string, v any) {
	for el := range b.targets.Elements() {
		if !b.kind.qualifies.Match(el) {
			continue
		}
		if v == nil {
			b.kind.remove(el, name)
		} else {
			b.kind.apply(el, name, v)
		}
	}
}

// release runs when the binder's scope is aborted. The handles are aborted
// already, as they are children of that scope.
func (b *Binder) release() {
	for name, h := range b.handles {
		h.Abort()
		b.apply(name, nil)
	}
	clear(b.handles)
}

// --- Mappings --------------------------------------------------------------

// Assign binds every entry of a mapping. m may be
//
//   - value.Entries, bound in order
//   - map[string]any, bound in sorted key order
//   - a value.MapSource, whose changes and deletions are followed
//   - a value.Awaitable producing any of these
//
// Other values fail with ErrNotAMapping.
func (b *Binder) Assign(m any) error {
	switch x := m.(type) {
	case value.Entries:
		for _, e := range x {
			b.Set(e.Key, e.Value)
		}
	case map[string]any:
		return b.Assign(value.FromMap(x))
	case value.MapSource:
		x.SubscribeEntries(b.scope, mapBinding{b})
	case value.Awaitable:
		await(b.scope, x, func(r any) {
			if err := b.Assign(r); err != nil {
				tracer().Errorf("%s: %v", b.kind, err)
			}
		})
	default:
		return fmt.Errorf("%w: %T", ErrNotAMapping, m)
	}
	return nil
}

// mapBinding follows a streaming mapping.
type mapBinding struct {
	b *Binder
}

func (mb mapBinding) Init(entries value.Entries) {
	mb.Set(entries)
}

func (mb mapBinding) Set(entries value.Entries) {
	for _, e := range entries {
		mb.b.Set(e.Key, e.Value)
	}
}

func (mb mapBinding) Delete(keys []string) {
	for _, k := range keys {
		mb.b.Unset(k)
	}
}

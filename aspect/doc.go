/*
Package aspect binds named aspects of elements to values.

An aspect is a named slot of an element: an attribute, an inline style
property, an element property or a dataset entry. A Binder applies
name/value pairs of one aspect kind to every element of a target (usually
a noderange.Range), where a value may be

  - a literal, applied right away; nil removes the aspect
  - a one-shot asynchronous value (value.Awaitable), applied when it resolves
  - a streaming value (value.Observable), applied on every emission

Values produced asynchronously are resolved again, so a promise of a cell
works as expected.

Every dynamic value is bound in a scope of its own, a child of the binder's
scope. Binding a name anew aborts its previous binding before the new value
is applied, so two sources never write to the same slot. Aborting the
binder's scope ends all bindings and removes the aspects which were bound
to dynamic values.

Whole mappings may be assigned at once, either as plain entries or as a
streaming value.MapSource, whose deletions unbind the respective names.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package aspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weft.aspect'.
func tracer() tracing.Trace {
	return tracing.Select("weft.aspect")
}

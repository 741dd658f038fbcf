/*
Package location implements insertion points for DOM nodes.

A Pointer is a parent element plus optional anchors: a getter for the node
just before the insertion point and a getter for the node just after it.
Anchors are functions rather than nodes, because the true neighbour of an
insertion point often is not known when the pointer is created: it depends
on content which is attached later, or which comes and goes.

Exactly one of three strategies is active, chosen from the anchors present:

 1. next anchor present:      insert before the node the next anchor returns
 2. previous anchor present:  insert after the node the previous anchor returns
 3. no anchors:               append as last child

Anchoring on the next sibling takes precedence, as it stays correct when
content is inserted before as well as after the anchor.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package location

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weft.location'.
func tracer() tracing.Trace {
	return tracing.Select("weft.location")
}

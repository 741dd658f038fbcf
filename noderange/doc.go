/*
Package noderange implements ranges of live DOM nodes.

A Range is a contiguous, possibly empty span of sibling nodes, treated as a
value of its own. What backs a range is pluggable: a Driver knows how to
find the first and last active node of its content, how to attach the
content at a location.Pointer and how to remove it again. Built-in drivers
cover

  - the empty range
  - a single static node, or an ordered sequence of static nodes
  - the nodes of an instantiated template, with a cache of id-tagged elements
  - the concatenation of other ranges

Package dynlist adds mutable ranges mirroring reactive lists.

Everything else a range offers is derived from its first and last active
node and the sibling links between them: iteration over nodes and elements,
selector queries, bulk attribute updates. None of these ever walks past the
last active node, even if the parent holds further, unrelated siblings.

Immutable ranges (those whose boundary nodes never change) cache their
boundaries on first use. Mutable ranges are asked every time.

Removal and disposal are different operations: removal takes the nodes out
of the document, disposal releases resources held by the range and leaves
the document alone. Both are idempotent.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package noderange

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weft.range'.
func tracer() tracing.Trace {
	return tracing.Select("weft.range")
}

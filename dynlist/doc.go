/*
Package dynlist keeps a chain of node ranges in sync with a streaming list.

A list range is a mutable noderange.Range driven by a Controller. While the
range is attached, the controller mirrors a value.ListSource of ranges: the
initial snapshot becomes a chain of segments, one per item, and every list
event is applied as a direct edit of that chain. Inserting an item attaches
its range, removing an item detaches its range (without disposing it).

Each segment inserts its range at a location whose anchors walk the chain:
the previous anchor is the last node of the nearest non-empty segment
before it, the next anchor the first node of the nearest non-empty segment
after it. Where the chain has no such node, the anchors of the list range's
own location are used. Hence empty items are fine anywhere in the list, and
the document order of the segments always equals the order of the list.

Slot is the single-valued sibling of a list range: it shows whatever range
a streaming value currently holds.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dynlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weft.dynlist'.
func tracer() tracing.Trace {
	return tracing.Select("weft.dynlist")
}

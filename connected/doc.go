/*
Package connected shares connection observations of DOM nodes.

Any number of subscribers may want to know whether a node is connected to
a document. An Observer keeps at most one backing source per node, which
goes online (starts observing the node) with its first subscriber and
offline again when its last subscriber is gone. Subscriptions end when
their scope is aborted.

Sources are keyed weakly: observing a node does not keep it alive, and the
source of a node is dropped once the node has been garbage collected.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package connected

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weft.connected'.
func tracer() tracing.Trace {
	return tracing.Select("weft.connected")
}

/*
Package lifecycle provides abort scopes and scoped disposal.

Every reactive binding in weft is scoped: subscriptions to value sources,
pending continuations of asynchronous values, observations of nodes. A Scope
is the cancellation signal for such bindings. Aborting a scope aborts its
child scopes and runs the registered abort callbacks, exactly once.

Disposables are the other half of the protocol. A Disposer collects
disposables and releases them in reverse order of registration; disposables
known to be no-ops are not even recorded.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lifecycle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weft.lifecycle'.
func tracer() tracing.Trace {
	return tracing.Select("weft.lifecycle")
}

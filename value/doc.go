/*
Package value provides the value sources bound to the DOM by weft.

A value bound to an attribute, a style or any other aspect of an element
comes in one of three shapes:

  - a literal, which is applied once
  - an asynchronous value (Awaitable), which is applied when it resolves
  - a streaming value (Observable), which is applied on every emission

Promise and Cell are the generic implementations of the latter two. Map and
Record are streaming mappings of names to values, List is a streaming array
which reports its mutations as events (push, pop, unshift, shift, splice,
set, batch).

All sources deliver synchronously, on the goroutine which performs the
update. Subscriptions are scoped by a lifecycle.Scope: aborting the scope
ends the subscription, and nothing is delivered to a receiver whose scope
has been aborted.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weft.value'.
func tracer() tracing.Trace {
	return tracing.Select("weft.value")
}

/*
Package dom provides the live document facilities the rest of weft is built on.

# Overview

A document is a tree of *html.Node, as produced by golang.org/x/net/html.
That tree already carries parent and sibling links, which is everything
needed to walk and splice ranges of nodes. What it lacks compared to a
browser DOM is added here:

  - tree mutation which reports connection changes (InsertBefore, AppendChild, Remove)
  - namespace aware attributes (SetAttributeNS, QualifyAttributeName)
  - inline style declarations, parsed with douceur
  - dataset entries (data-* attributes)
  - element properties, kept in a weakly keyed side table
  - CSS selector matching with cascadia

All mutation happens synchronously on the caller's goroutine. The package
assumes a single goroutine drives a document, like the event loop of a
browser does. Side tables are guarded by mutexes nevertheless, as tests
may create documents on different goroutines.

# Node Kinds

Code working on ranges frequently has to filter or check nodes by type.
Type Kind bundles a name with a predicate; Describe renders a node for
error messages.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weft.dom'.
func tracer() tracing.Trace {
	return tracing.Select("weft.dom")
}

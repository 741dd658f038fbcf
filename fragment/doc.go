/*
Package fragment parses HTML source text into reusable fragments.

A Fragment holds the parsed nodes of a piece of markup. It is never put into
a document itself; instead, every call to Instantiate deep-clones the nodes
and hands them out as a noderange.Range. Elements of an instance which carry
an id attribute can be looked up with Range.ByID, which strips the ids, so
that any number of instances may coexist in one document:

	card := fragment.MustParse(`<div class="card"><h2 id="title"></h2></div>`)
	r := card.Instantiate()
	title, _ := r.ByID("title")
	dom.SetTextContent(title, "Hello")
	r.AttachTo(body)

Source text may optionally be minified before parsing, dropping whitespace
between tags and comments.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fragment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weft.fragment'.
func tracer() tracing.Trace {
	return tracing.Select("weft.fragment")
}

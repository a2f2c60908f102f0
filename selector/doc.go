/*
Package selector builds composite CSS selector expressions.

A simple selector is assembled from typed fragments: an element name, an id, classes,
attributes, pseudo-classes and a pseudo-element. Fragments have to be added in this
canonical order, and element, id and pseudo-element may occur at most once. Two selectors
may be joined by a combinator, yielding a combined selector, which again may be an operand
of a further combination.

Selectors are values. Adding a fragment never changes a selector, but derives a new one,
thus selectors of a common lineage may be extended independently of each other:

	base := selector.Element("a").Class("nav")
	hover := base.PseudoClass("hover")   // a.nav:hover
	active := base.PseudoClass("active") // a.nav:active, base still is a.nav

Fragment contents are not parsed, validated or escaped; they are rendered verbatim.
Selectors are not matched against documents, nor is specificity computed.

Building selectors

Clients will usually chain fragment additions starting with one of the root functions
Element, ID, Class, Attr, PseudoClass, PseudoElement. Each of them returns a Builder.
A builder remembers the first error of a chain; subsequent additions are skipped:

	b := selector.ID("main").Class("container").Class("editable")
	s, err := b.Stringify() // "#main.container.editable", nil

	_, err = selector.Class("x").Element("div").Stringify()
	// err is an *OrderViolationError

Type Simple offers the same operations with Go-style (Simple, error) returns, for clients
who prefer to check every step.

Combining selectors

	sel := selector.Combine(
		selector.Must(selector.Element("div").ID("main")),
		selector.Adjacent,
		selector.Must(selector.Element("table").ID("data")),
	)
	sel.Stringify() // "div#main + table#data"

The combinator token is not checked and is always surrounded by a single space. For the
descendant combinator " " this results in three consecutive spaces.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbuilder.selector'.
func tracer() tracing.Trace {
	return tracing.Select("cssbuilder.selector")
}

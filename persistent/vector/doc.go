/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(appending, replacement or removal of the last element) creates a copy, leaving the original
unmodified. Under the hood, copy-on-write retains most of the memory held by the original,
and creates a new incarnation of the path to the modified element only. Thus, most of the
structure/memory is shared between original and copy, transparently to clients.

Vectors are organized as a trie of degree 2^k with a detached tail, similar to Clojure's
PersistentVector. Appending to a vector touches the tail only, until the tail is full and
is moved into the trie.

Immutable vectors are inherently concurrency-safe. The zero value of Vector is an empty vector.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbuilder.vector'.
func tracer() tracing.Trace {
	return tracing.Select("cssbuilder.vector")
}

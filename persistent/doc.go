/*
Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.

Selectors of package selector are values: each added fragment derives a new selector from
an old one. Multi-valued fragment categories (classes, attributes, pseudo-classes) are held
in persistent vectors, so that selectors of a common lineage share their fragment storage
without ever aliasing each other.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent

/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or doesn't (Nothing). The zero value of a Maybe
is Nothing, which makes it usable as an optional struct field without initialization.

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust is true if m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// Get returns the value of m and a flag, similar to map access.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the value of m, or def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the value of m, if present.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher to be used in a switch statement:
//
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         …
//     case m.Nothing():
//         …
//     }
//
// The switch compares interface values, thus T has to be comparable.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Matcher helps pattern-matching a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}

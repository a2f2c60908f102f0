/*
Package result implements a type for the result of a computation that may fail.

	{-| A `Result` is the result of a computation that may fail.

	# Chaining
	@docs andThen, map

	# Handling Errors
	@docs withDefault, toMaybe
	-}

A Result holds either a value or an error, never both. Once a chain of computations
produced an error, subsequent steps of the chain are skipped and the error is carried
through unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import "github.com/npillmayer/cssbuilder/maybe"

// Result is either Ok(value) or Err(error).
// The zero value is Ok with the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

// Err wraps an error. A nil err yields Ok(zero value).
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of converts a Go-style (value, error) pair into a Result.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// IsOk is true if r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Error returns the error of r, or nil.
func (r Result[T]) Error() error {
	return r.err
}

// Get unpacks r into a Go-style (value, error) pair.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// WithDefault returns the value of r, or def if r is an error.
func (r Result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// ToMaybe drops the error information.
func (r Result[T]) ToMaybe() maybe.Maybe[T] {
	if r.err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(r.value)
}

// AndThen chains a computation which may fail. f is not called for an error result.
func AndThen[T, S any](r Result[T], f func(T) Result[S]) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return f(r.value)
}

// Map applies f to an Ok value.
func Map[T, S any](r Result[T], f func(T) S) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return Ok(f(r.value))
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher to be used in a switch statement. Switching on a matcher
// compares interface values, thus T has to be comparable for this idiom; use Get otherwise.
func (r Result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Matcher helps pattern-matching a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r Result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}

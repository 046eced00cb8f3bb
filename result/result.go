/*
Package result provides a container for the outcome of a computation that may
fail: a value (Ok) or an error (Err). Result implements the bindable-container
contract of the root package; the Err shape is its empty form, so results
degrade gracefully under the generic derived operations and vanish from
flattened sequences.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import (
	"fmt"

	"github.com/npillmayer/monadic"
)

// Result is an immutable container holding either a value of type T or an
// error.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// --- API -------------------------------------------------------------------

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Get returns the contained value. It panics with the stored error when r is
// an Err.
func (r Result[T]) Get() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// GetOrElse returns the contained value, or def when r is an Err.
func (r Result[T]) GetOrElse(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Error returns the stored error, nil for Ok.
func (r Result[T]) Error() error {
	return r.err
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// --- Bindable-container contract -------------------------------------------

// Bind implements monadic.Monad. An Err propagates unchanged (modulo type
// erasure); the function is not invoked.
func (r Result[T]) Bind(f func(x any) monadic.Monad) monadic.Monad {
	if r.err != nil {
		return Err[any](r.err)
	}
	return f(r.value)
}

// Unit implements monadic.Monad.
func (Result[T]) Unit(x any) monadic.Monad {
	return Ok(x)
}

// Empty implements monadic.Monad. The canonical empty result carries the
// shared no-such-element failure.
func (Result[T]) Empty() monadic.Monad {
	return Err[any](monadic.ErrNoSuchElement)
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-based pattern matching on a result:
//
//	var v int
//	var e error
//	switch m := r.Match(); m {
//	case m.Ok(&v):
//	    …
//	case m.Err(&e):
//	    …
//	}
//
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

// Match returns a Matcher for r.
func (r Result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

type matcher[T any] struct {
	r Result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}

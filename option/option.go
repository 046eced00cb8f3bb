/*
Package option provides an optional-value container: a value is either present
(Some) or absent (None). Option implements the bindable-container contract of
the root package and therefore participates in the generic derived operations
and in the flatten family of package seq.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/monadic"
)

// Option is an immutable container holding zero or one value of type T.
// The zero value of Option is None; absence is a structural property of the
// value (an unset tag), never a distinct allocated object, so None values of
// the same instantiation compare equal.
type Option[T any] struct {
	value   T
	defined bool
}

// Some wraps a single present value.
func Some[T any](x T) Option[T] {
	return Option[T]{value: x, defined: true}
}

// None returns the absent option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of coalesces a possibly-nil value: a nil interface, pointer, map, slice,
// channel or function becomes None, everything else Some(x). It is a
// construction convenience only — Bind never calls it.
func Of[T any](x T) Option[T] {
	if isNil(x) {
		return None[T]()
	}
	return Some(x)
}

func isNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// --- API -------------------------------------------------------------------

// IsDefined reports whether o holds a value.
func (o Option[T]) IsDefined() bool {
	return o.defined
}

// IsEmpty reports whether o is None.
func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the contained value. It panics with monadic.ErrNoSuchElement
// when o is None.
func (o Option[T]) Get() T {
	if !o.defined {
		panic(monadic.ErrNoSuchElement)
	}
	return o.value
}

// OrNil returns the contained value, or nil when o is None. This is the one
// accessor that swallows the no-such-element failure instead of surfacing it.
func (o Option[T]) OrNil() any {
	if !o.defined {
		return nil
	}
	return o.value
}

// GetOrElse returns the contained value, or def when o is None.
func (o Option[T]) GetOrElse(def T) T {
	if o.defined {
		return o.value
	}
	return def
}

// OrElse returns the contained value, or the result of supply when o is
// None. supply is evaluated on the empty path only.
func (o Option[T]) OrElse(supply func() T) T {
	if o.defined {
		return o.value
	}
	return supply()
}

// Map transforms the contained value, keeping absence. For transformations
// changing the element type use the package-level Map.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if o.defined {
		return Some(f(o.value))
	}
	return o
}

func (o Option[T]) String() string {
	if o.defined {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// --- Type-changing operations ----------------------------------------------
//
// Methods cannot introduce type parameters, so operations changing the
// element type are package-level functions.

// Map transforms the contained value with f.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.IsEmpty() {
		return None[U]()
	}
	return Some(f(o.Get()))
}

// Bind chains a computation that may itself come up empty.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.IsEmpty() {
		return None[U]()
	}
	return f(o.Get())
}

// --- Bindable-container contract -------------------------------------------

// Bind implements monadic.Monad. The erased world is the Option[any]
// instantiation.
func (o Option[T]) Bind(f func(x any) monadic.Monad) monadic.Monad {
	if !o.defined {
		return None[any]()
	}
	return f(o.value)
}

// Unit implements monadic.Monad.
func (Option[T]) Unit(x any) monadic.Monad {
	return Some(x)
}

// Empty implements monadic.Monad.
func (Option[T]) Empty() monadic.Monad {
	return None[any]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-based pattern matching on an option:
//
//	var v int
//	switch m := o.Match(); m {
//	case m.Some(&v):
//	    …
//	case m.None():
//	    …
//	}
//
type Matcher[T any] interface {
	Some(*T) Matcher[T]
	None() Matcher[T]
}

// Match returns a Matcher for o.
func (o Option[T]) Match() Matcher[T] {
	return matcher[T]{o: o}
}

type matcher[T any] struct {
	o Option[T]
}

func (om matcher[T]) Some(v *T) Matcher[T] {
	if om.o.defined {
		*v = om.o.value
		return om
	}
	return nil
}

func (om matcher[T]) None() Matcher[T] {
	if !om.o.defined {
		return om
	}
	return nil
}

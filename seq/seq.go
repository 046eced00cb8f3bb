package seq

import (
	"fmt"
	"strings"

	"github.com/npillmayer/monadic"
)

// Seq is an immutable ordered sequence of values of type T. Elements need
// not be unique. The canonical empty sequence is nil, so that empty results
// of different derivations compare equal structurally.
//
// Operations never modify a sequence in place; they return fresh sequences
// and may share the original's backing array, which is safe as long as
// clients treat sequences as values.
type Seq[T any] []T

// Of constructs a sequence from the given elements.
func Of[T any](xs ...T) Seq[T] {
	return Seq[T](xs)
}

// Unit constructs a one-element sequence.
func Unit[T any](x T) Seq[T] {
	return Seq[T]{x}
}

// Empty returns the empty sequence.
func Empty[T any]() Seq[T] {
	return nil
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements.
func (s Seq[T]) Len() int {
	return len(s)
}

// IsEmpty reports whether s has no elements.
func (s Seq[T]) IsEmpty() bool {
	return len(s) == 0
}

// Head returns the first element. It panics with monadic.ErrNoSuchElement
// when s is empty.
func (s Seq[T]) Head() T {
	if len(s) == 0 {
		panic(monadic.ErrNoSuchElement)
	}
	return s[0]
}

// Map transforms every element, preserving order. For transformations
// changing the element type use the package-level Map.
func (s Seq[T]) Map(f func(T) T) Seq[T] {
	var out Seq[T]
	for _, x := range s {
		out = append(out, f(x))
	}
	return out
}

// ForEach applies f to every element in order.
func (s Seq[T]) ForEach(f func(T)) {
	for _, x := range s {
		f(x)
	}
}

func (s Seq[T]) String() string {
	b := strings.Builder{}
	b.WriteString("Seq(")
	for i, x := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteByte(')')
	return b.String()
}

// --- Type-changing operations ----------------------------------------------
//
// Methods cannot introduce type parameters, so operations changing the
// element type are package-level functions.

// Map transforms every element with f, preserving order.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	var out Seq[U]
	for _, x := range s {
		out = append(out, f(x))
	}
	return out
}

// FlatMap applies f to every element and concatenates the resulting
// sequences in order.
func FlatMap[T, U any](s Seq[T], f func(T) Seq[U]) Seq[U] {
	var out Seq[U]
	for _, x := range s {
		out = append(out, f(x)...)
	}
	return out
}

// Filter keeps the elements for which pred holds, preserving order.
func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	var out Seq[T]
	for _, x := range s {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// Concat concatenates two sequences.
func Concat[T any](a, b Seq[T]) Seq[T] {
	if len(a) == 0 {
		return b
	}
	var out Seq[T]
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Contains reports whether x occurs in s.
func Contains[T comparable](s Seq[T], x T) bool {
	for _, y := range s {
		if y == x {
			return true
		}
	}
	return false
}

// --- Bindable-container contract -------------------------------------------

// Bind implements monadic.Monad with list-monad semantics: f is applied to
// every element and the immediate contents of each result are concatenated
// in order. The erased world is the Seq[any] instantiation.
func (s Seq[T]) Bind(f func(x any) monadic.Monad) monadic.Monad {
	var out Seq[any]
	for _, x := range s {
		out = append(out, monadic.Contents(f(x))...)
	}
	return out
}

// Unit implements monadic.Monad.
func (Seq[T]) Unit(x any) monadic.Monad {
	return Seq[any]{x}
}

// Empty implements monadic.Monad.
func (Seq[T]) Empty() monadic.Monad {
	return Seq[any](nil)
}

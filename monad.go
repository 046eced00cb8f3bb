package monadic

import (
	"github.com/pkg/errors"
)

// ErrNoSuchElement is the failure raised (as a panic argument) by the Get
// accessors of the container packages when no value is present: an empty
// option, a wrongly-biased projection. Composition operations never raise
// it — Bind, Map, Filter and friends degrade to an empty container instead.
var ErrNoSuchElement = errors.New("monadic: no such element")

// Monad is the bindable-container contract. A container implements the one
// primitive composition operation Bind, plus the two constructors Unit and
// Empty. Since Go interfaces cannot express static functions, Unit and Empty
// are instance methods: any instance of a family serves as the family's
// factory.
//
// The contract is type-erased (payloads travel as `any`): Go has no
// higher-kinded types, so this is the seam where containers of different
// element types, and of different families, can meet. The typed front-ends
// live in the container packages.
//
// Implementations must satisfy the monad laws:
//
//	left identity:   m.Unit(x).Bind(f)  ≡  f(x)
//	right identity:  m.Bind(m.Unit)     ≡  m
//	associativity:   m.Bind(f).Bind(g)  ≡  m.Bind(func(x) { return f(x).Bind(g) })
//
type Monad interface {
	// Bind combines the container with a function producing a new container.
	// On an empty container the function is not invoked.
	Bind(f func(x any) Monad) Monad

	// Unit wraps a single value as a one-value container of the same family.
	Unit(x any) Monad

	// Empty returns the canonical zero-value container of the same family.
	Empty() Monad
}

// --- Derived operations ----------------------------------------------------
//
// Everything below is defined purely in terms of Bind, Unit and Empty, so
// that a new Monad implementation inherits correct behavior without writing
// any of it.

// Map transforms the contained value(s) with f, keeping the container shape.
// The result of f is re-wrapped via Unit even if it already is a container —
// flattening is FlatMap's job, not Map's.
func Map(m Monad, f func(x any) any) Monad {
	return m.Bind(func(x any) Monad {
		return m.Unit(f(x))
	})
}

// FlatMap is Bind itself, under the name familiar from collection libraries.
func FlatMap(m Monad, f func(x any) Monad) Monad {
	return m.Bind(f)
}

// Filter keeps the value(s) for which pred holds and degrades the rest to
// the empty container.
func Filter(m Monad, pred func(x any) bool) Monad {
	return m.Bind(func(x any) Monad {
		if pred(x) {
			return m.Unit(x)
		}
		return m.Empty()
	})
}

// Any reports whether m is non-empty and pred holds for at least one
// contained value. An empty container yields false.
func Any(m Monad, pred func(x any) bool) bool {
	found := false
	m.Bind(func(x any) Monad {
		if pred(x) {
			found = true
		}
		return m.Empty()
	})
	return found
}

// All reports whether pred holds for every contained value. An empty
// container yields true (vacuous truth).
func All(m Monad, pred func(x any) bool) bool {
	ok := true
	m.Bind(func(x any) Monad {
		if !pred(x) {
			ok = false
		}
		return m.Empty()
	})
	return ok
}

// GetOrElse returns the first contained value, or fallback if m is empty.
// A fallback of type `func() any` is treated as a lazy supplier: it is
// evaluated on the empty path only, never when a value is present.
func GetOrElse(m Monad, fallback any) any {
	var v any
	found := false
	m.Bind(func(x any) Monad {
		if !found {
			v = x
			found = true
		}
		return m.Empty()
	})
	if found {
		return v
	}
	if supply, ok := fallback.(func() any); ok {
		return supply()
	}
	return fallback
}

// Contents returns the immediate value(s) of m in order: nothing for an
// empty/absent/wrongly-biased container, one value for an option or a
// projection, every element for a sequence. It is computed through Bind and
// is the splice step of the flatten family in package seq.
func Contents(m Monad) []any {
	var out []any
	m.Bind(func(x any) Monad {
		out = append(out, x)
		return m.Empty()
	})
	return out
}

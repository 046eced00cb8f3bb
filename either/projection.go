package either

import (
	"fmt"

	"github.com/npillmayer/monadic"
)

// A projection is a read-only view over an existing union, biased to one
// side. It owns no data of its own — it wraps the union value and adapts it
// to the bindable-container contract. Two projections are equal iff they
// wrap equal unions.

// LeftProjection is the left-biased view of a union. It is a one-value
// container when the union is left-sided and an empty one otherwise.
type LeftProjection[L, R any] struct {
	e Either[L, R]
}

// Either returns the wrapped union.
func (p LeftProjection[L, R]) Either() Either[L, R] {
	return p.e
}

// Get returns the left payload. It panics with monadic.ErrNoSuchElement
// when the union is right-sided.
func (p LeftProjection[L, R]) Get() L {
	return p.e.LeftValue()
}

// GetOrElse returns the left payload, or def when the union is right-sided.
func (p LeftProjection[L, R]) GetOrElse(def L) L {
	if p.e.side == leftSide {
		return p.e.left
	}
	return def
}

// Map reconstructs a union of the original kind, with the left payload
// transformed. Mapping over a right-sided union returns that union
// unchanged.
func (p LeftProjection[L, R]) Map(f func(L) L) Either[L, R] {
	if p.e.side == leftSide {
		return Left[L, R](f(p.e.left))
	}
	return p.e
}

func (p LeftProjection[L, R]) String() string {
	return fmt.Sprintf("LeftProjection(%v)", p.e)
}

// Bind implements monadic.Monad. On a right-sided union the function is not
// invoked and the projection passes through unchanged.
func (p LeftProjection[L, R]) Bind(f func(x any) monadic.Monad) monadic.Monad {
	p.e.check()
	if p.e.side != leftSide {
		return p
	}
	return f(p.e.left)
}

// Unit implements monadic.Monad.
func (LeftProjection[L, R]) Unit(x any) monadic.Monad {
	return Left[any, any](x).Left()
}

// Empty implements monadic.Monad. A left projection with no left value is a
// view over a right-sided union.
func (LeftProjection[L, R]) Empty() monadic.Monad {
	return Right[any, any](nil).Left()
}

// RightProjection is the right-biased view of a union, symmetric to
// LeftProjection.
type RightProjection[L, R any] struct {
	e Either[L, R]
}

// Either returns the wrapped union.
func (p RightProjection[L, R]) Either() Either[L, R] {
	return p.e
}

// Get returns the right payload. It panics with monadic.ErrNoSuchElement
// when the union is left-sided.
func (p RightProjection[L, R]) Get() R {
	return p.e.RightValue()
}

// GetOrElse returns the right payload, or def when the union is left-sided.
func (p RightProjection[L, R]) GetOrElse(def R) R {
	if p.e.side == rightSide {
		return p.e.right
	}
	return def
}

// Map reconstructs a union of the original kind, with the right payload
// transformed. Mapping over a left-sided union returns that union unchanged.
func (p RightProjection[L, R]) Map(f func(R) R) Either[L, R] {
	if p.e.side == rightSide {
		return Right[L, R](f(p.e.right))
	}
	return p.e
}

func (p RightProjection[L, R]) String() string {
	return fmt.Sprintf("RightProjection(%v)", p.e)
}

// Bind implements monadic.Monad. On a left-sided union the function is not
// invoked and the projection passes through unchanged.
func (p RightProjection[L, R]) Bind(f func(x any) monadic.Monad) monadic.Monad {
	p.e.check()
	if p.e.side != rightSide {
		return p
	}
	return f(p.e.right)
}

// Unit implements monadic.Monad.
func (RightProjection[L, R]) Unit(x any) monadic.Monad {
	return Right[any, any](x).Right()
}

// Empty implements monadic.Monad. A right projection with no right value is
// a view over a left-sided union.
func (RightProjection[L, R]) Empty() monadic.Monad {
	return Left[any, any](nil).Right()
}

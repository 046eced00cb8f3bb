package either

import (
	"fmt"

	"github.com/npillmayer/monadic"
	"github.com/pkg/errors"
)

// ErrInvalid is the failure raised (as a panic argument) when an Either is
// used without having been constructed through Left or Right, i.e. the
// abstract union was instantiated directly as a zero value.
var ErrInvalid = errors.New("either: value must be constructed with Left or Right")

type side int8

const (
	invalidSide side = iota
	leftSide
	rightSide
)

// Either is an immutable disjoint union holding either a left value of type
// L or a right value of type R. The zero value of Either is invalid; every
// usable instance comes from Left or Right.
type Either[L, R any] struct {
	side  side
	left  L
	right R
}

// Left constructs a left-sided union.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{side: leftSide, left: v}
}

// Right constructs a right-sided union.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{side: rightSide, right: v}
}

func (e Either[L, R]) check() {
	if e.side == invalidSide {
		panic(ErrInvalid)
	}
}

// --- API -------------------------------------------------------------------

// IsLeft reports whether e is left-sided.
func (e Either[L, R]) IsLeft() bool {
	e.check()
	return e.side == leftSide
}

// IsRight reports whether e is right-sided.
func (e Either[L, R]) IsRight() bool {
	e.check()
	return e.side == rightSide
}

// LeftValue returns the left payload. It panics with
// monadic.ErrNoSuchElement when e is right-sided.
func (e Either[L, R]) LeftValue() L {
	e.check()
	if e.side != leftSide {
		panic(monadic.ErrNoSuchElement)
	}
	return e.left
}

// RightValue returns the right payload. It panics with
// monadic.ErrNoSuchElement when e is left-sided.
func (e Either[L, R]) RightValue() R {
	e.check()
	if e.side != rightSide {
		panic(monadic.ErrNoSuchElement)
	}
	return e.right
}

// Swap returns a new union with the sides exchanged: Left becomes Right and
// vice versa. A pure structural transform, e is left untouched.
func (e Either[L, R]) Swap() Either[R, L] {
	e.check()
	if e.side == leftSide {
		return Right[R, L](e.left)
	}
	return Left[R, L](e.right)
}

// Left returns the left-biased projection of e.
func (e Either[L, R]) Left() LeftProjection[L, R] {
	e.check()
	return LeftProjection[L, R]{e: e}
}

// Right returns the right-biased projection of e.
func (e Either[L, R]) Right() RightProjection[L, R] {
	e.check()
	return RightProjection[L, R]{e: e}
}

func (e Either[L, R]) String() string {
	e.check()
	if e.side == leftSide {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}

// Fold dispatches to exactly one of the two functions, depending on the
// active side, and returns its result.
func Fold[L, R, X any](e Either[L, R], onLeft func(L) X, onRight func(R) X) X {
	if e.IsLeft() {
		return onLeft(e.left)
	}
	return onRight(e.right)
}

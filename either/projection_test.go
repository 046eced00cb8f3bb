package either_test

import (
	"testing"

	"github.com/npillmayer/monadic"
	"github.com/npillmayer/monadic/either"
	"github.com/stretchr/testify/assert"
)

func TestProjectionGet(t *testing.T) {
	l := either.Left[int, string](2)
	assert.Equal(t, 2, l.Left().Get())
	assert.PanicsWithValue(t, monadic.ErrNoSuchElement, func() { l.Right().Get() })
	assert.Equal(t, 2, l.Left().GetOrElse(100))
	assert.Equal(t, "fallback", l.Right().GetOrElse("fallback"))
}

func TestProjectionMapReconstructsUnion(t *testing.T) {
	l := either.Left[int, string](2)
	mapped := l.Left().Map(func(n int) int { return n * 2 })
	assert.Equal(t, either.Left[int, string](4), mapped)

	// Mapping the left projection of a right-sided union is a no-op and
	// yields that same union.
	r := either.Right[int, string]("payload")
	assert.Equal(t, r, r.Left().Map(func(n int) int { return n * 2 }))
	assert.Equal(t, either.Right[int, string]("PAYLOAD"), r.Right().Map(func(string) string { return "PAYLOAD" }))
}

func TestProjectionBindPassesWrongSideThrough(t *testing.T) {
	r := either.Right[int, string]("payload")
	lp := r.Left()
	bound := lp.Bind(func(x any) monadic.Monad {
		t.Error("bind on a wrongly-biased projection must not invoke the function")
		return lp
	})
	assert.Equal(t, lp, bound)
}

func TestProjectionEquality(t *testing.T) {
	// Projections are equal iff they wrap equal unions.
	assert.Equal(t, either.Left[int, string](1).Left(), either.Left[int, string](1).Left())
	assert.NotEqual(t, either.Left[int, string](1).Left(), either.Left[int, string](2).Left())
}

func TestProjectionString(t *testing.T) {
	l := either.Left[int, string](2)
	assert.Equal(t, "LeftProjection(Left(2))", l.Left().String())
	assert.Equal(t, "RightProjection(Left(2))", l.Right().String())
	r := either.Right[int, string]("two")
	assert.Equal(t, "LeftProjection(Right(two))", r.Left().String())
	assert.Equal(t, "RightProjection(Right(two))", r.Right().String())
}

func TestProjectionEither(t *testing.T) {
	e := either.Left[int, string](3)
	assert.Equal(t, e, e.Left().Either())
	assert.Equal(t, e, e.Right().Either())
}

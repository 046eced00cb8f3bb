package either_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/monadic"
	"github.com/npillmayer/monadic/either"
	"github.com/stretchr/testify/assert"
)

func TestEitherConstruction(t *testing.T) {
	l := either.Left[int, string](1)
	r := either.Right[int, string]("one")
	assert.True(t, l.IsLeft())
	assert.False(t, l.IsRight())
	assert.True(t, r.IsRight())
	assert.False(t, r.IsLeft())
}

func TestEitherInvalidConstruction(t *testing.T) {
	var e either.Either[int, string] // not constructed via Left or Right
	assert.PanicsWithValue(t, either.ErrInvalid, func() { e.IsLeft() })
	assert.PanicsWithValue(t, either.ErrInvalid, func() { _ = e.String() })
}

func TestEitherValues(t *testing.T) {
	l := either.Left[int, string](1)
	assert.Equal(t, 1, l.LeftValue())
	assert.PanicsWithValue(t, monadic.ErrNoSuchElement, func() { l.RightValue() })

	r := either.Right[int, string]("one")
	assert.Equal(t, "one", r.RightValue())
	assert.PanicsWithValue(t, monadic.ErrNoSuchElement, func() { r.LeftValue() })
}

func TestEitherSwap(t *testing.T) {
	l := either.Left[int, string](1)
	assert.Equal(t, either.Right[string, int](1), l.Swap())
	assert.Equal(t, l, l.Swap().Swap())

	r := either.Right[int, string]("one")
	assert.Equal(t, either.Left[string, int]("one"), r.Swap())
}

func TestEitherFold(t *testing.T) {
	asInt := func(e either.Either[int, string]) int {
		return either.Fold(e, func(n int) int {
			return n
		}, func(s string) int {
			n, _ := strconv.Atoi(s)
			return n
		})
	}
	assert.Equal(t, 1, asInt(either.Left[int, string](1)))
	assert.Equal(t, 2, asInt(either.Right[int, string]("2")))
}

func TestEitherString(t *testing.T) {
	assert.Equal(t, "Left(2)", either.Left[int, string](2).String())
	assert.Equal(t, "Right(two)", either.Right[int, string]("two").String())
}

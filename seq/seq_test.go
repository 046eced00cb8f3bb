package seq_test

import (
	"testing"

	"github.com/npillmayer/monadic"
	"github.com/npillmayer/monadic/seq"
	"github.com/stretchr/testify/assert"
)

func TestSeqConstruction(t *testing.T) {
	s := seq.Of(1, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())
	assert.True(t, seq.Empty[int]().IsEmpty())
	assert.Equal(t, seq.Seq[int]{7}, seq.Unit(7))
}

func TestSeqHead(t *testing.T) {
	assert.Equal(t, 1, seq.Of(1, 2).Head())
	assert.PanicsWithValue(t, monadic.ErrNoSuchElement, func() { seq.Empty[int]().Head() })
}

func TestSeqMapMethod(t *testing.T) {
	s := seq.Of(1, 2, 3).Map(func(n int) int { return n * 2 })
	assert.Equal(t, seq.Of(2, 4, 6), s)
}

func TestSeqTypeChangingOps(t *testing.T) {
	s := seq.Of(1, 2, 3)
	assert.Equal(t, seq.Of("1", "2", "3"), seq.Map(s, itoa))
	assert.Equal(t, seq.Of(1, 1, 2, 2, 3, 3), seq.FlatMap(s, func(n int) seq.Seq[int] {
		return seq.Of(n, n)
	}))
	assert.Equal(t, seq.Of(1, 3), seq.Filter(s, func(n int) bool { return n%2 == 1 }))
	assert.Equal(t, seq.Of(1, 2, 3, 4), seq.Concat(seq.Of(1, 2), seq.Of(3, 4)))
	assert.True(t, seq.Contains(s, 2))
	assert.False(t, seq.Contains(s, 9))
}

func TestSeqForEach(t *testing.T) {
	sum := 0
	seq.Of(1, 2, 3).ForEach(func(n int) { sum += n })
	assert.Equal(t, 6, sum)
}

func TestSeqBind(t *testing.T) {
	s := seq.Of[any](1, 2, 3)
	doubled := s.Bind(func(x any) monadic.Monad {
		return seq.Of[any](x, x)
	})
	assert.Equal(t, seq.Of[any](1, 1, 2, 2, 3, 3), doubled)

	// Bind concatenates whatever contents f produces, so an f returning
	// empty containers drops elements.
	odds := s.Bind(func(x any) monadic.Monad {
		if x.(int)%2 == 1 {
			return seq.Of[any](x)
		}
		return seq.Empty[any]()
	})
	assert.Equal(t, seq.Of[any](1, 3), odds)
}

func TestSeqString(t *testing.T) {
	assert.Equal(t, "Seq(1, 2, 3)", seq.Of(1, 2, 3).String())
	assert.Equal(t, "Seq()", seq.Empty[int]().String())
}

func itoa(n int) string {
	return string(rune('0' + n))
}

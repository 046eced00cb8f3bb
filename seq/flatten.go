package seq

import (
	"github.com/npillmayer/monadic"
)

// ShallowFlatten performs exactly one level of unwrapping: every element of
// xs that is itself a bindable container is replaced by its immediate
// contents (zero items for an empty/absent/wrongly-biased one, one item for
// an option or a projection, all elements for a sequence), while plain
// elements are kept unchanged. A doubly-nested container loses its outer
// layer only.
//
// The container test is structural: anything implementing monadic.Monad is
// unwrapped, nothing else is dug into.
func ShallowFlatten(xs Seq[any]) Seq[any] {
	var out Seq[any]
	for _, e := range xs {
		if m, ok := e.(monadic.Monad); ok {
			out = append(out, monadic.Contents(m)...)
		} else {
			out = append(out, e)
		}
	}
	return out
}

// Flatten repeats the shallow-flatten step until a fixed point is reached:
// no element of the result is a bindable container. Empty containers at any
// nesting depth contribute nothing, and the result order is the
// left-to-right, depth-first expansion of the input.
//
// The input must be finitely nested. Flattening a self-referential or
// unboundedly nested structure does not terminate; such inputs are outside
// the contract of this package.
func Flatten(xs Seq[any]) Seq[any] {
	for round := 0; ; round++ {
		if !anyContainer(xs) {
			tracer().Debugf("flatten reached fixed point after %d round(s)", round)
			return xs
		}
		xs = ShallowFlatten(xs)
	}
}

func anyContainer(xs Seq[any]) bool {
	for _, e := range xs {
		if _, ok := e.(monadic.Monad); ok {
			return true
		}
	}
	return false
}

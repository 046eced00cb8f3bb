/*
Package seq provides an ordered, insertion-order-preserving sequence container
with list-monad semantics: Bind applies a function to every element and
concatenates the resulting containers in order. Seq implements the
bindable-container contract of the root package.

The package also hosts the flatten family. ShallowFlatten and Flatten operate
over heterogeneous sequences whose elements may themselves be bindable
containers of differing kinds — options, projections, results, nested
sequences. Detection is per element and structural (a capability check against
the contract), never a closed list of known container types.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'monadic.seq'.
func tracer() tracing.Trace {
	return tracing.Select("monadic.seq")
}

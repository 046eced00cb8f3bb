/*
Package either provides a disjoint-union container: a value is either Left or
Right, with exactly one side occupied. The union itself is not a bindable
container — it has no inherent bias — but each side is independently
projectable into one (LeftProjection, RightProjection), which is how eithers
participate in the generic derived operations and in the flatten family of
package seq.

By convention Left carries the failure and Right the success, but nothing in
this package enforces that reading.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package either

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'monadic.either'.
func tracer() tracing.Trace {
	return tracing.Select("monadic.either")
}

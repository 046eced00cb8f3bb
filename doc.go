/*
Package monadic provides a small family of algebraic container types — optional
values, disjoint unions (either-left-or-right) and sequences — unified by a single
“bindable container” contract.

The contract is the Monad interface: one primitive composition operation (Bind)
plus the two constructors Unit and Empty. Every other operation of this package —
Map, FlatMap, Filter, Any, All, GetOrElse and the flatten family in package seq —
is derived from that primitive alone, so a new container type inherits the whole
operation set by implementing three methods.

Containers are immutable values: no operation mutates an existing instance, and
sharing them across goroutines needs no locking.

Clients normally work with the typed container packages (option, either, result,
seq) and fall back to the type-erased contract only where containers of different
kinds meet, most prominently when flattening heterogeneous sequences.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monadic

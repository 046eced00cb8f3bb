package either

import (
	"reflect"

	"github.com/pkg/errors"
)

// concatConfig collects the pluggable pieces of a concatenation. Zero fields
// fall back to the generic payload combiner.
type concatConfig[L, R any] struct {
	lefts     func(L, L) L
	rights    func(R, R) R
	transform func(R) R
}

// ConcatOption is a type to help configuring union concatenation.
type ConcatOption[L, R any] struct {
	config func(c concatConfig[L, R]) concatConfig[L, R]
}

// OnLefts is an option to set the combining function for two left payloads.
//
// Use it like this:
//
//	e := either.Concat(a, b, either.OnLefts[[]string, int](mergeMsgs))
//
func OnLefts[L, R any](f func(L, L) L) ConcatOption[L, R] {
	conf := func(c concatConfig[L, R]) concatConfig[L, R] {
		c.lefts = f
		return c
	}
	return ConcatOption[L, R]{config: conf}
}

// OnRights is an option to set the combining function for two right payloads.
func OnRights[L, R any](f func(R, R) R) ConcatOption[L, R] {
	conf := func(c concatConfig[L, R]) concatConfig[L, R] {
		c.rights = f
		return c
	}
	return ConcatOption[L, R]{config: conf}
}

// Transformed is an option to post-process the combined payload of a
// successful (both-Right) concatenation. It is never applied on the Left
// path.
func Transformed[L, R any](f func(R) R) ConcatOption[L, R] {
	conf := func(c concatConfig[L, R]) concatConfig[L, R] {
		c.transform = f
		return c
	}
	return ConcatOption[L, R]{config: conf}
}

// Concat concatenates two unions. Left dominates: if either operand is Left,
// the result is Left — with the combined left payloads if both are, with the
// single surviving left payload otherwise. If both operands are Right, the
// result is Right with the combined right payloads, post-processed by the
// Transformed option if one was given.
//
// Combining defaults to the generic payload combiner (numeric addition,
// string and slice concatenation) and is overridden with OnLefts/OnRights.
func Concat[L, R any](a, b Either[L, R], opts ...ConcatOption[L, R]) Either[L, R] {
	a.check()
	b.check()
	cfg := concatConfig[L, R]{}
	for _, opt := range opts {
		cfg = opt.config(cfg)
	}
	switch {
	case a.side == leftSide && b.side == leftSide:
		tracer().Debugf("concat of %v and %v combines left payloads", a, b)
		if cfg.lefts != nil {
			return Left[L, R](cfg.lefts(a.left, b.left))
		}
		return Left[L, R](combine(a.left, b.left).(L))
	case a.side == leftSide:
		return a
	case b.side == leftSide:
		return b
	}
	tracer().Debugf("concat of %v and %v combines right payloads", a, b)
	var r R
	if cfg.rights != nil {
		r = cfg.rights(a.right, b.right)
	} else {
		r = combine(a.right, b.right).(R)
	}
	if cfg.transform != nil {
		r = cfg.transform(r)
	}
	return Right[L, R](r)
}

// combine is the generic fallback for concatenating two like-typed payloads:
// addition for the numeric kinds, concatenation for strings and slices.
func combine(a, b any) any {
	switch x := a.(type) {
	case int:
		return x + b.(int)
	case int8:
		return x + b.(int8)
	case int16:
		return x + b.(int16)
	case int32:
		return x + b.(int32)
	case int64:
		return x + b.(int64)
	case uint:
		return x + b.(uint)
	case uint8:
		return x + b.(uint8)
	case uint16:
		return x + b.(uint16)
	case uint32:
		return x + b.(uint32)
	case uint64:
		return x + b.(uint64)
	case float32:
		return x + b.(float32)
	case float64:
		return x + b.(float64)
	case string:
		return x + b.(string)
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.Slice && bv.Kind() == reflect.Slice && av.Type() == bv.Type() {
		return reflect.AppendSlice(av, bv).Interface()
	}
	panic(errors.Errorf("either: cannot concatenate payloads of type %T and %T", a, b))
}

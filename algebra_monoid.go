package sparsekernel

import (
	"math"
	"reflect"
)

// Monoid pairs an associative, commutative BinaryOp with its identity
// element. Represented as a closure rather than a struct, for the same
// "no generic constants" reason as BinaryOp (see algebra_binary.go);
// predefined monoids below are ordinary generic functions returning one of
// these closures, so PlusMonoid[int] is usable as a value everywhere a
// Monoid[int] is expected.
type Monoid[D any] func() (op BinaryOp[D, D, D], identity D)

// Operator returns the monoid's binary operator.
func (m Monoid[D]) Operator() BinaryOp[D, D, D] {
	op, _ := m()
	return op
}

// Identity returns the monoid's identity element.
func (m Monoid[D]) Identity() D {
	_, id := m()
	return id
}

// NewMonoid builds a Monoid from an explicit operator and identity.
func NewMonoid[D any](op BinaryOp[D, D, D], identity D) Monoid[D] {
	return func() (BinaryOp[D, D, D], D) {
		return op, identity
	}
}

func PlusMonoid[T Number]() Monoid[T] {
	return NewMonoid(Plus[T], 0)
}

func TimesMonoid[T Number]() Monoid[T] {
	return NewMonoid(Times[T], 1)
}

// maxValue returns the maximum representable value of T, used as the
// identity of MinMonoid (the additive identity of "min" is +infinity;
// where T cannot represent infinity, its maximum value stands in).
//
// The integer cases add the limit to a non-constant copy of zero: a
// constant converted to T directly would have to fit every type in
// Number's type set, which MaxInt64 and the like do not.
func maxValue[T Number]() T {
	var zero T
	switch reflect.ValueOf(zero).Kind() {
	case reflect.Int:
		return T(int64(zero) + math.MaxInt)
	case reflect.Int8:
		return T(int64(zero) + math.MaxInt8)
	case reflect.Int16:
		return T(int64(zero) + math.MaxInt16)
	case reflect.Int32:
		return T(int64(zero) + math.MaxInt32)
	case reflect.Int64:
		return T(int64(zero) + math.MaxInt64)
	case reflect.Uint:
		return T(uint64(zero) + math.MaxUint)
	case reflect.Uint8:
		return T(uint64(zero) + math.MaxUint8)
	case reflect.Uint16:
		return T(uint64(zero) + math.MaxUint16)
	case reflect.Uint32:
		return T(uint64(zero) + math.MaxUint32)
	case reflect.Uint64:
		return T(uint64(zero) + math.MaxUint64)
	case reflect.Uintptr:
		return T(uint64(zero) + uint64(^uintptr(0)))
	case reflect.Float32:
		return T(float32(math.Inf(1)))
	case reflect.Float64:
		return T(math.Inf(1))
	default:
		panic("sparsekernel: maxValue: unsupported Number kind")
	}
}

// minValue returns the minimum representable value of T. Used as the
// identity of MaxMonoid.
//
// The GraphBLAS Template Library this package is grounded on hardcodes 0
// as MaxMonoid's identity for every scalar domain, which is mathematically
// wrong for signed and floating-point types (its own algebra.hpp flags
// this with a "/// @todo" comment). This implementation always uses the
// type's true minimum (or -Inf for floats), resolving the Open Question
// spec.md §9 raises instead of carrying the bug forward.
func minValue[T Number]() T {
	var zero T
	switch reflect.ValueOf(zero).Kind() {
	case reflect.Int:
		return T(int64(zero) + math.MinInt)
	case reflect.Int8:
		return T(int64(zero) + math.MinInt8)
	case reflect.Int16:
		return T(int64(zero) + math.MinInt16)
	case reflect.Int32:
		return T(int64(zero) + math.MinInt32)
	case reflect.Int64:
		return T(int64(zero) + math.MinInt64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 0
	case reflect.Float32:
		return T(float32(math.Inf(-1)))
	case reflect.Float64:
		return T(math.Inf(-1))
	default:
		panic("sparsekernel: minValue: unsupported Number kind")
	}
}

func MinMonoid[T Number]() Monoid[T] {
	return NewMonoid(Min[T], maxValue[T]())
}

func MaxMonoid[T Number]() Monoid[T] {
	return NewMonoid(Max[T], minValue[T]())
}

func LOrMonoid() Monoid[bool] {
	return NewMonoid(LOr, false)
}

func LAndMonoid() Monoid[bool] {
	return NewMonoid(LAnd, true)
}

func LXorMonoid() Monoid[bool] {
	return NewMonoid(LXor, false)
}

func LXNorMonoid() Monoid[bool] {
	return NewMonoid(LXNor, true)
}

package sparsekernel

import "math"

// BinaryOp is a stateless element-wise function combining Din1 and Din2
// into Dout. Kept as a plain function type, not a struct with a method,
// because Go generics have no "generic constant" facility for predefined
// operators/monoids/semirings to be expressed as typed values otherwise
// (the same reasoning the example pack's GraphBLAS port documents for its
// own BinaryOp/Monoid/Semiring types).
type BinaryOp[Dout, Din1, Din2 any] func(in1 Din1, in2 Din2) Dout

// Logical operators.

func LOr(x, y bool) bool   { return x || y }
func LAnd(x, y bool) bool  { return x && y }
func LXor(x, y bool) bool  { return x != y }
func LXNor(x, y bool) bool { return x == y }

// Bitwise operators.

func BOr[T Integer](x, y T) T   { return x | y }
func BAnd[T Integer](x, y T) T  { return x & y }
func BXor[T Integer](x, y T) T  { return x ^ y }
func BXNor[T Integer](x, y T) T { return ^(x ^ y) }

// Comparisons. Always return bool regardless of the operand domain.

func Eq[T comparable](x, y T) bool { return x == y }
func Ne[T comparable](x, y T) bool { return x != y }
func Gt[T Ordered](x, y T) bool    { return x > y }
func Lt[T Ordered](x, y T) bool    { return x < y }
func Ge[T Ordered](x, y T) bool    { return x >= y }
func Le[T Ordered](x, y T) bool    { return x <= y }

// First returns its left operand, ignoring the right. Used, e.g., to build
// semirings whose multiplication discards B's value (MinFirst, MaxFirst).
func First[D1, D2 any](x D1, _ D2) D1 { return x }

// Second returns its right operand, ignoring the left.
func Second[D1, D2 any](_ D1, y D2) D2 { return y }

// Oneb always returns the multiplicative identity of Dout, ignoring both
// operands — used to build "pattern" semirings that count structural
// overlap rather than combine values.
func Oneb[Dout Number, Din1, Din2 any](_ Din1, _ Din2) Dout { return 1 }

// Min returns the smaller of its two operands.
func Min[T Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of its two operands.
func Max[T Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

func Plus[T Number](x, y T) T  { return x + y }
func Minus[T Number](x, y T) T { return x - y }
func Times[T Number](x, y T) T { return x * y }

// Div is undefined at y == 0; the library does not guard (spec §4.1).
func Div[T Number](x, y T) T { return x / y }

// Power computes x to the y-th power via the standard library's float
// exponentiation, cast back into T. Matches the original library's
// std::pow-based Power operator (algebra.hpp).
func Power[T Number](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

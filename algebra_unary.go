package sparsekernel

import "math"

// Type constraints shared by the algebra layer. Named the same way the
// example pack's generics-based GraphBLAS port names them, since a
// reimplementation from scratch would reinvent the same four groupings.
type (
	Signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}

	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
	}

	Integer interface {
		Signed | Unsigned
	}

	Float interface {
		~float32 | ~float64
	}

	Number interface {
		Integer | Float
	}

	Ordered interface {
		Number | ~string
	}
)

// UnaryOp is a stateless element-wise function from Din to Dout.
type UnaryOp[Dout, Din any] func(in Din) Dout

// Identity returns its argument unchanged. Input and output share one
// type, so it performs no conversion between domains.
func Identity[T any](x T) T {
	return x
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	return T(math.Abs(float64(x)))
}

// AInv is the additive inverse (negation).
func AInv[T Number](x T) T {
	return -x
}

// MInv is the multiplicative inverse. Undefined at zero; the library does
// not guard against division by zero (spec §4.1).
func MInv[T Float](x T) T {
	return 1 / x
}

// LNot is logical negation.
func LNot(x bool) bool {
	return !x
}

// BNot is bitwise negation.
func BNot[T Integer](x T) T {
	return ^x
}

// BindFirst turns a BinaryOp into a UnaryOp by fixing its first argument.
// The Go rendering of the original library's std::bind-based unary
// adaptors (algebra.hpp).
func BindFirst[Dout, Din1, Din2 any](op BinaryOp[Dout, Din1, Din2], fixed Din1) UnaryOp[Dout, Din2] {
	return func(in Din2) Dout {
		return op(fixed, in)
	}
}

// BindSecond turns a BinaryOp into a UnaryOp by fixing its second argument.
func BindSecond[Dout, Din1, Din2 any](op BinaryOp[Dout, Din1, Din2], fixed Din2) UnaryOp[Dout, Din1] {
	return func(in Din1) Dout {
		return op(in, fixed)
	}
}

package sparsekernel

// Semiring pairs an additive Monoid[D3] with a multiplicative
// BinaryOp[D3,D1,D2]. Domains D1 (left input), D2 (right input) and D3
// (result) may all differ, so the same mxm routine handles mixed-precision
// or mixed-type products (spec §3).
//
// Represented as a closure for the same reason as Monoid and BinaryOp: Go
// has no generic constants, so predefined semirings are generic functions
// returning a value of this type rather than package-level variables.
type Semiring[D3, D1, D2 any] func() (add Monoid[D3], mult BinaryOp[D3, D1, D2])

// Add returns the semiring's additive monoid.
func (s Semiring[D3, D1, D2]) Add() Monoid[D3] {
	add, _ := s()
	return add
}

// Mult returns the semiring's multiplicative operator.
func (s Semiring[D3, D1, D2]) Mult() BinaryOp[D3, D1, D2] {
	_, mult := s()
	return mult
}

// Zero returns the semiring's additive identity (the "no contribution"
// value for the axpy accumulation in mxm).
func (s Semiring[D3, D1, D2]) Zero() D3 {
	return s.Add().Identity()
}

// NewSemiring builds a Semiring from an additive monoid and a
// multiplicative operator.
func NewSemiring[D3, D1, D2 any](add Monoid[D3], mult BinaryOp[D3, D1, D2]) Semiring[D3, D1, D2] {
	return func() (Monoid[D3], BinaryOp[D3, D1, D2]) {
		return add, mult
	}
}

// MultiplicativeOp adapts a Semiring into a freestanding multiplicative
// BinaryOp, for generic code that only needs the "times" half (e.g.
// Kronecker, which spec §4.5.9 defines in terms of a BinaryOp, not a full
// semiring). The Go rendering of the original library's
// MultiplicativeOpFromSemiring adaptor (algebra.hpp).
func MultiplicativeOp[D3, D1, D2 any](s Semiring[D3, D1, D2]) BinaryOp[D3, D1, D2] {
	return s.Mult()
}

// AdditiveMonoid adapts a Semiring into its freestanding additive Monoid,
// for generic code that only needs the "plus" half. The Go rendering of
// the original library's AdditiveMonoidFromSemiring adaptor.
func AdditiveMonoid[D3, D1, D2 any](s Semiring[D3, D1, D2]) Monoid[D3] {
	return s.Add()
}

// Predefined semirings over a single numeric domain D (D1 = D2 = D3 = D),
// matching the named semirings of spec §8's scenario set and the
// original library's GEN_GRAPHBLAS_SEMIRING instantiations.

func PlusTimesSemiring[T Number]() Semiring[T, T, T] {
	return NewSemiring(PlusMonoid[T](), Times[T])
}

func MinPlusSemiring[T Number]() Semiring[T, T, T] {
	return NewSemiring(MinMonoid[T](), Plus[T])
}

func MaxPlusSemiring[T Number]() Semiring[T, T, T] {
	return NewSemiring(MaxMonoid[T](), Plus[T])
}

func MinTimesSemiring[T Number]() Semiring[T, T, T] {
	return NewSemiring(MinMonoid[T](), Times[T])
}

func MaxTimesSemiring[T Number]() Semiring[T, T, T] {
	return NewSemiring(MaxMonoid[T](), Times[T])
}

func MinMaxSemiring[T Number]() Semiring[T, T, T] {
	return NewSemiring(MinMonoid[T](), Max[T])
}

func MaxMinSemiring[T Number]() Semiring[T, T, T] {
	return NewSemiring(MaxMonoid[T](), Min[T])
}

func PlusMinSemiring[T Number]() Semiring[T, T, T] {
	return NewSemiring(PlusMonoid[T](), Min[T])
}

// MinFirstSemiring and MinSecondSemiring let the multiplicative operator's
// non-selected domain vary independently, matching the original library's
// MinSelect1stSemiring/MinSelect2ndSemiring.
func MinFirstSemiring[T Number, D2 any]() Semiring[T, T, D2] {
	return NewSemiring(MinMonoid[T](), First[T, D2])
}

func MinSecondSemiring[T Number, D1 any]() Semiring[T, D1, T] {
	return NewSemiring(MinMonoid[T](), Second[D1, T])
}

func MaxFirstSemiring[T Number, D2 any]() Semiring[T, T, D2] {
	return NewSemiring(MaxMonoid[T](), First[T, D2])
}

func MaxSecondSemiring[T Number, D1 any]() Semiring[T, D1, T] {
	return NewSemiring(MaxMonoid[T](), Second[D1, T])
}

func LOrLAndSemiring() Semiring[bool, bool, bool] {
	return NewSemiring(LOrMonoid(), LAnd)
}

func LAndLOrSemiring() Semiring[bool, bool, bool] {
	return NewSemiring(LAndMonoid(), LOr)
}

func LXorLAndSemiring() Semiring[bool, bool, bool] {
	return NewSemiring(LXorMonoid(), LAnd)
}

func LXNorLOrSemiring() Semiring[bool, bool, bool] {
	return NewSemiring(LXNorMonoid(), LOr)
}

// ArithmeticSemiring is the spec §8 default for the end-to-end scenarios:
// PlusTimesSemiring over a numeric domain.
func ArithmeticSemiring[T Number]() Semiring[T, T, T] {
	return PlusTimesSemiring[T]()
}

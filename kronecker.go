package sparsekernel

// Kronecker computes C<mask,outp> = C (accum) kron(A, B, op): the block
// matrix of shape (nrows(A)*nrows(B), ncols(A)*ncols(B)) whose
// (i*nrows(B)+k, j*ncols(B)+l) block entry is op(A[i,j], B[k,l]) for
// every pair of stored entries (spec §4.5.9). Grounded on the original
// library's three-tier KroneckerBinaryOp/KroneckerMonoid/KroneckerSemiring
// entry points (api_Mult.go), scoped here to plain matrices: unlike mxm,
// nothing in the spec requires Kronecker to accept transpose views.
func Kronecker[D3, D1, D2, M comparable](
	C *Matrix[D3],
	mask *MaskView[M],
	accum BinaryOp[D3, D3, D3],
	op BinaryOp[D3, D1, D2],
	A *Matrix[D1],
	B *Matrix[D2],
	outp OutputControl,
) error {
	arows, acols := A.NRows(), A.NCols()
	brows, bcols := B.NRows(), B.NCols()
	wantRows, wantCols := arows*brows, acols*bcols
	if C.NRows() != wantRows || C.NCols() != wantCols {
		return dimErrorf("Kronecker", "C is %dx%d, want %dx%d", C.NRows(), C.NCols(), wantRows, wantCols)
	}
	if mask != nil && (mask.NRows() != wantRows || mask.NCols() != wantCols) {
		return dimErrorf("Kronecker", "mask is %dx%d, want %dx%d", mask.NRows(), mask.NCols(), wantRows, wantCols)
	}

	aliased := sameAny(C, A) || sameAny(C, B) || (mask != nil && sameAny(C, mask.m))
	out := C
	if aliased {
		out = C.Dup()
	}

	work := make([]Row[D3], wantRows)
	for i := 0; i < arows; i++ {
		Arow := A.RowRef(i)
		if Arow.Empty() {
			continue
		}
		for k := 0; k < brows; k++ {
			Brow := B.RowRef(k)
			if Brow.Empty() {
				continue
			}
			outRow := i*brows + k
			// j increases, and within a fixed j so does l, so columns
			// are produced in strictly ascending order: j*bcols+l <
			// (j+1)*bcols+l' for every l, l' < bcols.
			var Trow Row[D3]
			for p := 0; p < Arow.Len(); p++ {
				j, aval := Arow.At(p)
				for q := 0; q < Brow.Len(); q++ {
					l, bval := Brow.At(q)
					col := j*bcols + l
					if mask == nil || mask.test(outRow, col) {
						Trow.PushBack(col, op(aval, bval))
					}
				}
			}
			work[outRow] = Trow
		}
	}

	writeResult(out, work, mask, accum, outp)

	if aliased {
		C.Swap(out)
	}
	return nil
}

// KroneckerMonoid builds the Kronecker product's elementwise operator
// from a monoid's operator, over a single shared domain.
func KroneckerMonoid[D, M comparable](C *Matrix[D], mask *MaskView[M], accum BinaryOp[D, D, D], mono Monoid[D], A, B *Matrix[D], outp OutputControl) error {
	return Kronecker(C, mask, accum, mono.Operator(), A, B, outp)
}

// KroneckerSemiring builds the Kronecker product's elementwise operator
// from a semiring's multiplicative operator.
func KroneckerSemiring[D3, D1, D2, M comparable](C *Matrix[D3], mask *MaskView[M], accum BinaryOp[D3, D3, D3], sr Semiring[D3, D1, D2], A *Matrix[D1], B *Matrix[D2], outp OutputControl) error {
	return Kronecker(C, mask, accum, sr.Mult(), A, B, outp)
}

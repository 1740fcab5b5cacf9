package sparsekernel

// OutputControl selects what happens to positions of C that this
// operation's write set excludes (spec §3). With a mask present, the
// excluded set is whatever the mask rules out (spec §4.5.3/§4.5.4).
// Without a mask every position is nominally writable, but a row the
// product never touches (spec §4.5.8's nvals(A)=0/nvals(B)=0
// short-circuit, generalized to the per-row case) is still excluded in
// that sense: Replace clears it, Merge leaves the prior row of C alone.
type OutputControl int

const (
	// Replace clears every position the mask excludes.
	Replace OutputControl = iota
	// Merge leaves every position the mask excludes untouched.
	Merge
)

// MxM computes C<mask,outp> = C (accum) (A (x).(+) B) over semiring sr,
// dispatching on whether A and/or B are transpose views (spec §4, §4.4,
// §4.5). Only the A'B' kernel copies data into a transposed layout: it
// builds B's columns as rows once per call.
//
// accum may be nil, meaning the computed product simply overwrites the
// positions it touches. mask may be nil, meaning every position is
// written.
func MxM[D3, D1, D2, M comparable](
	C *Matrix[D3],
	mask *MaskView[M],
	accum BinaryOp[D3, D3, D3],
	sr Semiring[D3, D1, D2],
	A Operand[D1],
	B Operand[D2],
	outp OutputControl,
) error {
	arows, acols := operandShape[D1](A)
	brows, bcols := operandShape[D2](B)
	if acols != brows {
		return dimErrorf("MxM", "inner dimensions disagree: A is %dx%d, B is %dx%d", arows, acols, brows, bcols)
	}
	if C.NRows() != arows || C.NCols() != bcols {
		return dimErrorf("MxM", "C is %dx%d, want %dx%d", C.NRows(), C.NCols(), arows, bcols)
	}
	if mask != nil && (mask.NRows() != C.NRows() || mask.NCols() != C.NCols()) {
		return dimErrorf("MxM", "mask is %dx%d, want %dx%d", mask.NRows(), mask.NCols(), C.NRows(), C.NCols())
	}

	// Aliasing: if C is the same object as A, B, or the mask's backing
	// matrix, the kernels below buffer into a duplicate and swap it into
	// C at the end, rather than special-casing every combination (spec
	// §4.5.7).
	aliased := sameAny(C, A.raw()) || sameAny(C, B.raw()) || (mask != nil && sameAny(C, mask.m))
	out := C
	if aliased {
		out = C.Dup()
	}

	work := computeProduct(A, B, sr, mask)
	writeResult(out, work, mask, accum, outp)

	if aliased {
		C.Swap(out)
	}
	return nil
}

// sameAny reports whether a and b are the same *Matrix[_] object,
// comparing across possibly different element types: if the element
// types differ the dynamic types inside the two interface values differ
// too, so the comparison is false without needing a shared type
// parameter.
func sameAny[A, B any](a *Matrix[A], b *Matrix[B]) bool {
	return any(a) == any(b)
}

// computeProduct dispatches on the transposed-ness of A and B to one of
// the four kernels and returns one working row per output row, already
// filtered by mask (a nil mask passes everything through).
func computeProduct[D3, D1, D2, M comparable](A Operand[D1], B Operand[D2], sr Semiring[D3, D1, D2], mask *MaskView[M]) []Row[D3] {
	aT, bT := A.isTransposed(), B.isTransposed()
	Araw, Braw := A.raw(), B.raw()
	outRows, _ := operandShape[D1](A)
	switch {
	case !aT && !bT:
		return computeAB(Araw, Braw, sr, mask)
	case aT && !bT:
		return computeATB(Araw, Braw, sr, mask, outRows)
	case !aT && bT:
		return computeABT(Araw, Braw, sr, mask)
	default:
		return computeATBT(Araw, Braw, sr, mask, outRows)
	}
}

// computeAB implements the base kernel (spec §4.5.1): output row i is the
// axpy accumulation, over every stored (k, a_ik) in A's row i, of
// a_ik * B's row k. Grounded on the original library's
// AB_NoMask_NoAccum_kernel and its masked variants in
// sparse_mxm_AB.hpp, generalized so the single axpy helper carries the
// mask test for every variant.
func computeAB[D3, D1, D2, M comparable](A *Matrix[D1], B *Matrix[D2], sr Semiring[D3, D1, D2], mask *MaskView[M]) []Row[D3] {
	work := make([]Row[D3], A.NRows())
	for i := 0; i < A.NRows(); i++ {
		Arow := A.RowRef(i)
		for k := 0; k < Arow.Len(); k++ {
			col, a := Arow.At(k)
			Brow := B.RowRef(col)
			if Brow.Empty() {
				continue
			}
			axpy(&work[i], sr, a, Brow, i, mask)
		}
	}
	return work
}

// computeATB implements the A'B kernel (spec §4.5's transpose family):
// the outer loop runs over k, a row of A (equivalently a column of A'),
// and each stored (i, a_ki) in that row contributes a_ki * B's row k to
// the *output* row i's working buffer. Output rows are accumulated
// across every k before being finalized, since a single output row can
// receive contributions from many different k. Grounded on the original
// library's sparse_mxm_ATBT.hpp, whose outer-loop-over-k structure is
// identical once B's rows stand in for B's columns.
func computeATB[D3, D1, D2, M comparable](A *Matrix[D1], B *Matrix[D2], sr Semiring[D3, D1, D2], mask *MaskView[M], outRows int) []Row[D3] {
	work := make([]Row[D3], outRows)
	for k := 0; k < A.NRows(); k++ {
		Brow := B.RowRef(k)
		if Brow.Empty() {
			continue
		}
		Arow := A.RowRef(k)
		for p := 0; p < Arow.Len(); p++ {
			i, a := Arow.At(p)
			axpy(&work[i], sr, a, Brow, i, mask)
		}
	}
	return work
}

// computeABT implements the AB' kernel: (AB')[i,j] = dot(A's row i, B's
// row j) over the semiring, since B'[k,j] = B[j,k] turns the contraction
// into a merge-join of two rows sharing the same index space. A position
// is only written when at least one matching k exists; a dot product
// with zero matches is structurally empty, not a stored semiring zero
// (spec's description of the dot-product kernel).
func computeABT[D3, D1, D2, M comparable](A *Matrix[D1], B *Matrix[D2], sr Semiring[D3, D1, D2], mask *MaskView[M]) []Row[D3] {
	work := make([]Row[D3], A.NRows())
	for i := 0; i < A.NRows(); i++ {
		Arow := A.RowRef(i)
		if Arow.Empty() {
			continue
		}
		var Trow Row[D3]
		for j := 0; j < B.NRows(); j++ {
			if mask != nil && !mask.test(i, j) {
				continue
			}
			Brow := B.RowRef(j)
			if val, ok := dotJoin(Arow, Brow, sr); ok {
				Trow.PushBack(j, val)
			}
		}
		work[i] = Trow
	}
	return work
}

// computeATBT implements the A'B' kernel as the transpose of B*A (spec's
// description of the fourth kernel): the outer loop runs over k, a row of
// A, and each stored (i, a_ki) axpys a_ki * (B's column k) into output
// row i. B's column k plays the role B's row k plays in computeATB.
func computeATBT[D3, D1, D2, M comparable](A *Matrix[D1], B *Matrix[D2], sr Semiring[D3, D1, D2], mask *MaskView[M], outRows int) []Row[D3] {
	work := make([]Row[D3], outRows)
	bcols := buildColumns(B)
	for k := 0; k < A.NRows(); k++ {
		Bcolk := &bcols[k]
		if Bcolk.Empty() {
			continue
		}
		Arow := A.RowRef(k)
		for p := 0; p < Arow.Len(); p++ {
			i, a := Arow.At(p)
			axpy(&work[i], sr, a, Bcolk, i, mask)
		}
	}
	return work
}

// buildColumns returns m's columns as Rows, each sorted by row index
// ascending (a byproduct of visiting m's own rows in ascending order).
func buildColumns[T any](m *Matrix[T]) []Row[T] {
	cols := make([]Row[T], m.NCols())
	for i := 0; i < m.NRows(); i++ {
		Arow := m.RowRef(i)
		for p := 0; p < Arow.Len(); p++ {
			col, val := Arow.At(p)
			cols[col].PushBack(i, val)
		}
	}
	return cols
}

// axpy merges a*row into T in place, combining with any existing entry at
// the same column via the semiring's additive operator, and — when mask
// is non-nil — dropping any column for which mask.test(i, ·) is false
// (spec §4.5.1 for the unmasked case, §4.5.3 for the masked case; the
// same merge serves both since a nil mask never drops anything).
func axpy[D3, D1, D2, M comparable](T *Row[D3], sr Semiring[D3, D1, D2], a D1, row *Row[D2], i Index, mask *MaskView[M]) {
	mult := sr.Mult()
	add := sr.Add().Operator()
	merged := make([]element[D3], 0, T.Len()+row.Len())
	ti, ri := 0, 0
	for ti < T.Len() && ri < row.Len() {
		tcol, tval := T.At(ti)
		rcol, rval := row.At(ri)
		switch {
		case tcol < rcol:
			merged = append(merged, element[D3]{col: tcol, val: tval})
			ti++
		case tcol > rcol:
			if mask == nil || mask.test(i, rcol) {
				merged = append(merged, element[D3]{col: rcol, val: mult(a, rval)})
			}
			ri++
		default:
			merged = append(merged, element[D3]{col: tcol, val: add(tval, mult(a, rval))})
			ti++
			ri++
		}
	}
	for ; ti < T.Len(); ti++ {
		col, val := T.At(ti)
		merged = append(merged, element[D3]{col: col, val: val})
	}
	for ; ri < row.Len(); ri++ {
		col, rval := row.At(ri)
		if mask == nil || mask.test(i, col) {
			merged = append(merged, element[D3]{col: col, val: mult(a, rval)})
		}
	}
	T.elems = merged
}

// dotJoin merges-joins a and b on matching column indices, folding
// matches through the semiring, and reports whether any match occurred.
func dotJoin[D3, D1, D2 any](a *Row[D1], b *Row[D2], sr Semiring[D3, D1, D2]) (D3, bool) {
	mult := sr.Mult()
	add := sr.Add().Operator()
	var acc D3
	matched := false
	ai, bi := 0, 0
	for ai < a.Len() && bi < b.Len() {
		ak, aval := a.At(ai)
		bk, bval := b.At(bi)
		switch {
		case ak < bk:
			ai++
		case ak > bk:
			bi++
		default:
			prod := mult(aval, bval)
			if !matched {
				acc = prod
				matched = true
			} else {
				acc = add(acc, prod)
			}
			ai++
			bi++
		}
	}
	return acc, matched
}

// mergeRows combines two sorted rows: a column present in only one
// carries through unchanged, a column present in both is resolved via
// combine(existing, incoming). Used by writeResult for masked
// accumulation and masked union; Matrix.MergeRow performs the same merge
// in place with its own loop (spec §4.5.2/§4.5.3/§4.5.4 all reduce to this
// same merge with different inputs).
func mergeRows[T any](existing, incoming Row[T], combine BinaryOp[T, T, T]) Row[T] {
	merged := make([]element[T], 0, existing.Len()+incoming.Len())
	ei, ri := 0, 0
	for ei < existing.Len() && ri < incoming.Len() {
		ecol, eval := existing.At(ei)
		rcol, rval := incoming.At(ri)
		switch {
		case ecol < rcol:
			merged = append(merged, element[T]{col: ecol, val: eval})
			ei++
		case ecol > rcol:
			merged = append(merged, element[T]{col: rcol, val: rval})
			ri++
		default:
			merged = append(merged, element[T]{col: ecol, val: combine(eval, rval)})
			ei++
			ri++
		}
	}
	for ; ei < existing.Len(); ei++ {
		col, val := existing.At(ei)
		merged = append(merged, element[T]{col: col, val: val})
	}
	for ; ri < incoming.Len(); ri++ {
		col, val := incoming.At(ri)
		merged = append(merged, element[T]{col: col, val: val})
	}
	return Row[T]{elems: merged}
}

// filterRow returns the subsequence of r whose columns satisfy keep.
func filterRow[T any](r *Row[T], keep func(col Index) bool) Row[T] {
	var out Row[T]
	for p := 0; p < r.Len(); p++ {
		col, val := r.At(p)
		if keep(col) {
			out.PushBack(col, val)
		}
	}
	return out
}

// writeResult finalizes every output row of out from its working row in
// work, per the accum/mask/outp combination (spec §4.5.1-§4.5.5).
func writeResult[D3, M comparable](out *Matrix[D3], work []Row[D3], mask *MaskView[M], accum BinaryOp[D3, D3, D3], outp OutputControl) {
	if mask == nil {
		// No mask: every position is nominally writable. With accum,
		// only nonempty working rows are merged in regardless of outp
		// (spec §4.5.2, §4.5.8 — an accum that finds nothing to combine
		// contributes nothing, so the row is left exactly as it was).
		// Without accum, Replace always overwrites (spec §4.5.1, "assign
		// the working row... including when empty"); Merge additionally
		// skips rows the product never touched, per §4.5.8's
		// empty-product short-circuit generalized to individual rows.
		for i := range work {
			if accum == nil {
				if outp == Merge && work[i].Empty() {
					continue
				}
				out.SetRow(i, work[i])
				continue
			}
			if !work[i].Empty() {
				out.MergeRow(i, work[i], accum)
			}
		}
		return
	}

	for i := range work {
		Trow := work[i]
		Cold := out.RowRef(i).Clone()

		var final Row[D3]
		if accum == nil {
			final = Trow
		} else {
			CmaskedIn := filterRow(&Cold, func(col Index) bool { return mask.test(i, col) })
			final = mergeRows(CmaskedIn, Trow, accum)
		}

		if outp == Replace {
			out.SetRow(i, final)
			continue
		}

		CnotMasked := filterRow(&Cold, func(col Index) bool { return !mask.test(i, col) })
		out.SetRow(i, mergeRows(CnotMasked, final, Second[D3, D3]))
	}
}

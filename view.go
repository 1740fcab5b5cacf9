package sparsekernel

// TransposedMatrix is a lightweight, non-owning view of a Matrix that
// presents its columns as rows. Building the view copies nothing (spec
// §4.4); mxm's transpose-specialized kernels consume it directly, and only
// the A'B' kernel builds a column-wise copy of B while it runs.
//
// Views must not outlive the Matrix they reference (spec §5).
type TransposedMatrix[T any] struct {
	m *Matrix[T]
}

// Transpose wraps m in a transpose view.
func Transpose[T any](m *Matrix[T]) TransposedMatrix[T] {
	return TransposedMatrix[T]{m: m}
}

// NRows and NCols report the transposed shape: the view's row count is the
// underlying matrix's column count, and vice versa.
func (t TransposedMatrix[T]) NRows() int { return t.m.NCols() }
func (t TransposedMatrix[T]) NCols() int { return t.m.NRows() }

// Unwrap returns the underlying matrix the view was built from.
func (t TransposedMatrix[T]) Unwrap() *Matrix[T] { return t.m }

func (t TransposedMatrix[T]) raw() *Matrix[T]   { return t.m }
func (t TransposedMatrix[T]) isTransposed() bool { return true }

func (m *Matrix[T]) raw() *Matrix[T]   { return m }
func (m *Matrix[T]) isTransposed() bool { return false }

// Operand is either a *Matrix[T] or a TransposedMatrix[T], accepted
// wherever MxM takes an A or B argument, so the transpose dispatch can be
// selected from the argument's type. Kronecker takes plain *Matrix
// operands only.
type Operand[T any] interface {
	raw() *Matrix[T]
	isTransposed() bool
}

func operandShape[T any](op Operand[T]) (rows, cols int) {
	r := op.raw()
	if op.isTransposed() {
		return r.NCols(), r.NRows()
	}
	return r.NRows(), r.NCols()
}

// MaskView gates which (i, j) positions of an operation's output are
// "in" the mask, per spec §3/§4.4: a mask may be any matrix, not just a
// boolean one — "truthy" membership means the stored value differs from
// M's zero value. Four combinations are supported: plain, structure-only
// (value ignored, presence alone is membership), complement, and
// structural complement. A nil *MaskView means "no mask" (every position
// is in).
type MaskView[M comparable] struct {
	m          *Matrix[M]
	structural bool // ignore stored value, presence alone is membership
	complement bool // negate the membership test
}

// Structure builds a mask view where membership is "a pair is stored at
// (i, j)", regardless of its value.
func Structure[M comparable](m *Matrix[M]) *MaskView[M] {
	return &MaskView[M]{m: m, structural: true}
}

// Plain builds a mask view where membership additionally requires the
// stored value to be truthy (not equal to M's zero value).
func Plain[M comparable](m *Matrix[M]) *MaskView[M] {
	return &MaskView[M]{m: m}
}

// Complement negates an existing mask view's membership test.
func Complement[M comparable](v *MaskView[M]) *MaskView[M] {
	return &MaskView[M]{m: v.m, structural: v.structural, complement: !v.complement}
}

// ComplementStructure is shorthand for Complement(Structure(m)).
func ComplementStructure[M comparable](m *Matrix[M]) *MaskView[M] {
	return Complement(Structure(m))
}

// NRows and NCols report the underlying mask matrix's shape.
func (v *MaskView[M]) NRows() int { return v.m.NRows() }
func (v *MaskView[M]) NCols() int { return v.m.NCols() }

// test reports whether (i, j) is "in" the mask as seen by this view,
// after applying the structural and complement flags.
func (v *MaskView[M]) test(i, j Index) bool {
	var in bool
	val, ok := v.m.RowRef(i).Find(j)
	if v.structural {
		in = ok
	} else {
		var zero M
		in = ok && val != zero
	}
	if v.complement {
		return !in
	}
	return in
}

package sparsekernel

// Matrix is a sparse matrix stored as a list of rows, each an ordered
// Row[T] of (column, value) pairs (spec §4.3 — a "list of lists", the
// same storage shape as the GraphBLAS Template Library's
// LilSparseMatrix, which every mxm kernel this package implements is
// grounded on).
//
// A Matrix's dimensions are set at construction. Swap is the one
// operation that changes them, since it exchanges dimensions along with
// contents; every other mutator changes only the stored pairs.
type Matrix[T any] struct {
	nrows, ncols int
	rows         []Row[T]
	nvals        int
}

// NewMatrix returns an empty nrows x ncols matrix.
func NewMatrix[T any](nrows, ncols int) *Matrix[T] {
	if nrows < 0 || ncols < 0 {
		panic("sparsekernel: NewMatrix: negative dimension")
	}
	return &Matrix[T]{
		nrows: nrows,
		ncols: ncols,
		rows:  make([]Row[T], nrows),
	}
}

// NRows returns the number of rows.
func (m *Matrix[T]) NRows() int { return m.nrows }

// NCols returns the number of columns.
func (m *Matrix[T]) NCols() int { return m.ncols }

// NVals returns the number of stored pairs, maintained incrementally as
// the sum of row lengths (spec §3).
func (m *Matrix[T]) NVals() int { return m.nvals }

func (m *Matrix[T]) checkRow(i Index, op string) error {
	if i < 0 || i >= m.nrows {
		return &InvalidIndexError{Op: op, Index: i, Bound: m.nrows}
	}
	return nil
}

func (m *Matrix[T]) checkCol(j Index, op string) error {
	if j < 0 || j >= m.ncols {
		return &InvalidIndexError{Op: op, Index: j, Bound: m.ncols}
	}
	return nil
}

// Row returns a copy of row i. Use RowRef for allocation-free read access
// inside kernels.
func (m *Matrix[T]) Row(i Index) (Row[T], error) {
	if err := m.checkRow(i, "Row"); err != nil {
		return Row[T]{}, err
	}
	return m.rows[i].Clone(), nil
}

// RowRef returns a direct, read-only reference to row i's storage, for use
// by in-kernel code that must not mutate it (spec §4.3's
// "operator[](i) returning the row for in-kernel use").
func (m *Matrix[T]) RowRef(i Index) *Row[T] {
	return &m.rows[i]
}

// Col returns the (row, value) pairs stored in column j, built by
// scanning every row (spec §4.3 notes this may iterate all rows).
func (m *Matrix[T]) Col(j Index) ([]struct {
	Row Index
	Val T
}, error) {
	if err := m.checkCol(j, "Col"); err != nil {
		return nil, err
	}
	var out []struct {
		Row Index
		Val T
	}
	for i := range m.rows {
		if v, ok := m.rows[i].Find(j); ok {
			out = append(out, struct {
				Row Index
				Val T
			}{Row: i, Val: v})
		}
	}
	return out, nil
}

// HasElement reports whether a pair is stored at (i, j).
func (m *Matrix[T]) HasElement(i, j Index) (bool, error) {
	if err := m.checkRow(i, "HasElement"); err != nil {
		return false, err
	}
	if err := m.checkCol(j, "HasElement"); err != nil {
		return false, err
	}
	_, ok := m.rows[i].Find(j)
	return ok, nil
}

// Element returns the value stored at (i, j), Go-idiomatic "maybe absent"
// style: (zero value, false) when nothing is stored there.
func (m *Matrix[T]) Element(i, j Index) (val T, ok bool, err error) {
	if err = m.checkRow(i, "Element"); err != nil {
		return
	}
	if err = m.checkCol(j, "Element"); err != nil {
		return
	}
	val, ok = m.rows[i].Find(j)
	return
}

// ExtractElement returns the value stored at (i, j), raising a NoValueError
// if the position is empty (spec §4.3/§7 — the named NoValueException
// contract point).
func (m *Matrix[T]) ExtractElement(i, j Index) (T, error) {
	val, ok, err := m.Element(i, j)
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok {
		var zero T
		return zero, &NoValueError{Row: i, Col: j}
	}
	return val, nil
}

// SetElement stores val at (i, j), inserting it if absent or overwriting
// it if present, and keeps nvals consistent.
func (m *Matrix[T]) SetElement(i, j Index, val T) error {
	if err := m.checkRow(i, "SetElement"); err != nil {
		return err
	}
	if err := m.checkCol(j, "SetElement"); err != nil {
		return err
	}
	before := m.rows[i].Len()
	m.rows[i].SortedInsert(j, val)
	m.nvals += m.rows[i].Len() - before
	return nil
}

// RemoveElement deletes any pair stored at (i, j); a no-op if absent.
func (m *Matrix[T]) RemoveElement(i, j Index) error {
	if err := m.checkRow(i, "RemoveElement"); err != nil {
		return err
	}
	if err := m.checkCol(j, "RemoveElement"); err != nil {
		return err
	}
	before := m.rows[i].Len()
	m.rows[i].Remove(j)
	m.nvals -= before - m.rows[i].Len()
	return nil
}

// SetRow replaces row i wholesale and adjusts nvals accordingly, including
// when row is empty — which erases any prior content of row i (spec
// §4.3/§4.5.1).
func (m *Matrix[T]) SetRow(i Index, row Row[T]) error {
	if err := m.checkRow(i, "SetRow"); err != nil {
		return err
	}
	m.nvals += row.Len() - m.rows[i].Len()
	m.rows[i] = row
	return nil
}

// MergeRow combines row into existing row i using accum: for every column
// present only in row, it is inserted as a fresh write; for every column
// present in both, the existing value is replaced by
// accum(existing, incoming) (spec §4.5.2).
func (m *Matrix[T]) MergeRow(i Index, row Row[T], accum BinaryOp[T, T, T]) error {
	if err := m.checkRow(i, "MergeRow"); err != nil {
		return err
	}
	existing := &m.rows[i]
	merged := make([]element[T], 0, existing.Len()+row.Len())
	ei, ri := 0, 0
	for ei < existing.Len() && ri < row.Len() {
		ecol, eval := existing.At(ei)
		rcol, rval := row.At(ri)
		switch {
		case ecol < rcol:
			merged = append(merged, element[T]{col: ecol, val: eval})
			ei++
		case ecol > rcol:
			merged = append(merged, element[T]{col: rcol, val: rval})
			ri++
		default:
			merged = append(merged, element[T]{col: ecol, val: accum(eval, rval)})
			ei++
			ri++
		}
	}
	for ; ei < existing.Len(); ei++ {
		col, val := existing.At(ei)
		merged = append(merged, element[T]{col: col, val: val})
	}
	for ; ri < row.Len(); ri++ {
		col, val := row.At(ri)
		merged = append(merged, element[T]{col: col, val: val})
	}
	m.nvals += len(merged) - existing.Len()
	existing.elems = merged
	return nil
}

// Build replaces the matrix's content with the given coordinate triples.
// Mismatched slice lengths yield a DimensionError and out-of-range indices
// an InvalidIndexError, both before any prior content is cleared. The
// caller guarantees the triples contain no duplicate (row, col) pairs
// (spec §3 — build assumes non-duplicated input); Build sorts each row's
// entries by column as it ingests them.
func (m *Matrix[T]) Build(rowIdx, colIdx []Index, vals []T) error {
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(vals) {
		return dimErrorf("Build", "rowIdx/colIdx/vals length mismatch: %d/%d/%d", len(rowIdx), len(colIdx), len(vals))
	}
	for i := 0; i < len(rowIdx); i++ {
		if rowIdx[i] < 0 || rowIdx[i] >= m.nrows {
			return &InvalidIndexError{Op: "Build", Index: rowIdx[i], Bound: m.nrows}
		}
		if colIdx[i] < 0 || colIdx[i] >= m.ncols {
			return &InvalidIndexError{Op: "Build", Index: colIdx[i], Bound: m.ncols}
		}
	}
	m.Clear()
	for i := 0; i < len(rowIdx); i++ {
		m.rows[rowIdx[i]].SortedInsert(colIdx[i], vals[i])
	}
	m.RecomputeNVals()
	return nil
}

// Clear drops all stored pairs and zeros nvals, preserving dimensions.
func (m *Matrix[T]) Clear() {
	for i := range m.rows {
		m.rows[i].Clear()
	}
	m.nvals = 0
}

// Swap exchanges the contents (dimensions included) of m and other. Used
// by mxm/kronecker to commit a result buffered in a temporary because of
// aliasing (spec §4.5.7).
func (m *Matrix[T]) Swap(other *Matrix[T]) {
	*m, *other = *other, *m
}

// RecomputeNVals recomputes nvals from scratch by summing row lengths.
// Exposed for callers that mutate rows directly via RowRef and need to
// resynchronize the cached count.
func (m *Matrix[T]) RecomputeNVals() {
	total := 0
	for i := range m.rows {
		total += m.rows[i].Len()
	}
	m.nvals = total
}

// Equal reports whether m and other have identical dimensions and store
// exactly the same (row, col, value) triples, using cmp to compare values.
// Stored-zero semantics apply: a pair stored with a value equal to a
// semiring's zero still counts toward equality (spec §9).
func (m *Matrix[T]) Equal(other *Matrix[T], cmp func(a, b T) bool) bool {
	if m.nrows != other.nrows || m.ncols != other.ncols {
		return false
	}
	if m.nvals != other.nvals {
		return false
	}
	for i := 0; i < m.nrows; i++ {
		a, b := &m.rows[i], &other.rows[i]
		if a.Len() != b.Len() {
			return false
		}
		for k := 0; k < a.Len(); k++ {
			acol, aval := a.At(k)
			bcol, bval := b.At(k)
			if acol != bcol || !cmp(aval, bval) {
				return false
			}
		}
	}
	return true
}

// Dup returns an independent deep copy of m.
func (m *Matrix[T]) Dup() *Matrix[T] {
	cp := NewMatrix[T](m.nrows, m.ncols)
	for i := range m.rows {
		cp.rows[i] = m.rows[i].Clone()
	}
	cp.nvals = m.nvals
	return cp
}

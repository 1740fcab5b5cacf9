// Package sparsekernel implements the masked, accumulated,
// semiring-parameterized sparse matrix-matrix product and its
// supporting algebra, storage, and view layers.
//
// The central operation is
//
//	C<M,z> = C ⊕ (A ⊗.⊕ B)
//
// where ⊗.⊕ is a user-supplied Semiring, M is an optional mask, ⊕ is an
// optional accumulator, and z selects whether unwritten positions of C
// are replaced or merged. MxM dispatches over the four combinations of
// transposed/non-transposed A and B. Transposed operands are passed as
// views; the A'B' kernel builds a column-wise copy of B for the duration
// of the call, while the other three kernels read the operands' rows
// directly.
package sparsekernel

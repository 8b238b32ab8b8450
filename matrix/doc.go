// Package matrix provides the dense complex matrices that carry the unitary
// transforms of linear-optical circuits.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-checked At/Set and an
//     unchecked Elem accessor for validated hot loops.
//   - Kernels: Mul, Dagger, Scale, Embed (place a k×k block into an n×n
//     identity), ApplyLeft / ApplyRight (the same products without
//     materialising the embedding), Submatrix (rows and columns may repeat).
//   - QR: complex Householder factorisation.
//   - Validators: ValidateSquare, IsUnitary / ValidateUnitary, AllClose.
//   - I/O: Parse reads a whitespace/comma separated text literal; String and
//     Pretty give printable forms.
//   - RandomUnitary: Haar random unitaries from a seeded source (QR with the
//     diagonal phases of R folded back).
//
// Numeric policy: DefaultEpsilon (1e-9) is the tolerance for unitarity and
// closeness checks unless a caller supplies its own.
package matrix

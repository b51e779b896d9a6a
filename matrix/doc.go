// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra kernel shared by the LP solvers.
//
// The package provides:
//
//   - Dense: a row-major float64 buffer with a logical-transpose flag.
//     T() returns an aliasing transposed view; Row and Col return aliasing
//     line views. A Set through any view writes the shared buffer.
//   - RowVector, ColumnVector and Slice: index-mapping Vector views, plus the
//     vector kernels Dot, Norm2, Sum, ScaleVector, ScaleInPlace, AddScaled,
//     Diff and Concat.
//   - Products and element-wise kernels: Mul, MatVec, Add, Sub, Scale,
//     Transpose, AllClose.
//   - Augmentation: CombineRight, CombineRightVector, CombineTop, Absorb,
//     SubMatrix.
//   - Gauss-Jordan elimination with partial pivoting behind SolveLinear,
//     Inverse, PseudoInverse (right inverse Aᵀ(AAᵀ)⁻¹) and NullSpaceProjector.
//   - Text ingestion (ScanMatrix, ScanVector, ParseRow) and conversion to and
//     from gonum.org/v1/gonum/mat.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrSingular,
// ErrNonSquare, ...) wrapped with an operation tag; match them with errors.Is.
//
// Zero tests inside elimination use a tolerance.Comparator passed by the
// caller; the package keeps no global epsilon.
//
// Concurrency: values are not safe for concurrent mutation. Views share
// storage with their base, so the single-writer rule covers the base and
// every view derived from it.
package matrix

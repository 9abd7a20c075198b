// Package matrix offers dense, in-memory Vector and Matrix containers with
// arithmetic, broadcasting, reductions and financial-series transforms.
//
// The matrix package provides:
//
//   - Vector: an exclusively owned float64 sequence with checked (At/Set) and
//     unchecked (AtUnchecked/SetUnchecked) element access and Append.
//   - Matrix: a rectangular sequence of independently owned row Vectors with
//     row and column Append, deep Clone and row-per-line String rendering.
//   - Algebra as named functions: VecAdd, VecSub, Dot, VecScale, Exp for
//     Vectors; Add, Sub, Mul, Scale for Matrices; MatAddVec, MatSubVec,
//     VecAddMat, VecSubMat for row-wise broadcasting; *InPlace methods for the
//     compound-assignment forms.
//   - Reductions: Sum, Mean, StdevP, StdevS on a Vector, and on a Matrix along
//     an axis selected with WithAxis (AxisCol by default).
//   - Series transforms: PctChange and CumReturn, with Matrix forms that treat
//     rows as time and transform every column independently.
//   - Interop with gonum.org/v1/gonum/mat (ToDense, FromMat, ToVecDense, VectorFromMat).
//
// Every size-incompatible operation fails with ErrDimensionMismatch before
// writing anything; match errors with errors.Is.
//
// Values are not safe for concurrent mutation; callers synchronize shared instances.
package matrix

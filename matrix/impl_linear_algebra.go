// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on Matrix values, including
// element-wise addition, subtraction, matrix multiplication, transpose and scalar
// scaling. All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Purpose:
//   - Canonical Matrix kernels, each decomposed per row into Vector kernels.
//   - Compound-assignment forms (AddInPlace/SubInPlace/ScaleInPlace) that validate
//     once and then mutate row by row.
//
// Notes:
//   - All kernels use the central validators and wrap via matrixErrorf.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}, row by row.
// Inputs must have identical shapes. A fresh Matrix is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: per row, delegate to addSubVec semantics via floats.AddTo/SubTo.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newMatrixShape(a.Rows(), a.Cols())
	for i := range out.rows {
		if sign > 0 {
			floats.AddTo(out.rows[i].data, a.rows[i].data, b.rows[i].data)
		} else {
			floats.SubTo(out.rows[i].data, a.rows[i].data, b.rows[i].data)
		}
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j order: row i of C accumulates A[i,k] * (row k of B),
//     which keeps every inner loop on a contiguous row (floats.AddScaled).
//
// Behavior highlights:
//   - Deterministic loop order; one allocation per result row.
//   - C[i,j] equals the dot product of row i of A and column j of B.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Matrix: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Zero A[i,k] entries are skipped.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	out := newMatrixShape(aRows, bCols)

	var i, k int
	var av float64
	for i = 0; i < aRows; i++ {
		dst := out.rows[i].data
		src := a.rows[i].data
		for k = 0; k < aCols; k++ {
			av = src[k]
			if av == 0 {
				continue // skip zero for performance
			}
			floats.AddScaled(dst, av, b.rows[k].data)
		}
	}

	return out, nil
}

// Scale returns a new Matrix with every element multiplied by k. Never fails;
// a nil m yields an empty Matrix. Complexity: O(r*c).
func Scale(m *Matrix, k float64) *Matrix {
	out := &Matrix{rows: make([]Vector, m.Rows())}
	for i := range out.rows {
		out.rows[i] = *VecScale(&m.rows[i], k)
	}

	return out
}

// Transpose returns mᵀ as a new Matrix (r×c → c×r). An empty m yields an empty Matrix.
// Complexity: O(r*c).
func Transpose(m *Matrix) *Matrix {
	r, c := m.Shape()
	out := newMatrixShape(c, r)
	var i, j int
	for i = 0; i < r; i++ {
		row := m.rows[i].data
		for j = 0; j < c; j++ {
			out.rows[j].data[i] = row[j]
		}
	}

	return out
}

// AddInPlace performs m += o row by row.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is unchanged on error.
// Complexity: O(r*c), no allocation.
func (m *Matrix) AddInPlace(o *Matrix) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	for i := range m.rows {
		floats.Add(m.rows[i].data, o.rows[i].data)
	}

	return nil
}

// SubInPlace performs m -= o row by row.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is unchanged on error.
func (m *Matrix) SubInPlace(o *Matrix) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	for i := range m.rows {
		floats.Sub(m.rows[i].data, o.rows[i].data)
	}

	return nil
}

// ScaleInPlace performs m *= k. Never fails.
func (m *Matrix) ScaleInPlace(k float64) {
	for i := range m.rows {
		m.rows[i].ScaleInPlace(k)
	}
}

// EqualApprox reports whether a and b have the same shape and all elements
// agree within tol (absolute or relative). Handy for invariance tests.
func EqualApprox(a, b *Matrix, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := range a.rows {
		if !floats.EqualApprox(a.rows[i].data, b.rows[i].data, tol) {
			return false
		}
	}

	return true
}

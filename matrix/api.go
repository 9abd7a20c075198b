// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks and for the scalar-first operand
//     orders (k·v, k·m) that Go cannot express with operators.
//   - Avoid logic duplication; each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// Zeros returns a rows×cols Matrix of zeros. Thin alias of NewMatrix(rows, cols, 0).
func Zeros(rows, cols int) (*Matrix, error) { return NewMatrix(rows, cols, 0) }

// ZerosLike returns a zero Matrix with the same shape as m.
// An empty m has no columns and yields ErrInvalidDimensions (same contract as NewMatrix).
func ZerosLike(m *Matrix) (*Matrix, error) {
	r, c := m.Shape()

	return NewMatrix(r, c, 0)
}

// ---------- Scalar-first operand orders ----------

// ScaleVec is k·v; identical to VecScale(v, k).
func ScaleVec(k float64, v *Vector) *Vector { return VecScale(v, k) }

// ScaleMat is k·m; identical to Scale(m, k).
func ScaleMat(k float64, m *Matrix) *Matrix { return Scale(m, k) }

// ---------- Convenience reductions ----------

// ColSums returns one total per column. Alias of m.Sum() (AxisCol).
func ColSums(m *Matrix) *Vector { return m.Sum() }

// RowSums returns one total per row. Alias of m.Sum(WithAxis(AxisRow)).
func RowSums(m *Matrix) *Vector { return m.Sum(WithAxis(AxisRow)) }

// CenterColumns returns Xc = X − mean(X, by columns) and the column means.
// Implementation: column Mean, then the MatSubVec broadcast. No custom loops.
// Complexity: O(r*c).
func CenterColumns(m *Matrix) (*Matrix, *Vector, error) {
	means := m.Mean()
	xc, err := MatSubVec(m, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterCols, err)
	}

	return xc, means, nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix×Vector broadcasting: the Vector is combined with every row (axis 0).
//   - Both operand orders are supported; VecSubMat computes v − row for every
//     row, so VecSubMat(v, m) == −MatSubVec(m, v).
//
// Design:
//   - One private kernel (ewBroadcast) owns the loop; public entry points only
//     pick the operand order and the error tag.
//   - The in-place forms validate once, then mutate row by row.
//
// Determinism & Performance:
//   - Fixed row order; one allocation per output row; O(r*c) time.

package matrix

import "gonum.org/v1/gonum/floats"

// broadcastKind selects how a row and the broadcast Vector combine.
type broadcastKind int

const (
	rowPlusVec  broadcastKind = iota // row + v
	rowMinusVec                      // row − v
	vecMinusRow                      // v − row
)

// ewBroadcast computes out[i,*] = combine(m[i,*], v) for every row i.
// Time: O(r*c). Space: O(r*c). Deterministic row order.
func ewBroadcast(m *Matrix, v *Vector, kind broadcastKind, opTag string) (*Matrix, error) {
	if err := ValidateBroadcast(m, v); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newMatrixShape(m.Rows(), m.Cols())
	for i := range out.rows {
		dst, row := out.rows[i].data, m.rows[i].data
		switch kind {
		case rowPlusVec:
			floats.AddTo(dst, row, v.data)
		case rowMinusVec:
			floats.SubTo(dst, row, v.data)
		case vecMinusRow:
			floats.SubTo(dst, v.data, row)
		}
	}

	return out, nil
}

// MatAddVec returns m + v: v is added to every row of m.
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch (v.Len() != m.Cols()).
func MatAddVec(m *Matrix, v *Vector) (*Matrix, error) {
	return ewBroadcast(m, v, rowPlusVec, opMatAddVec)
}

// MatSubVec returns m − v: v is subtracted from every row of m.
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch.
func MatSubVec(m *Matrix, v *Vector) (*Matrix, error) {
	return ewBroadcast(m, v, rowMinusVec, opMatSubVec)
}

// VecAddMat returns v + m (identical to m + v; provided for operand-order parity).
func VecAddMat(v *Vector, m *Matrix) (*Matrix, error) {
	return ewBroadcast(m, v, rowPlusVec, opVecAddMat)
}

// VecSubMat returns v − m: row i of the result is v − m[i,*].
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch.
func VecSubMat(v *Vector, m *Matrix) (*Matrix, error) {
	return ewBroadcast(m, v, vecMinusRow, opVecSubMat)
}

// AddVecInPlace performs m += v on every row.
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch; m unchanged on error.
func (m *Matrix) AddVecInPlace(v *Vector) error {
	if err := ValidateBroadcast(m, v); err != nil {
		return matrixErrorf(opAddVecPlace, err)
	}
	// v may alias one of m's rows; snapshot so every row sees the original values.
	vals := v.Values()
	for i := range m.rows {
		floats.Add(m.rows[i].data, vals)
	}

	return nil
}

// SubVecInPlace performs m -= v on every row.
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch; m unchanged on error.
func (m *Matrix) SubVecInPlace(v *Vector) error {
	if err := ValidateBroadcast(m, v); err != nil {
		return matrixErrorf(opSubVecPlace, err)
	}
	vals := v.Values()
	for i := range m.rows {
		floats.Sub(m.rows[i].data, vals)
	}

	return nil
}

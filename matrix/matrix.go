// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (sequence of row Vectors) & accessors.
//
// Purpose:
//   - Compose a rectangular container from independently owned Vector rows.
//   - Keep the rectangular invariant at every mutation point (SetRow, Append, FromRows).
//   - Mirror Vector's two access tiers: RowUnchecked (live row, no validation)
//     and Row/At/Set (checked, return ErrOutOfRange).
//
// Invariants:
//   - Every row has identical length; Cols() is derived from row 0 (0 when empty).
//   - No two rows share storage; Clone/Assign deep-copy every row.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c); Row/At/Set: O(1); Append(row): amortized O(c);
//     Append(column): O(r) amortized; Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxRow = "Row" // method tag used in error wrappers
)

// matErrorf wraps a sentinel with Matrix method context and coordinates.
func matErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an ordered sequence of equal-length row Vectors.
// The zero value is an empty 0×0 Matrix ready for Append.
type Matrix struct {
	rows []Vector // each row exclusively owned; len(rows[i].data) == Cols() for all i
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// NewMatrix creates a rows×cols Matrix with every element set to fill.
// MAIN DESCRIPTION:
//   - Public constructor; each row is an independent Vector.
//   - rows == 0 yields the empty 0×0 Matrix (a Matrix without rows has no
//     columns), ready for Append.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: build rows via NewVector (one allocation per row).
//
// Errors:
//   - ErrInvalidDimensions (negative rows, non-positive cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix(rows, cols int, fill float64) (*Matrix, error) {
	if rows < 0 || cols <= 0 {
		return nil, matrixErrorf(opNewMatrix, ErrInvalidDimensions)
	}
	m := &Matrix{rows: make([]Vector, rows)}
	for i := 0; i < rows; i++ {
		v, err := NewVector(cols, fill)
		if err != nil {
			return nil, matrixErrorf(opNewMatrix, err)
		}
		m.rows[i] = *v
	}

	return m, nil
}

// FromRows deep-copies a 2D literal into a new Matrix.
// Implementation:
//   - Stage 1: reject empty input or empty first row (ErrInvalidDimensions).
//   - Stage 2: reject ragged rows before allocating anything (ErrRaggedRows).
//   - Stage 3: copy row by row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(data [][]float64) (*Matrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	c := len(data[0])
	for i := 1; i < len(data); i++ {
		if len(data[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w",
				i, len(data[i]), c, ErrRaggedRows))
		}
	}
	m := &Matrix{rows: make([]Vector, len(data))}
	for i := range data {
		m.rows[i] = *VectorOf(data[i]...)
	}

	return m, nil
}

// newMatrixShape allocates a zero-filled r×c Matrix without validation.
// Internal: kernels call it after conformability checks.
func newMatrixShape(r, c int) *Matrix {
	m := &Matrix{rows: make([]Vector, r)}
	for i := 0; i < r; i++ {
		m.rows[i] = Vector{data: make([]float64, c)}
	}

	return m
}

// Rows returns the row count (0 for a nil or empty Matrix).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Cols returns the per-row length (0 when there are no rows).
func (m *Matrix) Cols() int {
	if m.Rows() == 0 {
		return 0
	}

	return len(m.rows[0].data)
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// RowUnchecked returns the live row r WITHOUT validation.
// Writes through the returned Vector mutate the Matrix. The caller guarantees
// 0 ≤ r < Rows() and must not change the row's length (use Append on the Matrix).
// The pointer is invalidated by a later row Append that grows the row slice.
func (m *Matrix) RowUnchecked(r int) *Vector { return &m.rows[r] }

// Row returns the live row r or ErrOutOfRange. Same aliasing rules as RowUnchecked.
func (m *Matrix) Row(r int) (*Vector, error) {
	if err := validateIndex(r, m.Rows()); err != nil {
		return nil, matErrorf(ctxRow, r, 0, err)
	}

	return &m.rows[r], nil
}

// SetRow replaces row r with a copy of v.
// Errors:
//   - ErrNilVector, ErrOutOfRange, ErrDimensionMismatch (v.Len() != Cols()).
//
// The Matrix is unchanged on error. Complexity: O(c).
func (m *Matrix) SetRow(r int, v *Vector) error {
	if err := ValidateVectorNotNil(v); err != nil {
		return matrixErrorf(opSetRow, err)
	}
	if err := validateIndex(r, m.Rows()); err != nil {
		return matErrorf(opSetRow, r, 0, err)
	}
	if v.Len() != m.Cols() {
		return matrixErrorf(opSetRow, ErrDimensionMismatch)
	}
	m.rows[r] = Vector{data: v.Values()}

	return nil
}

// At returns element (r, c) or ErrOutOfRange.
func (m *Matrix) At(r, c int) (float64, error) {
	if validateIndex(r, m.Rows()) != nil || validateIndex(c, m.Cols()) != nil {
		return 0, matErrorf(ctxAt, r, c, ErrOutOfRange)
	}

	return m.rows[r].data[c], nil
}

// Set stores x at (r, c) or returns ErrOutOfRange.
func (m *Matrix) Set(r, c int, x float64) error {
	if validateIndex(r, m.Rows()) != nil || validateIndex(c, m.Cols()) != nil {
		return matErrorf(ctxSet, r, c, ErrOutOfRange)
	}
	m.rows[r].data[c] = x

	return nil
}

// Append grows the Matrix by one row (default, AxisCol) or one column (WithAxis(AxisRow)).
// MAIN DESCRIPTION:
//   - Row append: v becomes the new last row; v.Len() must equal Cols(),
//     unless the Matrix is empty, in which case v establishes the column count.
//   - Column append: v[i] is appended to row i in lockstep; v.Len() must equal
//     Rows(), unless the Matrix is empty, in which case v becomes a single column.
//
// Implementation:
//   - Stage 1: validate v (non-nil, non-empty) and the axis-appropriate length.
//   - Stage 2: snapshot v (it may alias a row of m) and mutate.
//
// Errors:
//   - ErrNilVector, ErrInvalidDimensions (v.Len()==0), ErrDimensionMismatch.
//
// Behavior highlights:
//   - All validation precedes mutation; a failed Append leaves m unchanged.
//
// Complexity:
//   - Row: amortized O(c). Column: O(r) amortized.
func (m *Matrix) Append(v *Vector, opts ...Option) error {
	if err := ValidateVectorNotNil(v); err != nil {
		return matrixErrorf(opAppend, err)
	}
	if v.Len() == 0 {
		return matrixErrorf(opAppend, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	empty := m.Rows() == 0

	if o.axis == AxisCol {
		if !empty && v.Len() != m.Cols() {
			return matrixErrorf(opAppend, fmt.Errorf("row of len %d into %d cols: %w",
				v.Len(), m.Cols(), ErrDimensionMismatch))
		}
		m.rows = append(m.rows, Vector{data: v.Values()})

		return nil
	}

	// AxisRow: append a column.
	if !empty && v.Len() != m.Rows() {
		return matrixErrorf(opAppend, fmt.Errorf("column of len %d into %d rows: %w",
			v.Len(), m.Rows(), ErrDimensionMismatch))
	}
	vals := v.Values()
	if empty {
		m.rows = make([]Vector, len(vals))
		for i, x := range vals {
			m.rows[i] = Vector{data: []float64{x}}
		}

		return nil
	}
	for i := range m.rows {
		m.rows[i].Append(vals[i])
	}

	return nil
}

// AppendRow adds v as the new last row. Same as Append(v).
func (m *Matrix) AppendRow(v *Vector) error { return m.Append(v, WithAxis(AxisCol)) }

// AppendColumn adds v as the new last column, v[i] going to row i.
// Same as Append(v, WithAxis(AxisRow)).
func (m *Matrix) AppendColumn(v *Vector) error { return m.Append(v, WithAxis(AxisRow)) }

// Clone returns a deep copy: every row gets independent storage.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: make([]Vector, m.Rows())}
	for i := range out.rows {
		out.rows[i] = Vector{data: m.rows[i].Values()}
	}

	return out
}

// Assign replaces every row of m with a deep copy of src's rows.
// Self-assignment is a no-op; a nil src empties m.
func (m *Matrix) Assign(src *Matrix) {
	if m == src {
		return
	}
	m.rows = src.Clone().rows
}

// String renders one row per line using the Vector format: "[1, 2]\n[3, 4]\n".
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		m.rows[i].writeTo(&b)
		b.WriteString(_fmtRowBreak)
	}

	return b.String()
}

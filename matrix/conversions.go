// SPDX-License-Identifier: MIT
// Package matrix provides converters between Vector/Matrix and plain slices or
// gonum's mat types, so results can feed linear-algebra routines that live
// outside this package (solvers and decompositions are out of scope here).
//
// All converters copy: the returned value never aliases the source.
package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// ToRows returns a deep copy of m as a [][]float64 (one slice per row).
// Time Complexity: O(r*c)
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = m.rows[i].Values()
	}

	return out
}

// Column returns a copy of column j or ErrOutOfRange.
// Time Complexity: O(r)
func (m *Matrix) Column(j int) (*Vector, error) {
	if err := validateIndex(j, m.Cols()); err != nil {
		return nil, matErrorf(opColumn, 0, j, err)
	}
	out := newVectorLen(m.Rows())
	for i := range m.rows {
		out.data[i] = m.rows[i].data[j]
	}

	return out, nil
}

// ToDense copies m into a new *mat.Dense.
// gonum forbids zero-sized dense matrices, so an empty m fails with ErrInvalidDimensions.
// Time Complexity: O(r*c)
func (m *Matrix) ToDense() (*mat.Dense, error) {
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opToDense, ErrInvalidDimensions)
	}
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		d.SetRow(i, m.rows[i].data)
	}

	return d, nil
}

// isNilOperand reports whether x is nil or an interface wrapping a nil pointer,
// such as a (*mat.Dense)(nil) passed as mat.Matrix.
func isNilOperand(x any) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// FromMat copies any gonum mat.Matrix into a new Matrix.
// Errors: ErrNilMatrix for a nil source (typed nil pointers included);
// ErrInvalidDimensions for a zero-sized one.
// Time Complexity: O(r*c)
func FromMat(src mat.Matrix) (*Matrix, error) {
	if isNilOperand(src) {
		return nil, matrixErrorf(opFromMat, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opFromMat, fmt.Errorf("%d×%d: %w", r, c, ErrInvalidDimensions))
	}
	out := newMatrixShape(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		row := out.rows[i].data
		for j = 0; j < c; j++ {
			row[j] = src.At(i, j)
		}
	}

	return out, nil
}

// ToVecDense copies v into a new *mat.VecDense.
// An empty v fails with ErrInvalidDimensions (gonum forbids zero length).
func (v *Vector) ToVecDense() (*mat.VecDense, error) {
	if v.Len() == 0 {
		return nil, matrixErrorf(opToVecDense, ErrInvalidDimensions)
	}

	return mat.NewVecDense(v.Len(), v.Values()), nil
}

// VectorFromMat copies any gonum mat.Vector into a new Vector.
// Errors: ErrNilVector for a nil source (typed nil pointers included);
// ErrInvalidDimensions for zero length.
func VectorFromMat(src mat.Vector) (*Vector, error) {
	if isNilOperand(src) {
		return nil, matrixErrorf(opVecFromMat, ErrNilVector)
	}
	n := src.Len()
	if n == 0 {
		return nil, matrixErrorf(opVecFromMat, ErrInvalidDimensions)
	}
	out := newVectorLen(n)
	for i := 0; i < n; i++ {
		out.data[i] = src.AtVec(i)
	}

	return out, nil
}

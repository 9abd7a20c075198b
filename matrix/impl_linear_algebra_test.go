// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Matrix algebra (Add/Sub/Mul/Scale/Transpose).

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vecmat/matrix"
)

// TestMul2x2 pins the canonical 2×2 product.
func TestMul2x2(t *testing.T) {
	a := MustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	b := MustMatrix(t, [][]float64{{5, 6}, {7, 8}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, got.ToRows())
}

// TestMulShapes checks (r×n)·(n×c) = r×c and rejects non-conformable operands.
func TestMulShapes(t *testing.T) {
	a := RandomMatrix(t, 3, 4, 1)
	b := RandomMatrix(t, 4, 2, 2)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	r, c := got.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	_, err = matrix.Mul(b, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulAgainstGonum compares the row-major kernel with gonum's Dense product.
func TestMulAgainstGonum(t *testing.T) {
	a := RandomMatrix(t, 5, 7, 11)
	b := RandomMatrix(t, 7, 3, 12)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	da, err := a.ToDense()
	require.NoError(t, err)
	db, err := b.ToDense()
	require.NoError(t, err)
	var prod mat.Dense // zero receiver: gonum sizes it to 5×3
	prod.Mul(da, db)
	want, err := matrix.FromMat(&prod)
	require.NoError(t, err)

	require.True(t, matrix.EqualApprox(want, got, 1e-12))
}

// TestMulIdentity checks A·I = A.
func TestMulIdentity(t *testing.T) {
	a := RandomMatrix(t, 4, 4, 3)
	id, err := matrix.Zeros(4, 4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, id.Set(i, i, 1))
	}
	got, err := matrix.Mul(a, id)
	require.NoError(t, err)
	requireMatClose(t, a.ToRows(), got, epsTight)
}

func TestAddSubMatrix(t *testing.T) {
	a := MustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	b := MustMatrix(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, sum.ToRows())

	back, err := matrix.Sub(sum, b)
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), back.ToRows())
}

func TestAddSubShapeMismatch(t *testing.T) {
	a := MustFilled(t, 2, 3, 1)
	b := MustFilled(t, 3, 2, 1)
	c := MustFilled(t, 2, 2, 1)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScaleRoundTrip checks (m*k)*(1/k) ≈ m and that the operand is untouched.
func TestScaleRoundTrip(t *testing.T) {
	m := RandomMatrix(t, 4, 5, 9)
	before := m.ToRows()
	scaled := matrix.Scale(m, 4)
	require.Equal(t, before, m.ToRows())

	back := matrix.ScaleMat(0.25, scaled)
	require.True(t, matrix.EqualApprox(m, back, 1e-12))
}

func TestTranspose(t *testing.T) {
	m := MustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := matrix.Transpose(m)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())
	require.Equal(t, m.ToRows(), matrix.Transpose(tr).ToRows())
}

func TestMatrixInPlace(t *testing.T) {
	m := MustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	o := MustMatrix(t, [][]float64{{1, 1}, {1, 1}})

	require.NoError(t, m.AddInPlace(o))
	require.Equal(t, [][]float64{{2, 3}, {4, 5}}, m.ToRows())

	require.NoError(t, m.SubInPlace(o))
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	m.ScaleInPlace(3)
	require.Equal(t, [][]float64{{3, 6}, {9, 12}}, m.ToRows())
}

// TestMatrixInPlaceFailureLeavesTarget ensures no partial update on mismatch.
func TestMatrixInPlaceFailureLeavesTarget(t *testing.T) {
	m := MustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	require.ErrorIs(t, m.AddInPlace(MustFilled(t, 2, 3, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SubInPlace(nil), matrix.ErrNilMatrix)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())
}

func TestEqualApprox(t *testing.T) {
	a := MustMatrix(t, [][]float64{{1, 2}})
	require.True(t, matrix.EqualApprox(a, a.Clone(), 0))
	require.False(t, matrix.EqualApprox(a, MustMatrix(t, [][]float64{{1}, {2}}), 1))
	require.False(t, matrix.EqualApprox(a, nil, 1))
}

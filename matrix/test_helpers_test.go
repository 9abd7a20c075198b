// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and tolerance assertions shared by
//     every *_test.go file of the package.
//   • Keep all data finite and well-formed unless a test targets numeric edge cases.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/matrix"
)

// epsTight is the default absolute tolerance for float comparisons.
const epsTight = 1e-12

// MustVector ALLOCATES an n-length Vector filled with fill or fails the test.
func MustVector(t testing.TB, n int, fill float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVector(n, fill)
	require.NoError(t, err)

	return v
}

// MustMatrix BUILDS a Matrix from a 2D literal or fails the test.
func MustMatrix(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustFilled ALLOCATES an r×c Matrix filled with fill or fails the test.
func MustFilled(t testing.TB, r, c int, fill float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewMatrix(r, c, fill)
	require.NoError(t, err)

	return m
}

// RandomMatrix FILLS an r×c Matrix with deterministic U(-1,1) values by seed.
func RandomMatrix(t testing.TB, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustFilled(t, r, c, 0)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// RandomVector FILLS an n-length Vector with deterministic U(-1,1) values by seed.
func RandomVector(t testing.TB, n int, seed int64) *matrix.Vector {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	v := MustVector(t, n, 0)
	for i := 0; i < n; i++ {
		v.SetUnchecked(i, rng.Float64()*2-1)
	}

	return v
}

// requireVecClose ASSERTS len(got)==len(want) and |got[i]-want[i]| ≤ tol.
// NaN in want matches only NaN in got.
func requireVecClose(t *testing.T, want []float64, got *matrix.Vector, tol float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Len(), "length")
	for i, w := range want {
		g := got.AtUnchecked(i)
		if math.IsNaN(w) {
			require.Truef(t, math.IsNaN(g), "idx=%d: want NaN, got %g", i, g)
			continue
		}
		require.InDeltaf(t, w, g, tol, "idx=%d", i)
	}
}

// requireMatClose ASSERTS shape equality and element-wise |got-want| ≤ tol.
func requireMatClose(t *testing.T, want [][]float64, got *matrix.Matrix, tol float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "rows")
	for i := range want {
		requireVecClose(t, want[i], got.RowUnchecked(i), tol)
	}
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Vector-level algebra: elementwise add/sub, dot product, scalar scaling,
//     elementwise exponential and the compound-assignment forms.
//   - Every Matrix kernel decomposes into these per-row operations.
//
// Determinism & Performance:
//   - Tight loops are delegated to gonum/floats (no allocations beyond the result).
//   - Conformability is validated first; a failing call never writes to any operand.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// addSubVec computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for VecAdd/VecSub to share validation and allocation.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(n), Space O(n) for the new result.
func addSubVec(a, b *Vector, sign float64, opTag string) (*Vector, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newVectorLen(a.Len())
	if sign > 0 {
		floats.AddTo(out.data, a.data, b.data)
	} else {
		floats.SubTo(out.data, a.data, b.data)
	}

	return out, nil
}

// VecAdd returns a new Vector with out[i] = a[i] + b[i].
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func VecAdd(a, b *Vector) (*Vector, error) { return addSubVec(a, b, +1, opVecAdd) }

// VecSub returns a new Vector with out[i] = a[i] - b[i].
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func VecSub(a, b *Vector) (*Vector, error) { return addSubVec(a, b, -1, opVecSub) }

// Dot returns Σ a[i]*b[i].
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func Dot(a, b *Vector) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return floats.Dot(a.data, b.data), nil
}

// VecScale returns a new Vector with out[i] = v[i]*k. Never fails;
// a nil v yields an empty Vector. Complexity: O(n).
func VecScale(v *Vector, k float64) *Vector {
	out := newVectorLen(v.Len())
	if v != nil {
		floats.ScaleTo(out.data, k, v.data)
	}

	return out
}

// Exp returns a new Vector with out[i] = e^v[i].
// Complexity: O(n).
func Exp(v *Vector) *Vector {
	out := newVectorLen(v.Len())
	for i := range out.data {
		out.data[i] = math.Exp(v.data[i])
	}

	return out
}

// AddInPlace performs v += o elementwise.
// Errors: ErrNilVector, ErrDimensionMismatch; v is unchanged on error.
// Complexity: O(n), no allocation.
func (v *Vector) AddInPlace(o *Vector) error {
	if err := ValidateSameLen(v, o); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	floats.Add(v.data, o.data)

	return nil
}

// SubInPlace performs v -= o elementwise.
// Errors: ErrNilVector, ErrDimensionMismatch; v is unchanged on error.
func (v *Vector) SubInPlace(o *Vector) error {
	if err := ValidateSameLen(v, o); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	floats.Sub(v.data, o.data)

	return nil
}

// ScaleInPlace performs v *= k. Never fails.
func (v *Vector) ScaleInPlace(k float64) {
	floats.Scale(k, v.data)
}

// VecEqualApprox reports whether a and b have equal length and every pair of
// elements is within tol (absolute or relative, see floats.EqualApprox).
func VecEqualApprox(a, b *Vector, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return floats.EqualApprox(a.data, b.data, tol)
}

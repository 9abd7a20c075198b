// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Financial-series transforms over a time axis:
//     PctChange (relative change between successive observations) and
//     CumReturn (running total return from the first observation).
//   - Matrix forms treat rows as time and transform every column independently.
//
// Conventions (pinned by tests):
//   - PctChange: out[0] = 0 (WithLeadingNaN() → NaN); out[i] = (v[i] − v[i−1]) / v[i−1].
//     PctChange([100, 110, 99]) = [0, 0.1, −0.1].
//   - CumReturn (geometric, default): out[i] = Π_{k≤i}(1 + r[k]) − 1.
//     CumReturn([0, 0.1, −0.1]) = [0, 0.1, −0.01].
//   - CumReturn (WithCompounding(CompoundSimple)): out[i] = Σ_{k≤i} r[k].
//
// Numeric policy:
//   - A zero prior observation yields ±Inf or NaN; this is propagated, never an error.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// leading returns the value used at index 0 of PctChange.
func (o Options) leading() float64 {
	if o.leadingNaN {
		return math.NaN()
	}

	return 0
}

// PctChange returns the relative change between successive elements of v.
// Implementation:
//   - Stage 1: resolve options (leading value).
//   - Stage 2: out[i] = (v[i] − v[i−1]) / v[i−1] for i ≥ 1.
//
// Behavior highlights:
//   - Output length equals input length; an empty v yields an empty Vector.
//
// Complexity:
//   - Time O(n), Space O(n).
func PctChange(v *Vector, opts ...Option) *Vector {
	o := gatherOptions(opts...)
	src := v.raw()
	out := newVectorLen(len(src))
	if len(src) == 0 {
		return out
	}
	out.data[0] = o.leading()
	for i := 1; i < len(src); i++ {
		out.data[i] = (src[i] - src[i-1]) / src[i-1]
	}

	return out
}

// CumReturn accumulates a return series r into the running total return.
// Geometric by default; WithCompounding(CompoundSimple) switches to a running sum.
// An empty r yields an empty Vector.
// Complexity: O(n).
func CumReturn(r *Vector, opts ...Option) *Vector {
	o := gatherOptions(opts...)
	src := r.raw()
	out := newVectorLen(len(src))

	if o.compounding == CompoundSimple {
		var acc float64
		for i, x := range src {
			acc += x
			out.data[i] = acc
		}

		return out
	}

	growth := 1.0
	for i, x := range src {
		growth *= 1 + x
		out.data[i] = growth - 1
	}

	return out
}

// MatPctChange applies PctChange independently down each column (rows are time).
// Implementation:
//   - Row 0 is filled with the leading value.
//   - Row i = (m[i] − m[i−1]) / m[i−1], computed as whole-row Vector operations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MatPctChange(m *Matrix, opts ...Option) *Matrix {
	o := gatherOptions(opts...)
	r, c := m.Shape()
	out := newMatrixShape(r, c)
	if r == 0 {
		return out
	}
	lead := o.leading()
	for j := 0; j < c; j++ {
		out.rows[0].data[j] = lead
	}
	for i := 1; i < r; i++ {
		dst := out.rows[i].data
		floats.SubTo(dst, m.rows[i].data, m.rows[i-1].data)
		floats.Div(dst, m.rows[i-1].data)
	}

	return out
}

// MatCumReturn applies CumReturn independently down each column (rows are time).
// Complexity: O(r*c).
func MatCumReturn(m *Matrix, opts ...Option) *Matrix {
	o := gatherOptions(opts...)
	r, c := m.Shape()
	out := newMatrixShape(r, c)
	if r == 0 {
		return out
	}

	if o.compounding == CompoundSimple {
		copy(out.rows[0].data, m.rows[0].data)
		for i := 1; i < r; i++ {
			floats.AddTo(out.rows[i].data, out.rows[i-1].data, m.rows[i].data)
		}

		return out
	}

	growth := make([]float64, c)
	for j := range growth {
		growth[j] = 1
	}
	for i := 0; i < r; i++ {
		dst, row := out.rows[i].data, m.rows[i].data
		for j := 0; j < c; j++ {
			growth[j] *= 1 + row[j]
			dst[j] = growth[j] - 1
		}
	}

	return out
}

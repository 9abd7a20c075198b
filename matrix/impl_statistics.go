// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single-pass reductions over a Vector (Sum, Mean, StdevP, StdevS).
//   - Axis-wise reductions over a Matrix: the same formulas applied down each
//     column (AxisCol, default) or across each row (AxisRow).
//
// Numeric policy:
//   - Degenerate inputs are numeric edge cases, not structural failures:
//     Mean/StdevP of an empty Vector and StdevS of fewer than two elements are NaN.
//
// Exposed API:
//   - (*Vector).Sum/Mean/StdevP/StdevS          -> float64
//   - (*Matrix).Sum/Mean/StdevP/StdevS(opts...) -> *Vector

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// reducer maps a contiguous slice to one aggregate.
type reducer func(x []float64) float64

func sumOf(x []float64) float64 { return floats.Sum(x) }

func meanOf(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	return stat.Mean(x, nil)
}

// stdevPOf is the population standard deviation (divisor n).
func stdevPOf(x []float64) float64 {
	switch len(x) {
	case 0:
		return math.NaN()
	case 1:
		return 0 // a single observation has no spread
	}

	return math.Sqrt(stat.PopVariance(x, nil))
}

// stdevSOf is the sample standard deviation (divisor n−1).
func stdevSOf(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}

	return stat.StdDev(x, nil)
}

// Sum returns the total of all elements (0 for an empty Vector).
func (v *Vector) Sum() float64 { return sumOf(v.raw()) }

// Mean returns Sum()/Len(); NaN when Len()==0.
func (v *Vector) Mean() float64 { return meanOf(v.raw()) }

// StdevP returns the population standard deviation √(Σ(x−μ)²/n); NaN when Len()==0.
func (v *Vector) StdevP() float64 { return stdevPOf(v.raw()) }

// StdevS returns the sample standard deviation √(Σ(x−μ)²/(n−1)); NaN when Len()<2.
func (v *Vector) StdevS() float64 { return stdevSOf(v.raw()) }

// reduceAxis applies f along the axis chosen by opts.
// Implementation:
//   - AxisCol: gather column j into a reusable buffer (len r), reduce it → out[j].
//   - AxisRow: reduce row i in place (contiguous) → out[i].
//
// Behavior highlights:
//   - An empty Matrix yields an empty Vector on either axis.
//
// Complexity:
//   - Time O(r*c), Space O(r) scratch + O(len(out)).
func (m *Matrix) reduceAxis(f reducer, opts ...Option) *Vector {
	o := gatherOptions(opts...)
	r, c := m.Shape()

	if o.axis == AxisRow {
		out := newVectorLen(r)
		for i := 0; i < r; i++ {
			out.data[i] = f(m.rows[i].data)
		}

		return out
	}

	out := newVectorLen(c)
	col := make([]float64, r)
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			col[i] = m.rows[i].data[j]
		}
		out.data[j] = f(col)
	}

	return out
}

// Sum reduces with Σ along the axis (default AxisCol: one total per column).
func (m *Matrix) Sum(opts ...Option) *Vector { return m.reduceAxis(sumOf, opts...) }

// Mean reduces with the arithmetic mean along the axis.
func (m *Matrix) Mean(opts ...Option) *Vector { return m.reduceAxis(meanOf, opts...) }

// StdevP reduces with the population standard deviation along the axis.
func (m *Matrix) StdevP(opts ...Option) *Vector { return m.reduceAxis(stdevPOf, opts...) }

// StdevS reduces with the sample standard deviation along the axis.
// Entries are NaN when the reduced dimension has fewer than two elements.
func (m *Matrix) StdevS(opts ...Option) *Vector { return m.reduceAxis(stdevSOf, opts...) }

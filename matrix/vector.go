// SPDX-License-Identifier: MIT

// Package matrix - Vector storage & accessors.
//
// Purpose:
//   - Provide an exclusively owned, growable float64 sequence (the atomic container).
//   - Offer two access tiers: unchecked (AtUnchecked/SetUnchecked, zero validation)
//     and checked (At/Set, return ErrOutOfRange instead of panicking).
//   - Keep value semantics explicit: Clone/Assign deep-copy, VectorFrom adopts.
//
// Complexity quicksheet:
//   - NewVector: O(n) fill; At/Set: O(1); Append: amortized O(1); Clone: O(n).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtSep      = ", "
	_fmtRowBreak = "\n"
)

// vectorErrorf wraps a sentinel with Vector method context and the offending index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a dense, exclusively owned sequence of float64 values.
//   - The zero value has length 0 and is not usable for arithmetic until assigned.
//   - data is unexported; Matrix (same package) reads it directly as its internal
//     accessor, everything else goes through the methods below.
type Vector struct {
	data []float64 // owned storage; never shared with another Vector
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// NewVector creates a Vector of length n with every element set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict length validation.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate and fill.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVector(n int, fill float64) (*Vector, error) {
	if n <= 0 {
		return nil, matrixErrorf(opNewVector, ErrInvalidDimensions)
	}
	buf := make([]float64, n)
	if fill != 0 {
		for i := range buf {
			buf[i] = fill
		}
	}

	return &Vector{data: buf}, nil
}

// VectorFrom adopts data as the backing storage of a new Vector.
// Ownership moves to the Vector: the caller must not read or write data afterwards.
// A nil or empty slice yields a zero-length Vector.
// Complexity: O(1).
func VectorFrom(data []float64) *Vector {
	return &Vector{data: data}
}

// VectorOf copies vals into a new Vector (convenience for literals).
// Complexity: O(n).
func VectorOf(vals ...float64) *Vector {
	buf := make([]float64, len(vals))
	copy(buf, vals)

	return &Vector{data: buf}
}

// newVectorLen allocates a zero-filled Vector of length n without validation.
// Internal: used by kernels whose output length is already validated.
func newVectorLen(n int) *Vector {
	return &Vector{data: make([]float64, n)}
}

// Len returns the current element count. A nil receiver reports 0.
// Complexity: O(1).
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// AtUnchecked returns element i WITHOUT validation.
// The caller guarantees 0 ≤ i < Len(); violating it is undefined at this layer
// (the Go runtime panics on out-of-range slice access).
func (v *Vector) AtUnchecked(i int) float64 { return v.data[i] }

// SetUnchecked stores x at position i WITHOUT validation (see AtUnchecked).
func (v *Vector) SetUnchecked(i int, x float64) { v.data[i] = x }

// At returns element i or ErrOutOfRange.
// Never panics on user input; prefer it at API boundaries.
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if err := validateIndex(i, v.Len()); err != nil {
		return 0, vectorErrorf(ctxAt, i, err)
	}

	return v.data[i], nil
}

// Set stores x at position i or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if err := validateIndex(i, v.Len()); err != nil {
		return vectorErrorf(ctxSet, i, err)
	}
	v.data[i] = x

	return nil
}

// Append grows the Vector by exactly one element holding x.
// Existing elements keep their positions. Amortized O(1).
func (v *Vector) Append(x float64) {
	v.data = append(v.data, x)
}

// raw is the internal accessor kernels use to read storage without copying.
// A nil receiver yields nil. Callers must not retain or grow the slice.
func (v *Vector) raw() []float64 {
	if v == nil {
		return nil
	}

	return v.data
}

// Values returns a copy of the elements (independent of the Vector).
// Complexity: O(n).
func (v *Vector) Values() []float64 {
	out := make([]float64, v.Len())
	copy(out, v.raw())

	return out
}

// Clone returns a deep copy with independent storage.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	return &Vector{data: v.Values()}
}

// Assign replaces the owned storage wholesale with a copy of src.
// Self-assignment is a no-op. A nil src resets v to the zero value.
// Complexity: O(n).
func (v *Vector) Assign(src *Vector) {
	if v == src {
		return
	}
	v.data = src.Values()
}

// String renders the elements on a single line: "[1, 2, 3]".
// Values use the %g form; the format is stable and matches Matrix row rendering.
// Complexity: O(n).
func (v *Vector) String() string {
	var b strings.Builder
	v.writeTo(&b)

	return b.String()
}

// writeTo appends the single-line rendering of v to b.
// Shared with Matrix.String so both containers render rows identically.
func (v *Vector) writeTo(b *strings.Builder) {
	b.WriteString(_fmtOpen)
	var scratch [32]byte // fits any shortest-form float64
	n := v.Len()
	for i := 0; i < n; i++ {
		b.Write(strconv.AppendFloat(scratch[:0], v.data[i], 'g', -1, 64)) // same text as %g
		if i+1 < n {
			b.WriteString(_fmtSep)
		}
	}
	b.WriteString(_fmtClose)
}

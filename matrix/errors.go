// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and tests
// MUST check them via errors.Is. No kernel panics on user-triggered conditions;
// panics are reserved for programmer errors (unchecked accessors, option ctors).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf("Op", ErrX); callers
// still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> construction shape -> dimension mismatch -> index range.

var (
	// ErrInvalidDimensions indicates that a requested length or shape is non-positive
	// (NewVector(0, x), NewMatrix(r, 0, x), NewMatrix(-1, c, x), appending an empty Vector, ...).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. VecAdd on
	// different lengths, Mul where a.Cols != b.Rows, or a broadcast Vector whose
	// length differs from the column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows indicates that row slices of unequal length were supplied
	// where a rectangular Matrix is required.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Only the checked accessors (At/Set/Row/SetRow) return it.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilVector indicates that a nil *Vector operand was used.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrNilMatrix indicates that a nil *Matrix operand was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

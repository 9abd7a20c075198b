// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for conformability checks.
//  - Keep kernels minimal by delegating nil/length/shape checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → NotNil → Shape),
//    which fixes the error priority: a nil operand is reported before a mismatch.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateVectorNotNil ensures v is non-nil.
// Returns ErrNilVector if v == nil. Complexity: O(1).
func ValidateVectorNotNil(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVectorNotNil", ErrNilVector)
	}

	return nil
}

// ValidateMatrixNotNil ensures m is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateMatrixNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateMatrixNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameLen – Composite: NotNil(a) → NotNil(b) → a.Len() == b.Len().
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(1).
// Use for VecAdd/VecSub/Dot and their in-place variants.
func ValidateSameLen(a, b *Vector) error {
	if err := ValidateVectorNotNil(a); err != nil {
		return validatorErrorf("ValidateSameLen", err)
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return validatorErrorf("ValidateSameLen", err)
	}
	if a.Len() != b.Len() {
		return fmt.Errorf("ValidateSameLen: %d vs %d: %w", a.Len(), b.Len(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → equal Rows and Cols.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateMatrixNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateMatrixNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks a and b are non-nil and a.Cols() == b.Rows().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateMatrixNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateMatrixNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("ValidateMulCompatible: (%d×%d)·(%d×%d): %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBroadcast checks that v can be combined with every row of m,
// i.e. both are non-nil and v.Len() == m.Cols().
//
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBroadcast(m *Matrix, v *Vector) error {
	if err := ValidateMatrixNotNil(m); err != nil {
		return validatorErrorf("ValidateBroadcast", err)
	}
	if err := ValidateVectorNotNil(v); err != nil {
		return validatorErrorf("ValidateBroadcast", err)
	}
	if v.Len() != m.Cols() {
		return fmt.Errorf("ValidateBroadcast: len %d vs cols %d: %w", v.Len(), m.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// validateIndex checks 0 ≤ i < n; returns plain ErrOutOfRange for the caller to wrap.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

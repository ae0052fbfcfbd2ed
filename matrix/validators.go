// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap once more with their operation tag.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - All checks are O(1) and allocate nothing on success.

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including a typed nil pointer stored in
// the interface (e.g. (*Dense[int])(nil)).
func isNil[T Element](m Matrix[T]) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m is nil or a typed nil pointer.
func ValidateNotNil[T Element](m Matrix[T]) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape[T Element](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare[T Element](m Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil[T Element](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(each) → SameShape(pairwise)
// applied to every operand. Used by Add/Sub with the destination included.
func ValidateBinarySameShape[T Element](ms ...Matrix[T]) error {
	for _, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateBinarySameShape", err)
		}
	}
	for k := 1; k < len(ms); k++ {
		if err := ValidateSameShape(ms[0], ms[k]); err != nil {
			return validatorErrorf("ValidateBinarySameShape", err)
		}
	}

	return nil
}

// ValidateMulCompatible checks left (m×n), right (n×o) and dest (m×o).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[T Element](left, right, dest Matrix[T]) error {
	for _, m := range []Matrix[T]{left, right, dest} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateMulCompatible", err)
		}
	}
	if left.Cols() != right.Rows() {
		return validatorErrorf("ValidateMulCompatible: inner", ErrDimensionMismatch)
	}
	if dest.Rows() != left.Rows() || dest.Cols() != right.Cols() {
		return validatorErrorf("ValidateMulCompatible: dest", ErrDimensionMismatch)
	}

	return nil
}

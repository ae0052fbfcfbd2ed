// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (wrapped with an operation tag)
// and tests MUST check them via errors.Is.
//
// Index violations are the one exception: At/Set panic with an error wrapping
// ErrOutOfRange, because an out-of-range index is a caller bug, not a runtime
// condition.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is added once, at the operation
// boundary, via matrixErrorf ("Mul: matrix: dimension mismatch").

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDataLength indicates that a raw buffer does not hold exactly rows*cols elements.
	ErrDataLength = errors.New("matrix: data length does not match dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// It is only ever carried by a panic from At/Set.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Mul where left.Cols != right.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular names the failure reported by Inverse. Inverse itself returns
	// a bool; callers that need an error value (the CLI) use this sentinel.
	ErrSingular = errors.New("matrix: singular matrix")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexPanic aborts an out-of-range access with a descriptive error value.
// The panic value wraps ErrOutOfRange so recover() sites can use errors.Is.
func indexPanic(typ, method string, i, j int) {
	panic(fmt.Errorf("%s.%s(%d,%d): %w", typ, method, i, j, ErrOutOfRange))
}

// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical
//     constructors and kernels.
//   - Avoid logic duplication: each facade delegates.

package matrix

// NewZeros returns a new zero-valued r×c Dense. Alias of NewDense.
func NewZeros[T Element](rows, cols int) (*Dense[T], error) { return NewDense[T](rows, cols) }

// ZerosLike returns a new zero matrix with the same extents as m.
// Handy to preallocate the destination of Mul/Add.
func ZerosLike[T Element](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike[T Element](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity[T](m.Rows())
}

// CloneMatrix returns an independent Dense copy of any Matrix.
// Alias of Materialize.
func CloneMatrix[T Element](m Matrix[T]) (*Dense[T], error) { return Materialize(m) }

// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra substrate for Gaussian Belief
// Propagation.
//
// The package provides:
//
//   - Matrix[T], the minimal capability (Rows, Cols, At, Set) every
//     representation implements.
//   - Dense[T], an owning row-major buffer.
//   - View[T], a non-owning window over another Matrix with wraparound
//     (modular) indexing and a fixed offset. Views alias their parent and may
//     be stacked on other views.
//   - Generic algorithms written against Matrix[T] only: Mul, Add, Sub,
//     Equal, EqualFunc, Det (cofactor expansion over wraparound minors),
//     DetGauss, Transpose, Scale, Format and the Inverse slot.
//
// Shapes are checked at call time and reported as ErrDimensionMismatch or
// ErrNonSquare. Out-of-range indices are caller bugs and panic with an error
// wrapping ErrOutOfRange.
//
// Nothing in the package is safe for concurrent mutation.
package matrix

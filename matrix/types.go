// SPDX-License-Identifier: MIT

// Package matrix: the capability every matrix representation implements.
// This file contains ONLY the element constraint and the Matrix interface.
// Errors live in errors.go, concrete types in impl_dense.go / impl_view.go,
// and the algorithm library in impl_linear_algebra.go.
package matrix

import "golang.org/x/exp/constraints"

// Element is the set of scalar types a matrix may hold.
// Every member supports +, -, * and == which is all the algorithms need.
type Element interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Matrix is the minimal get/set capability over a rows×cols grid of T.
// Any type implementing it gains Mul, Add, Equal, Det and Format for free.
//
// Contract:
//   - Rows() and Cols() are fixed for the lifetime of the value.
//   - At/Set require 0 ≤ i < Rows() and 0 ≤ j < Cols(). Violations are caller
//     errors and panic with an error wrapping ErrOutOfRange; they are never
//     reported through a return value.
//   - Set returns the value that was stored.
//
// Complexity notes: all methods are expected O(1) for Dense; a View adds one
// modular remap per level of nesting.
type Matrix[T Element] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j).
	At(i, j int) T

	// Set stores v at (i, j) and returns the stored value.
	Set(i, j int, v T) T
}

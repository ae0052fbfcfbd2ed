// SPDX-License-Identifier: MIT
// Package matrix provides generic operations on any Matrix implementation:
// multiplication, element-wise addition and subtraction, comparison,
// determinant by cofactor expansion and the inverse slot. Every function is
// written against Matrix[T] only, so Dense and View operands mix freely.
//
// Purpose:
//   - Keep one canonical kernel per operation with fail-fast shape validation.
//   - Write results only into the caller's destination; operands are read-only.
//
// Notes:
//   - Shapes are checked once per call, never per element.
//   - *Dense operands take a flat-slice fast path with the same summation order
//     as the generic path, so results are bit-identical.

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDet      = "Det"
	opDetGauss = "DetGauss"
	opProduct  = "Product"
	opSum      = "Sum"
)

// Mul computes dest = left × right for left (m×n), right (n×o), dest (m×o).
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil, inner and destination extents).
//   - Stage 2: accumulate every cell from a zero value, k = 0..n-1, into a
//     scratch buffer.
//   - Stage 3: copy the buffer into dest in i→j order.
//
// Behavior highlights:
//   - left and right are never written; dest is written only after every
//     product is known, so dest may alias an operand.
//   - Nothing is written when validation fails.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(m*n*o), Space O(m*o) scratch.
func Mul[T Element](left, right, dest Matrix[T]) error {
	if err := ValidateMulCompatible(left, right, dest); err != nil {
		return matrixErrorf(opMul, err)
	}
	m, n, o := left.Rows(), left.Cols(), right.Cols()
	acc := make([]T, m*o)

	var i, j, k int
	if dl, okL := left.(*Dense[T]); okL {
		if dr, okR := right.(*Dense[T]); okR {
			// i→k→j keeps both operands streaming by rows; each cell still
			// sums k in increasing order.
			for i = 0; i < m; i++ {
				rowL, rowAcc := i*n, i*o
				for k = 0; k < n; k++ {
					a := dl.data[rowL+k]
					rowR := k * o
					for j = 0; j < o; j++ {
						acc[rowAcc+j] += a * dr.data[rowR+j]
					}
				}
			}

			flush(acc, o, dest)

			return nil
		}
	}

	var sum T
	for i = 0; i < m; i++ {
		for j = 0; j < o; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += left.At(i, k) * right.At(k, j)
			}
			acc[i*o+j] = sum
		}
	}

	flush(acc, o, dest)

	return nil
}

// flush copies a row-major buffer with the given column count into dest.
func flush[T Element](buf []T, cols int, dest Matrix[T]) {
	if dd, ok := dest.(*Dense[T]); ok {
		copy(dd.data, buf)

		return
	}
	for idx, v := range buf {
		dest.Set(idx/cols, idx%cols, v)
	}
}

// Add computes dest[i,j] = left[i,j] + right[i,j]; all three share extents.
// dest may be left or right itself (each cell depends only on its own
// inputs), but must not be a shifted view of either.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T Element](left, right, dest Matrix[T]) error {
	return addSub(left, right, dest, false, opAdd)
}

// Sub computes dest[i,j] = left[i,j] - right[i,j]; same rules as Add.
func Sub[T Element](left, right, dest Matrix[T]) error {
	return addSub(left, right, dest, true, opSub)
}

// addSub is the shared kernel behind Add and Sub.
func addSub[T Element](left, right, dest Matrix[T], negate bool, opTag string) error {
	if err := ValidateBinarySameShape(left, right, dest); err != nil {
		return matrixErrorf(opTag, err)
	}
	rows, cols := left.Rows(), left.Cols()

	// Fast path: three *Dense → single flat loop.
	if dl, okL := left.(*Dense[T]); okL {
		if dr, okR := right.(*Dense[T]); okR {
			if dd, okD := dest.(*Dense[T]); okD {
				for idx := range dd.data {
					if negate {
						dd.data[idx] = dl.data[idx] - dr.data[idx]
					} else {
						dd.data[idx] = dl.data[idx] + dr.data[idx]
					}
				}

				return nil
			}
		}
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if negate {
				dest.Set(i, j, left.At(i, j)-right.At(i, j))
			} else {
				dest.Set(i, j, left.At(i, j)+right.At(i, j))
			}
		}
	}

	return nil
}

// Product allocates and returns left × right as a new Dense.
func Product[T Element](left, right Matrix[T]) (*Dense[T], error) {
	if isNil(left) || isNil(right) {
		return nil, matrixErrorf(opProduct, ErrNilMatrix)
	}
	out, err := NewDense[T](left.Rows(), right.Cols())
	if err != nil {
		return nil, matrixErrorf(opProduct, err)
	}
	if err = Mul[T](left, right, out); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	return out, nil
}

// Sum allocates and returns left + right as a new Dense.
func Sum[T Element](left, right Matrix[T]) (*Dense[T], error) {
	if isNil(left) || isNil(right) {
		return nil, matrixErrorf(opSum, ErrNilMatrix)
	}
	out, err := NewDense[T](left.Rows(), left.Cols())
	if err != nil {
		return nil, matrixErrorf(opSum, err)
	}
	if err = Add[T](left, right, out); err != nil {
		return nil, matrixErrorf(opSum, err)
	}

	return out, nil
}

// Equal reports whether a and b have the same extents and every cell is ==.
// Strict comparison: not suitable for floating-point results; use EqualFunc
// with Within instead. Nil operands are never equal.
// Complexity: O(r*c), early exit on the first difference.
func Equal[T Element](a, b Matrix[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether a and b have the same extents and pred holds for
// every pair of corresponding cells (a[i,j], b[i,j]).
func EqualFunc[T Element](a, b Matrix[T], pred func(x, y T) bool) bool {
	if isNil(a) || isNil(b) || ValidateSameShape(a, b) != nil {
		return false
	}
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !pred(a.At(i, j), b.At(i, j)) {
				return false
			}
		}
	}

	return true
}

// Within returns a predicate for EqualFunc accepting |x-y| <= tol.
// NaN never matches; equal infinities do.
func Within[T constraints.Float](tol T) func(x, y T) bool {
	return func(x, y T) bool {
		if x == y {
			return true
		}
		d := float64(x - y)

		return math.Abs(d) <= float64(tol)
	}
}

// Det returns the determinant of a square matrix by Laplace expansion along
// row 0.
// Implementation:
//   - 1×1: the single element.
//   - n×n: for each column j, the minor is the wraparound View at offset
//     (1, j+1) of size (n-1)×(n-1) (no copy), evaluated recursively.
//
// Sign convention:
//   - The view lists the surviving columns as j+1, ..., n-1, 0, ..., j-1, a
//     rotation of their natural order by j places. For even n the rotation is
//     an even permutation and the cofactor signs alternate +, -, +, ...
//     starting positive. For odd n the rotation's parity equals (-1)^j and
//     cancels the cofactor sign, so every term is added.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n) views on the recursion stack. Use DetGauss for
//     anything but small matrices.
func Det[T Element](m Matrix[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det(m), nil
}

// det is the unchecked recursion behind Det; m is square and non-nil.
func det[T Element](m Matrix[T]) T {
	n := m.Rows()
	if n == 1 {
		return m.At(0, 0)
	}
	alternate := n%2 == 0

	var acc T
	plus := true
	for j := 0; j < n; j++ {
		sub := &View[T]{parent: m, pr: n, pc: n, oi: 1, oj: (j + 1) % n, r: n - 1, c: n - 1}
		term := m.At(0, j) * det[T](sub)
		if plus {
			acc += term
		} else {
			acc -= term
		}
		if alternate {
			plus = !plus
		}
	}

	return acc
}

// DetGauss returns the determinant of a square floating-point matrix by
// Gaussian elimination with partial pivoting on a private copy.
// m is not modified. A zero pivot column yields 0.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3) time, O(n^2) space.
func DetGauss[T constraints.Float](m Matrix[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDetGauss, err)
	}
	a, err := Materialize(m)
	if err != nil {
		return 0, matrixErrorf(opDetGauss, err)
	}
	n := a.r
	d := a.data
	var result T = 1

	for k := 0; k < n; k++ {
		// Partial pivoting: largest |a[i,k]| for i ≥ k.
		p := k
		best := math.Abs(float64(d[k*n+k]))
		for i := k + 1; i < n; i++ {
			if v := math.Abs(float64(d[i*n+k])); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return 0, nil
		}
		if p != k {
			for j := 0; j < n; j++ {
				d[k*n+j], d[p*n+j] = d[p*n+j], d[k*n+j]
			}
			result = -result
		}
		pivot := d[k*n+k]
		result *= pivot
		for i := k + 1; i < n; i++ {
			f := d[i*n+k] / pivot
			if f == 0 {
				continue
			}
			for j := k; j < n; j++ {
				d[i*n+j] -= f * d[k*n+j]
			}
		}
	}

	return result, nil
}

// Inverse is the slot for writing src⁻¹ into dest.
// Contract: return false when src is singular (dest untouched), otherwise
// write the inverse into dest and return true; src is never modified.
//
// No inversion algorithm is provided yet: Inverse always reports the singular
// case and never touches either argument. Callers must treat false as "no
// inverse available".
func Inverse[T Element](src, dest Matrix[T]) bool {
	return false
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide an owning, contiguous row-major buffer with the index formula i*cols + j.
//   - Offer every construction path the algorithms need: zero, exemplar fill,
//     copy from a raw buffer, copy of another Dense, and materialization of any
//     Matrix (typically a View).
//   - Fault deterministically on out-of-range access instead of reading
//     neighbouring cells.
//
// Complexity quicksheet:
//   - NewDense/NewFilled/NewDenseFrom: O(r*c); At/Set: O(1); Clone: O(r*c);
//     Materialize: O(r*c) calls to src.At.

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	typDense  = "Dense" // type tag used in panics and errors
	ctxAt     = "At"    // method tag used in panics
	ctxSet    = "Set"   // method tag used in panics
	ctxNew    = "NewDense"
	ctxFrom   = "NewDenseFrom"
	ctxCopy   = "NewDenseCopy"
	ctxFilled = "NewFilled"
	ctxMat    = "Materialize"
)

// Dense is a concrete row-major matrix that owns its storage exclusively.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Element] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]     = (*Dense[int])(nil)
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c Dense whose contents are the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - Callers must not rely on the contents; they are "unspecified" in the
//     sense that only the zero value is guaranteed.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates an r×c Dense with every cell set to the exemplar ex.
// Complexity: O(r*c).
func NewFilled[T Element](rows, cols int, ex T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxFilled, ErrInvalidDimensions)
	}
	buf := make([]T, rows*cols)
	for k := range buf {
		buf[k] = ex
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom copies exactly rows*cols elements from data (row-major).
// MAIN DESCRIPTION:
//   - Ingest a caller-owned buffer; the result never aliases it.
//
// Implementation:
//   - Stage 1: validate shape, then len(data) == rows*cols.
//   - Stage 2: allocate and copy.
//
// Errors:
//   - ErrInvalidDimensions, ErrDataLength.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Later writes to data do not affect the matrix and vice versa.
func NewDenseFrom[T Element](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxFrom, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxFrom, fmt.Errorf("len %d, want %d: %w", len(data), rows*cols, ErrDataLength))
	}
	buf := make([]T, rows*cols)
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDenseCopy returns an independent copy of src (identical extents).
// Errors: ErrNilMatrix.
func NewDenseCopy[T Element](src *Dense[T]) (*Dense[T], error) {
	if src == nil {
		return nil, matrixErrorf(ctxCopy, ErrNilMatrix)
	}

	return src.Clone(), nil
}

// Materialize copies any Matrix (usually a View) into a new Dense of the
// same extents, element by element in i→j order.
// MAIN DESCRIPTION:
//   - Break the aliasing of a view: the result owns its storage.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions when src reports non-positive extents.
//
// Complexity:
//   - Time O(r*c) calls to src.At, Space O(r*c).
func Materialize[T Element](src Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(ctxMat, err)
	}
	if d, ok := src.(*Dense[T]); ok {
		return d.Clone(), nil
	}
	out, err := NewDense[T](src.Rows(), src.Cols())
	if err != nil {
		return nil, matrixErrorf(ctxMat, err)
	}
	var i, j int
	for i = 0; i < out.r; i++ {
		base := i * out.c
		for j = 0; j < out.c; j++ {
			out.data[base+j] = src.At(i, j)
		}
	}

	return out, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Element](n int) (*Dense[T], error) {
	id, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset, panicking on out-of-range indices.
// Row and column are checked separately: (0, c) and (1, 0) share an offset.
func (m *Dense[T]) indexOf(method string, row, col int) int {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		indexPanic(typDense, method, row, col)
	}

	return row*m.c + col
}

// At returns the value at (row, col).
// Panics with an error wrapping ErrOutOfRange on invalid indices.
// Complexity: O(1), no allocations.
func (m *Dense[T]) At(row, col int) T {
	return m.data[m.indexOf(ctxAt, row, col)]
}

// Set stores v at (row, col) and returns the stored value.
// Panics with an error wrapping ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) T {
	m.data[m.indexOf(ctxSet, row, col)] = v

	return v
}

// Clone returns a deep copy (new buffer, same extents).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Data returns a copy of the row-major buffer.
func (m *Dense[T]) Data() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// String renders the matrix with Format.
func (m *Dense[T]) String() string { return Format[T](m) }

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

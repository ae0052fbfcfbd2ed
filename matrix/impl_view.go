// SPDX-License-Identifier: MIT

// Package matrix - View: a non-owning, wraparound window over another Matrix.
//
// Purpose:
//   - Alias a parent (Dense or another View) without copying; writes through a
//     view mutate the parent, and every view over the same parent sees them.
//   - Remap indices cyclically: view (i,j) → parent ((i+oi) mod M, (j+oj) mod N),
//     so a window that runs past the parent's edge continues on the other side.
//   - Let Det carve minors out of a square matrix in O(1) per minor.
//
// Ownership:
//   - The parent is held by reference; the garbage collector keeps it alive for
//     as long as any view (or chain of views) reaches it.
//   - No locking. Concurrent writes through aliasing views are out of contract.

package matrix

import "fmt"

const (
	typView   = "View"
	ctxNewVw  = "NewView"
	ctxNewVwA = "NewViewAt"
	ctxMinor  = "Minor"
)

// View is a rows×cols window onto parent, offset by (oi, oj) with wraparound.
type View[T Element] struct {
	parent Matrix[T] // shared, not owned
	pr, pc int       // parent extents M, N captured at construction
	oi, oj int       // normalized offsets, 0 ≤ oi < pr, 0 ≤ oj < pc
	r, c   int       // view extents
}

var (
	_ Matrix[int]     = (*View[int])(nil)
	_ Matrix[float64] = (*View[float64])(nil)
	_ fmt.Stringer    = (*View[float64])(nil)
)

// NewView creates a rows×cols view over parent with a zero offset.
// See NewViewAt for the contract.
func NewView[T Element](parent Matrix[T], rows, cols int) (*View[T], error) {
	v, err := newView(parent, rows, cols, 0, 0)
	if err != nil {
		return nil, matrixErrorf(ctxNewVw, err)
	}

	return v, nil
}

// NewViewAt creates a rows×cols view over parent whose (0,0) is parent (oi,oj).
// MAIN DESCRIPTION:
//   - Offsets may be any integers; they are reduced modulo the parent extents,
//     so negative offsets wrap from the bottom/right edge.
//   - rows/cols may exceed the parent's extents; such a view tiles the parent.
//
// Errors:
//   - ErrNilMatrix (nil parent), ErrInvalidDimensions (rows<=0 || cols<=0).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewViewAt[T Element](parent Matrix[T], rows, cols, oi, oj int) (*View[T], error) {
	v, err := newView(parent, rows, cols, oi, oj)
	if err != nil {
		return nil, matrixErrorf(ctxNewVwA, err)
	}

	return v, nil
}

func newView[T Element](parent Matrix[T], rows, cols, oi, oj int) (*View[T], error) {
	if err := ValidateNotNil(parent); err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	pr, pc := parent.Rows(), parent.Cols()
	if pr <= 0 || pc <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &View[T]{
		parent: parent,
		pr:     pr,
		pc:     pc,
		oi:     mod(oi, pr),
		oj:     mod(oj, pc),
		r:      rows,
		c:      cols,
	}, nil
}

// mod is the non-negative remainder of a modulo n (n > 0).
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}

	return a
}

// Rows returns the number of rows in the view.
func (v *View[T]) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *View[T]) Cols() int { return v.c }

// Shape returns (Rows, Cols).
func (v *View[T]) Shape() (rows, cols int) { return v.r, v.c }

// Parent returns the matrix this view aliases.
func (v *View[T]) Parent() Matrix[T] { return v.parent }

// Offset returns the normalized (row, col) offset into the parent.
func (v *View[T]) Offset() (oi, oj int) { return v.oi, v.oj }

// translate maps view coordinates to parent coordinates.
// Indices outside the view's own extents panic, even though the modulus
// would otherwise fold them back into range.
func (v *View[T]) translate(method string, i, j int) (int, int) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		indexPanic(typView, method, i, j)
	}

	return (i + v.oi) % v.pr, (j + v.oj) % v.pc
}

// At reads parent ((i+oi) mod M, (j+oj) mod N).
// Complexity: O(1) plus the parent's At.
func (v *View[T]) At(i, j int) T {
	pi, pj := v.translate(ctxAt, i, j)

	return v.parent.At(pi, pj)
}

// Set writes through to the parent and returns the stored value.
// Complexity: O(1) plus the parent's Set.
func (v *View[T]) Set(i, j int, val T) T {
	pi, pj := v.translate(ctxSet, i, j)

	return v.parent.Set(pi, pj, val)
}

// Minor returns the (n-1)×(n-1) wraparound view that starts just below and to
// the right of (row, col). Its rows are parent rows row+1, row+2, ... and its
// columns parent columns col+1, col+2, ... (mod n): it holds exactly the cells
// that remain after deleting row and col, in cyclic order.
//
// Errors: ErrNonSquare, ErrInvalidDimensions when v is 1×1.
func (v *View[T]) Minor(row, col int) (*View[T], error) {
	return Minor[T](v, row, col)
}

// Minor builds the wraparound minor of any square matrix m (see View.Minor).
// Complexity: O(1); no element is copied.
func Minor[T Element](m Matrix[T], row, col int) (*View[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(ctxMinor, err)
	}
	n := m.Rows()
	if n < 2 {
		return nil, matrixErrorf(ctxMinor, ErrInvalidDimensions)
	}
	sub, err := newView(m, n-1, n-1, row+1, col+1)
	if err != nil {
		return nil, matrixErrorf(ctxMinor, err)
	}

	return sub, nil
}

// String renders the view with Format.
func (v *View[T]) String() string { return Format[T](v) }

// View is shorthand for NewViewAt(m, rows, cols, oi, oj).
func (m *Dense[T]) View(rows, cols, oi, oj int) (*View[T], error) {
	return NewViewAt[T](m, rows, cols, oi, oj)
}

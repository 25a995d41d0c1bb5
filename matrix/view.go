// File: view.go
// Role: read-only borrowed window over a Matrix (the shared-borrow side of
// the aliasing rule). A View copies the dimensions at construction, shares
// the backing buffer, and owns no storage of its own. Any number of Views
// may be alive at once; none may coexist with a ViewMut.

package matrix

import "iter"

// View is a borrowed, read-only whole-matrix window. It mirrors the read
// surface of Matrix and delegates all index math to the same row-major
// formula; it adds borrow scoping, nothing else.
//
// A View must be released with Release before the source Matrix may be
// mutated or exclusively borrowed again. Using a View after Release panics
// with ErrViewReleased.
type View[T any] struct {
	rows, cols int        // copied from the source at construction
	data       []T        // shared reference to the source buffer
	src        *Matrix[T] // for borrow bookkeeping on Release
	released   bool
}

// View derives a read-only window over the whole Matrix, registering a
// shared borrow. Panics with ErrBorrowConflict while an exclusive borrow is
// live. Complexity: O(1); no allocation beyond the View header.
func (m *Matrix[T]) View() *View[T] {
	m.assertReadable("View")
	m.borrows++

	return &View[T]{rows: m.rows, cols: m.cols, data: m.data, src: m}
}

// Release ends the shared borrow. The View (and any sequence obtained from
// it) must not be used afterwards; a second Release panics with
// ErrViewReleased. Complexity: O(1).
func (v *View[T]) Release() {
	if v.released {
		panic(matrixErrorf("View.Release", ErrViewReleased))
	}
	v.released = true
	v.src.borrows--
}

// assertLive panics with ErrViewReleased after Release.
func (v *View[T]) assertLive(method string) {
	if v.released {
		panic(matrixErrorf(method, ErrViewReleased))
	}
}

// Rows returns the row count captured at construction. Complexity: O(1).
func (v *View[T]) Rows() int {
	v.assertLive("View.Rows")

	return v.rows
}

// Cols returns the column count captured at construction. Complexity: O(1).
func (v *View[T]) Cols() int {
	v.assertLive("View.Cols")

	return v.cols
}

// Get returns the element at (row, col) and true, or the zero value and
// false when either coordinate is out of range. Complexity: O(1).
func (v *View[T]) Get(row, col int) (T, bool) {
	v.assertLive("View.Get")
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		var zero T
		return zero, false
	}

	return v.data[row*v.cols+col], true
}

// At returns the element at (row, col), indexing the shared buffer
// directly; an out-of-range flat index crashes on the slice bounds check.
// Complexity: O(1).
func (v *View[T]) At(row, col int) T {
	v.assertLive("View.At")

	return v.data[row*v.cols+col]
}

// GetUnchecked returns the element at (row, col) with no bounds validation
// and no liveness check. Caller obligation as in Matrix.GetUnchecked:
// violating 0 <= row < Rows(), 0 <= col < Cols() is undefined behavior.
// Complexity: O(1).
func (v *View[T]) GetUnchecked(row, col int) T {
	return *uncheckedPtr(v.data, row*v.cols+col)
}

// Iter returns all elements in row-major order. Complexity: O(rows*cols).
func (v *View[T]) Iter() iter.Seq[T] {
	v.assertLive("View.Iter")

	return seqVals(v.data, 0, len(v.data), 1)
}

// IterRow returns the Cols() elements of logical row in column order.
// Panics with ErrOutOfRange when row is outside the view.
func (v *View[T]) IterRow(row int) iter.Seq[T] {
	v.assertLive("View.IterRow")
	checkRow("View.IterRow", row, v.rows)
	lo := row * v.cols

	return seqVals(v.data, lo, lo+v.cols, 1)
}

// IterCol returns the Rows() elements of logical column col, top to bottom.
// Panics with ErrOutOfRange when col is outside the view.
func (v *View[T]) IterCol(col int) iter.Seq[T] {
	v.assertLive("View.IterCol")
	checkCol("View.IterCol", col, v.cols)

	return seqVals(v.data, col, len(v.data), v.cols)
}

// IterRows returns Rows() read-only row slices partitioning the buffer.
func (v *View[T]) IterRows() iter.Seq[[]T] {
	v.assertLive("View.IterRows")

	return seqChunks(v.data, v.rows, v.cols)
}

// IterCols returns Cols() column sequences, each equivalent to IterCol.
func (v *View[T]) IterCols() iter.Seq[iter.Seq[T]] {
	v.assertLive("View.IterCols")

	return seqCols(v.data, v.cols)
}

// CloneBuffer returns an independent row-major copy of the viewed buffer.
// Complexity: O(rows*cols) time and memory.
func (v *View[T]) CloneBuffer() []T {
	v.assertLive("View.CloneBuffer")
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Data exposes the viewed buffer as a read-only borrowed slice.
// Complexity: O(1).
func (v *View[T]) Data() []T {
	v.assertLive("View.Data")

	return v.data
}

// String renders the view like Matrix.String. Complexity: O(rows*cols).
func (v *View[T]) String() string {
	v.assertLive("View.String")

	return sprintRows(v.IterRows())
}

// File: view_mut.go
// Role: exclusive borrowed window over a Matrix (the mutable side of the
// aliasing rule). While a ViewMut is alive no other access to the source
// Matrix is permitted — not even reads; every Matrix entry point fails fast
// with ErrBorrowConflict until Release. The view mirrors the full
// read/write surface except construction and buffer adoption, which remain
// Matrix-only responsibilities.

package matrix

import "iter"

// ViewMut is a borrowed, exclusive whole-matrix window permitting in-place
// mutation through indexing and iteration. Dimensions are copied at
// construction; the buffer is shared with the source Matrix, so every write
// is visible through the Matrix once the view is released.
//
// Using a ViewMut after Release panics with ErrViewReleased.
type ViewMut[T any] struct {
	rows, cols int        // copied from the source at construction
	data       []T        // exclusive reference to the source buffer
	src        *Matrix[T] // for borrow bookkeeping on Release
	released   bool
}

// ViewMut derives an exclusive window over the whole Matrix. Panics with
// ErrBorrowConflict while any borrow (shared or exclusive) is live.
// Complexity: O(1); no allocation beyond the view header.
func (m *Matrix[T]) ViewMut() *ViewMut[T] {
	m.assertWritable("ViewMut")
	m.borrows = exclusiveBorrow

	return &ViewMut[T]{rows: m.rows, cols: m.cols, data: m.data, src: m}
}

// Release ends the exclusive borrow, making the Matrix accessible again.
// The view (and any sequence obtained from it) must not be used afterwards;
// a second Release panics with ErrViewReleased. Complexity: O(1).
func (v *ViewMut[T]) Release() {
	if v.released {
		panic(matrixErrorf("ViewMut.Release", ErrViewReleased))
	}
	v.released = true
	v.src.borrows = 0
}

// assertLive panics with ErrViewReleased after Release.
func (v *ViewMut[T]) assertLive(method string) {
	if v.released {
		panic(matrixErrorf(method, ErrViewReleased))
	}
}

// Rows returns the row count captured at construction. Complexity: O(1).
func (v *ViewMut[T]) Rows() int {
	v.assertLive("ViewMut.Rows")

	return v.rows
}

// Cols returns the column count captured at construction. Complexity: O(1).
func (v *ViewMut[T]) Cols() int {
	v.assertLive("ViewMut.Cols")

	return v.cols
}

// Get returns the element at (row, col) and true, or the zero value and
// false when either coordinate is out of range. Complexity: O(1).
func (v *ViewMut[T]) Get(row, col int) (T, bool) {
	v.assertLive("ViewMut.Get")
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		var zero T
		return zero, false
	}

	return v.data[row*v.cols+col], true
}

// GetMut returns a pointer to the element at (row, col) and true, or nil
// and false when either coordinate is out of range. Complexity: O(1).
func (v *ViewMut[T]) GetMut(row, col int) (*T, bool) {
	v.assertLive("ViewMut.GetMut")
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		return nil, false
	}

	return &v.data[row*v.cols+col], true
}

// At returns the element at (row, col), indexing the shared buffer
// directly; an out-of-range flat index crashes on the slice bounds check.
// Complexity: O(1).
func (v *ViewMut[T]) At(row, col int) T {
	v.assertLive("ViewMut.At")

	return v.data[row*v.cols+col]
}

// Set assigns val at (row, col), indexing the shared buffer directly.
// Same contract as At. Complexity: O(1).
func (v *ViewMut[T]) Set(row, col int, val T) {
	v.assertLive("ViewMut.Set")
	v.data[row*v.cols+col] = val
}

// GetUnchecked returns the element at (row, col) with no bounds validation
// and no liveness check. Caller obligation as in Matrix.GetUnchecked.
// Complexity: O(1).
func (v *ViewMut[T]) GetUnchecked(row, col int) T {
	return *uncheckedPtr(v.data, row*v.cols+col)
}

// GetUncheckedMut returns a pointer to the element at (row, col) with no
// bounds validation and no liveness check. Caller obligation as in
// Matrix.GetUncheckedMut. Complexity: O(1).
func (v *ViewMut[T]) GetUncheckedMut(row, col int) *T {
	return uncheckedPtr(v.data, row*v.cols+col)
}

// SetUnchecked assigns val at (row, col) with no bounds validation and no
// liveness check. Caller obligation as in Matrix.SetUnchecked.
// Complexity: O(1).
func (v *ViewMut[T]) SetUnchecked(row, col int, val T) {
	*uncheckedPtr(v.data, row*v.cols+col) = val
}

// Iter returns all elements in row-major order. Complexity: O(rows*cols).
func (v *ViewMut[T]) Iter() iter.Seq[T] {
	v.assertLive("ViewMut.Iter")

	return seqVals(v.data, 0, len(v.data), 1)
}

// IterMut returns pointers to all elements in row-major order for in-place
// mutation. Complexity: O(rows*cols) to drain.
func (v *ViewMut[T]) IterMut() iter.Seq[*T] {
	v.assertLive("ViewMut.IterMut")

	return seqPtrs(v.data, 0, len(v.data), 1)
}

// IterRow returns the Cols() elements of logical row in column order.
// Panics with ErrOutOfRange when row is outside the view.
func (v *ViewMut[T]) IterRow(row int) iter.Seq[T] {
	v.assertLive("ViewMut.IterRow")
	checkRow("ViewMut.IterRow", row, v.rows)
	lo := row * v.cols

	return seqVals(v.data, lo, lo+v.cols, 1)
}

// IterRowMut is IterRow yielding pointers for in-place mutation.
// Panics with ErrOutOfRange when row is outside the view.
func (v *ViewMut[T]) IterRowMut(row int) iter.Seq[*T] {
	v.assertLive("ViewMut.IterRowMut")
	checkRow("ViewMut.IterRowMut", row, v.rows)
	lo := row * v.cols

	return seqPtrs(v.data, lo, lo+v.cols, 1)
}

// IterCol returns the Rows() elements of logical column col, top to bottom.
// Panics with ErrOutOfRange when col is outside the view.
func (v *ViewMut[T]) IterCol(col int) iter.Seq[T] {
	v.assertLive("ViewMut.IterCol")
	checkCol("ViewMut.IterCol", col, v.cols)

	return seqVals(v.data, col, len(v.data), v.cols)
}

// IterColMut is IterCol yielding pointers for in-place mutation.
// Panics with ErrOutOfRange when col is outside the view.
func (v *ViewMut[T]) IterColMut(col int) iter.Seq[*T] {
	v.assertLive("ViewMut.IterColMut")
	checkCol("ViewMut.IterColMut", col, v.cols)

	return seqPtrs(v.data, col, len(v.data), v.cols)
}

// IterRows returns Rows() row slices partitioning the buffer; treat them as
// read-only. Complexity: O(rows) to drain.
func (v *ViewMut[T]) IterRows() iter.Seq[[]T] {
	v.assertLive("ViewMut.IterRows")

	return seqChunks(v.data, v.rows, v.cols)
}

// IterRowsMut is IterRows with the row slices intended for in-place
// mutation; rows are disjoint, so writes through one never touch another.
func (v *ViewMut[T]) IterRowsMut() iter.Seq[[]T] {
	v.assertLive("ViewMut.IterRowsMut")

	return seqChunks(v.data, v.rows, v.cols)
}

// IterCols returns Cols() read-only column sequences.
func (v *ViewMut[T]) IterCols() iter.Seq[iter.Seq[T]] {
	v.assertLive("ViewMut.IterCols")

	return seqCols(v.data, v.cols)
}

// IterColsMut returns Cols() mutable column sequences. Columns share no
// elements, so the per-column pointer sequences never alias each other and
// may each be drained independently. Complexity: O(cols) outer, O(rows) per
// inner sequence.
func (v *ViewMut[T]) IterColsMut() iter.Seq[iter.Seq[*T]] {
	v.assertLive("ViewMut.IterColsMut")

	return seqColsMut(v.data, v.cols)
}

// CloneBuffer returns an independent row-major copy of the viewed buffer.
// Complexity: O(rows*cols) time and memory.
func (v *ViewMut[T]) CloneBuffer() []T {
	v.assertLive("ViewMut.CloneBuffer")
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Data exposes the viewed buffer as a read-only borrowed slice.
// Complexity: O(1).
func (v *ViewMut[T]) Data() []T {
	v.assertLive("ViewMut.Data")

	return v.data
}

// DataMut exposes the viewed buffer for in-place bulk mutation.
// Complexity: O(1).
func (v *ViewMut[T]) DataMut() []T {
	v.assertLive("ViewMut.DataMut")

	return v.data
}

// String renders the view like Matrix.String. Complexity: O(rows*cols).
func (v *ViewMut[T]) String() string {
	v.assertLive("ViewMut.String")

	return sprintRows(v.IterRows())
}

package matrix

import "iter"

// Lazy traversal over the flat buffer. Every public method returns a fresh,
// restartable iter.Seq; breaking out of a range loop early is always safe.
// All sequences visit the buffer through one strided walk — there is no
// layout logic here beyond start/stop/step derived from the row-major
// formula.
//
// The borrow guard and the row/col bounds checks run once, at sequence
// construction; the yielded elements are then produced without further
// validation.

// seqVals yields data[start], data[start+step], ... while the index is
// below stop. step must be positive. Complexity: O(elements yielded).
func seqVals[T any](data []T, start, stop, step int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; i < stop; i += step {
			if !yield(data[i]) {
				return
			}
		}
	}
}

// seqPtrs is seqVals yielding pointers into data for in-place mutation.
func seqPtrs[T any](data []T, start, stop, step int) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := start; i < stop; i += step {
			if !yield(&data[i]) {
				return
			}
		}
	}
}

// seqChunks yields rows contiguous, non-overlapping sub-slices of cols
// elements each, partitioning data. cols == 0 yields rows empty slices.
func seqChunks[T any](data []T, rows, cols int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for r := 0; r < rows; r++ {
			if !yield(data[r*cols : (r+1)*cols]) {
				return
			}
		}
	}
}

// seqCols yields one read-only column sequence per column.
func seqCols[T any](data []T, cols int) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		for c := 0; c < cols; c++ {
			if !yield(seqVals(data, c, len(data), cols)) {
				return
			}
		}
	}
}

// seqColsMut yields one mutable column sequence per column. Columns share
// no elements, so the per-column pointer sequences never alias each other.
func seqColsMut[T any](data []T, cols int) iter.Seq[iter.Seq[*T]] {
	return func(yield func(iter.Seq[*T]) bool) {
		for c := 0; c < cols; c++ {
			if !yield(seqPtrs(data, c, len(data), cols)) {
				return
			}
		}
	}
}

// checkRow panics with ErrOutOfRange unless 0 <= row < rows.
func checkRow(method string, row, rows int) {
	if row < 0 || row >= rows {
		panic(matrixErrorf(method, ErrOutOfRange))
	}
}

// checkCol panics with ErrOutOfRange unless 0 <= col < cols.
func checkCol(method string, col, cols int) {
	if col < 0 || col >= cols {
		panic(matrixErrorf(method, ErrOutOfRange))
	}
}

// Iter returns all elements in row-major order.
// Complexity: O(rows*cols) to drain; O(1) to construct.
func (m *Matrix[T]) Iter() iter.Seq[T] {
	m.assertReadable("Iter")

	return seqVals(m.data, 0, len(m.data), 1)
}

// IterMut returns pointers to all elements in row-major order for in-place
// mutation. While the sequence is consumed no other access to the Matrix
// may occur. Complexity: O(rows*cols) to drain.
func (m *Matrix[T]) IterMut() iter.Seq[*T] {
	m.assertWritable("IterMut")

	return seqPtrs(m.data, 0, len(m.data), 1)
}

// IterRow returns the Cols() elements of logical row in column order.
// Panics with ErrOutOfRange when row is outside the matrix — a contract
// violation, distinct from Get's comma-ok. Complexity: O(cols) to drain.
func (m *Matrix[T]) IterRow(row int) iter.Seq[T] {
	m.assertReadable("IterRow")
	checkRow("IterRow", row, m.rows)
	lo := row * m.cols

	return seqVals(m.data, lo, lo+m.cols, 1)
}

// IterRowMut is IterRow yielding pointers for in-place mutation.
// Panics with ErrOutOfRange when row is outside the matrix.
func (m *Matrix[T]) IterRowMut(row int) iter.Seq[*T] {
	m.assertWritable("IterRowMut")
	checkRow("IterRowMut", row, m.rows)
	lo := row * m.cols

	return seqPtrs(m.data, lo, lo+m.cols, 1)
}

// IterCol returns the Rows() elements of logical column col, top to bottom:
// the walk starts at flat offset col and strides by Cols().
// Panics with ErrOutOfRange when col is outside the matrix.
// Complexity: O(rows) to drain.
func (m *Matrix[T]) IterCol(col int) iter.Seq[T] {
	m.assertReadable("IterCol")
	checkCol("IterCol", col, m.cols)

	return seqVals(m.data, col, len(m.data), m.cols)
}

// IterColMut is IterCol yielding pointers for in-place mutation.
// Panics with ErrOutOfRange when col is outside the matrix.
func (m *Matrix[T]) IterColMut(col int) iter.Seq[*T] {
	m.assertWritable("IterColMut")
	checkCol("IterColMut", col, m.cols)

	return seqPtrs(m.data, col, len(m.data), m.cols)
}

// IterRows returns Rows() row slices of Cols() elements each, partitioning
// the buffer contiguously and without overlap. The slices alias the backing
// buffer; treat them as read-only. Complexity: O(rows) to drain.
func (m *Matrix[T]) IterRows() iter.Seq[[]T] {
	m.assertReadable("IterRows")

	return seqChunks(m.data, m.rows, m.cols)
}

// IterRowsMut is IterRows with the row slices intended for in-place
// mutation. The rows are disjoint, so writes through one never touch
// another. Complexity: O(rows) to drain.
func (m *Matrix[T]) IterRowsMut() iter.Seq[[]T] {
	m.assertWritable("IterRowsMut")

	return seqChunks(m.data, m.rows, m.cols)
}

// IterCols returns Cols() column sequences, each equivalent to IterCol of
// that column. Complexity: O(cols) to drain the outer sequence; each inner
// sequence is O(rows).
func (m *Matrix[T]) IterCols() iter.Seq[iter.Seq[T]] {
	m.assertReadable("IterCols")

	return seqCols(m.data, m.cols)
}

// IterColsMut returns Cols() mutable column sequences. Columns are disjoint
// by construction, so mutating through one column sequence never overlaps
// another. Complexity: O(cols) outer, O(rows) per inner sequence.
func (m *Matrix[T]) IterColsMut() iter.Seq[iter.Seq[*T]] {
	m.assertWritable("IterColsMut")

	return seqColsMut(m.data, m.cols)
}

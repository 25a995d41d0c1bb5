package matrix

// Element access comes in three flavors, deliberately kept apart:
//
//   - Get / GetMut: bounds-checked, comma-ok. Out-of-range coordinates are
//     an expected-absence condition callers branch on; never a panic.
//   - At / Set: the operator form. The flat index is computed directly and
//     the slice's own bounds check fires on overflow — a hard crash, never
//     a silent wraparound past the buffer.
//   - GetUnchecked / GetUncheckedMut / SetUnchecked (unchecked.go): no
//     validation at all; the caller guarantees the coordinates.

// index computes the row-major flat offset for (row, col).
// Every component of the package funnels through this formula; no other
// layout logic exists. Complexity: O(1).
func (m *Matrix[T]) index(row, col int) int {
	return row*m.cols + col
}

// inBounds reports whether (row, col) addresses a cell of the matrix.
// Complexity: O(1).
func (m *Matrix[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Get returns the element at (row, col) and true, or the zero value and
// false when either coordinate is out of range. Out-of-range lookups are an
// expected condition, not an error. Complexity: O(1).
func (m *Matrix[T]) Get(row, col int) (T, bool) {
	m.assertReadable("Get")
	if !m.inBounds(row, col) {
		var zero T
		return zero, false
	}

	return m.data[m.index(row, col)], true
}

// GetMut returns a pointer to the element at (row, col) and true, or nil and
// false when either coordinate is out of range. The pointer aliases the
// backing buffer; writes through it are immediately visible to every other
// accessor. Complexity: O(1).
func (m *Matrix[T]) GetMut(row, col int) (*T, bool) {
	m.assertWritable("GetMut")
	if !m.inBounds(row, col) {
		return nil, false
	}

	return &m.data[m.index(row, col)], true
}

// At returns the element at (row, col), indexing the backing buffer
// directly. The caller must guarantee row < Rows() and col < Cols(); a flat
// index outside the buffer crashes on the slice bounds check. Prefer Get
// when the coordinates are not already known to be valid.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) T {
	m.assertReadable("At")

	return m.data[m.index(row, col)]
}

// Set assigns v at (row, col), indexing the backing buffer directly.
// Same contract as At: out-of-range flat indices crash, they do not wrap.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) {
	m.assertWritable("Set")
	m.data[m.index(row, col)] = v
}

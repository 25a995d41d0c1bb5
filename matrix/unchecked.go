package matrix

import "unsafe"

// Unchecked accessors: the performance escape hatch. These skip both the
// borrow guard and every bounds check by doing raw pointer arithmetic on the
// backing buffer. They are NOT the default access path — reach for them only
// in profiled hot loops where the coordinates are proven in range.
//
// Caller obligation (hard precondition, never validated here):
//
//	0 <= row < Rows() && 0 <= col < Cols()
//
// Violating it reads or writes memory outside the buffer: undefined
// behavior, not merely a panic.

// uncheckedPtr returns a pointer to data[idx] without a bounds check.
func uncheckedPtr[T any](data []T, idx int) *T {
	var zero T

	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(data)), uintptr(idx)*unsafe.Sizeof(zero)))
}

// GetUnchecked returns the element at (row, col) with no bounds validation.
// See the package unsafe contract above; Get is the safe variant.
// Complexity: O(1).
func (m *Matrix[T]) GetUnchecked(row, col int) T {
	return *uncheckedPtr(m.data, m.index(row, col))
}

// GetUncheckedMut returns a pointer to the element at (row, col) with no
// bounds validation. See the package unsafe contract above; GetMut is the
// safe variant. Complexity: O(1).
func (m *Matrix[T]) GetUncheckedMut(row, col int) *T {
	return uncheckedPtr(m.data, m.index(row, col))
}

// SetUnchecked assigns v at (row, col) with no bounds validation.
// See the package unsafe contract above; Set is the checked variant.
// Complexity: O(1).
func (m *Matrix[T]) SetUnchecked(row, col int, v T) {
	*uncheckedPtr(m.data, m.index(row, col)) = v
}

// SPDX-License-Identifier: MIT

// Package matrix: core container type and borrow-state bookkeeping.
// This file intentionally contains ONLY the Matrix struct and the borrow
// discipline shared by every entry point. Constructors live in matrix.go,
// element access in access.go, iteration in iterators.go, views in
// view.go / view_mut.go per the package conventions.
package matrix

// exclusiveBorrow marks the borrow counter while a ViewMut is alive.
// Non-negative values count live shared Views (0 = unborrowed).
const exclusiveBorrow = -1

// Matrix is a dense row-major 2D container of T values.
// rows and cols are the logical dimensions; data holds rows*cols elements in
// row-major order (index = row*cols + col). The buffer is owned exclusively
// by the Matrix; views borrow it and never outlive their Release.
//
// Invariant: len(data) == rows*cols after every construction path.
//
// The borrow counter implements the aliasing rule at run time (Go has no
// borrow checker): many readers or one writer, never both. The model is
// single-threaded by contract; wrap the Matrix in your own lock for
// cross-goroutine use.
type Matrix[T any] struct {
	rows, cols int // logical dimensions, never negative
	data       []T // flat backing storage, length == rows*cols
	borrows    int // 0 free, >0 shared views, exclusiveBorrow = mutable view
}

// assertReadable panics with ErrBorrowConflict if an exclusive borrow is
// live. Called by every read entry point. Complexity: O(1).
func (m *Matrix[T]) assertReadable(method string) {
	if m.borrows == exclusiveBorrow {
		panic(matrixErrorf(method, ErrBorrowConflict))
	}
}

// assertWritable panics with ErrBorrowConflict if any borrow is live.
// Called by every mutating entry point. Complexity: O(1).
func (m *Matrix[T]) assertWritable(method string) {
	if m.borrows != 0 {
		panic(matrixErrorf(method, ErrBorrowConflict))
	}
}

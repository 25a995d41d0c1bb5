// Package flatmat is a dense, row-major 2D container library built on a
// single flat backing buffer, with zero-copy borrowed views.
//
// 🚀 What is flatmat?
//
//	A small, generic, zero-dependency library that brings together:
//		• Matrix[T]: owns the buffer; checked & unchecked element access
//		• Views: borrowed read-only and exclusive windows over a matrix
//		• Iteration: lazy row / column / element sequences (iter.Seq)
//		• Builders: rectangular-literal construction with validation
//
// ✨ Why choose flatmat?
//
//   - Predictable layout – one contiguous buffer, (row, col) → row*cols+col
//   - Allocation-free traversal – every iterator walks the buffer in place
//   - Loud failure – contract violations panic with sentinel errors;
//     out-of-range lookups return comma-ok, never corrupt data
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	matrix/  — Matrix[T], View[T], ViewMut[T], iterators, formatting
//	builder/ — construction from nested row literals
//
// Quick example:
//
//	m := matrix.New[int](3, 3)
//	m.Set(0, 0, 1)
//	m.Set(1, 1, 2)
//	m.Set(2, 2, 3)
//	for v := range m.Iter() {
//		// visits 1, 0, 0, 0, 2, 0, 0, 0, 3 in row-major order
//		_ = v
//	}
//
// flatmat stores data and traverses it; it deliberately implements no
// arithmetic, no decompositions, no reshaping. Bring your own algorithms.
package flatmat

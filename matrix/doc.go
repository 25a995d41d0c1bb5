// Package matrix provides a generic, dense, row-major 2D container over a
// single contiguous backing buffer, plus zero-copy borrowed views.
//
// The matrix package provides:
//
//   - Matrix[T] — owns the flat buffer; coordinate-checked (Get/GetMut),
//     panicking (At/Set), and unchecked (GetUnchecked…) element access.
//   - View[T] / ViewMut[T] — borrowed whole-matrix windows; a View admits
//     any number of simultaneous readers, a ViewMut demands exclusivity.
//   - Lazy iteration — Iter, IterRow(s), IterCol(s) and mutable variants,
//     all expressed as restartable iter.Seq sequences over the buffer.
//
// Logical coordinates map onto the buffer with the row-major formula
// index = row*cols + col; no other layout logic exists anywhere in the
// package. Views copy dimensions at construction and share the buffer,
// adding borrow scoping but no new index math.
//
// Failure model: caller bugs (length mismatch in FromParts, out-of-range
// IterRow/IterCol, borrow-rule violations) panic with sentinel errors;
// expected absence (Get on out-of-range coordinates) is comma-ok.
//
// See the examples in this package and builder for usage patterns.
package matrix

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Panics are reserved for programmer errors: every panic raised by
// this package carries one of these sentinels (wrapped with call-site
// context), so tests and recover() handlers can match via errors.Is.
// Expected absence is never an error here — Get/GetMut return comma-ok.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are never returned from the public
// API; they travel exclusively as panic values wrapped by matrixErrorf, and
// callers match them with errors.Is after recover().

var (
	// ErrBadShape is raised when a constructor receives a negative dimension.
	// Zero is a valid dimension (an empty buffer), negative never is.
	ErrBadShape = errors.New("matrix: negative dimension")

	// ErrSizeMismatch is raised by FromParts when the adopted buffer length
	// does not equal rows*cols. This is a contract precondition, not a
	// recoverable condition: the caller computed the wrong buffer.
	ErrSizeMismatch = errors.New("matrix: buffer length does not match rows*cols")

	// ErrOutOfRange is raised by IterRow/IterCol when the requested row or
	// column index is outside the matrix. Bounds-checked lookups (Get,
	// GetMut) signal the same condition with comma-ok instead.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBorrowConflict is raised when the aliasing rule is violated: any
	// number of shared borrows OR exactly one exclusive borrow may exist at
	// an instant, never both.
	ErrBorrowConflict = errors.New("matrix: conflicting borrow")

	// ErrViewReleased is raised when a View or ViewMut is used after
	// Release, or released twice.
	ErrViewReleased = errors.New("matrix: view used after release")
)

// matrixErrorf tags a sentinel with the violating method before panicking.
// Keep the format stable; tests unwrap it with errors.Is.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("matrix: %s: %w", method, err)
}

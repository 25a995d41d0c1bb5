package matrix

import (
	"hash/maphash"
	"slices"
)

// Equality and hashing live at package level because they constrain the
// element type beyond the container's own `any`; the shapes mirror
// slices.Equal / slices.EqualFunc from the standard library.

// Equal reports whether a and b have the same dimensions and element-wise
// equal buffers in the same row-major order. A 2×3 and a 3×2 matrix are
// never equal, even over identical buffers. Complexity: O(rows*cols).
func Equal[T comparable](a, b *Matrix[T]) bool {
	a.assertReadable("Equal")
	b.assertReadable("Equal")
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}

	return slices.Equal(a.data, b.data)
}

// EqualFunc is Equal with a caller-supplied element predicate, for element
// types that are not comparable or need tolerant comparison.
// Complexity: O(rows*cols).
func EqualFunc[T, U any](a *Matrix[T], b *Matrix[U], eq func(T, U) bool) bool {
	a.assertReadable("EqualFunc")
	b.assertReadable("EqualFunc")
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}

	return slices.EqualFunc(a.data, b.data, eq)
}

// Hash returns a seed-keyed hash of m, consistent with Equal: matrices for
// which Equal returns true hash identically under the same seed. Dimensions
// participate in the hash, so equal buffers with different shapes collide
// only by chance. Complexity: O(rows*cols).
func Hash[T comparable](seed maphash.Seed, m *Matrix[T]) uint64 {
	m.assertReadable("Hash")
	var h maphash.Hash
	h.SetSeed(seed)
	maphash.WriteComparable(&h, m.rows)
	maphash.WriteComparable(&h, m.cols)
	for i := range m.data {
		maphash.WriteComparable(&h, m.data[i])
	}

	return h.Sum64()
}

// Package builder constructs matrices from nested row literals.
//
// It is a convenience collaborator over package matrix: FromRows computes
// the dimensions from the literal's shape, flattens it row-major, and hands
// the flat buffer to matrix.FromParts. Column count is taken from the first
// row; every other row must match it or construction fails with
// ErrRaggedRows.
//
// Use MustFromRows at literal-like call sites where a ragged input would be
// a programming error:
//
//	m := builder.MustFromRows([][]int{
//		{1, 0, 0},
//		{0, 2, 0},
//		{0, 0, 3},
//	})
package builder

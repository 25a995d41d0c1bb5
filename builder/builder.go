package builder

import (
	"fmt"

	"github.com/katalvlaran/flatmat/matrix"
)

// FromRows builds a Matrix from a rectangular literal of nested rows.
// Stage 1 (Validate): take cols from the first row, require every row match.
// Stage 2 (Prepare): flatten the rows into one row-major buffer.
// Stage 3 (Finalize): adopt the buffer via matrix.FromParts.
// An empty literal yields a valid 0×0 matrix. Returns ErrRaggedRows (with
// the offending row index in the message) if any row length differs.
// Complexity: O(rows*cols) time and memory.
func FromRows[T any](rows [][]T) (*matrix.Matrix[T], error) {
	r := len(rows)
	if r == 0 {
		return matrix.New[T](0, 0), nil
	}
	c := len(rows[0])
	// Validate rectangularity before allocating the buffer.
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("builder: FromRows: row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
	}
	// Flatten row-major; each row lands on a contiguous cols-sized span.
	flat := make([]T, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	// Length is r*c by construction, so FromParts cannot panic here.
	return matrix.FromParts(r, c, flat), nil
}

// MustFromRows is FromRows for literal-like call sites: a ragged input is a
// programming error and panics instead of returning an error.
// Complexity: O(rows*cols).
func MustFromRows[T any](rows [][]T) *matrix.Matrix[T] {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

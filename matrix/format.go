package matrix

import (
	"fmt"
	"iter"
	"strings"
)

// Rendering is a thin collaborator over the core: it consumes IterRows and
// per-element %v formatting only, no direct buffer access.

// sprintRows renders row sequences as nested bracketed, comma-separated
// rows with a trailing newline:
//
//	[[1, 0, 0],
//	 [0, 2, 0],
//	 [0, 0, 3]]
//
// An empty sequence renders as "[]\n". Complexity: O(rows*cols).
func sprintRows[T any](rows iter.Seq[[]T]) string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for row := range rows {
		if !first {
			b.WriteString(",\n ")
		}
		first = false
		b.WriteByte('[')
		for j, val := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", val)
		}
		b.WriteByte(']')
	}
	b.WriteString("]\n")

	return b.String()
}

// Sprint renders m in the nested-row format described on sprintRows.
// Complexity: O(rows*cols).
func Sprint[T any](m *Matrix[T]) string {
	return sprintRows(m.IterRows())
}

// String implements fmt.Stringer for easy debugging; identical to Sprint.
func (m *Matrix[T]) String() string {
	return sprintRows(m.IterRows())
}

package matrix

// New creates a rows×cols Matrix with every cell set to the zero value of T.
// Stage 1 (Validate): reject negative dimensions (zero is a valid, empty shape).
// Stage 2 (Prepare): allocate the flat backing slice, already zeroed by the runtime.
// Stage 3 (Finalize): return the owning Matrix.
// Panics with ErrBadShape on a negative dimension.
// Complexity: O(rows*cols) time and memory.
func New[T any](rows, cols int) *Matrix[T] {
	checkShape("New", rows, cols)

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// FromDefault creates a rows×cols Matrix with every cell set to def.
//
// Replication is a shallow Go assignment: if T is a pointer, slice, map or a
// struct containing one, all cells share the referenced state. Use FromFunc
// when each cell must own independent state.
// Panics with ErrBadShape on a negative dimension.
// Complexity: O(rows*cols) time and memory.
func FromDefault[T any](rows, cols int, def T) *Matrix[T] {
	checkShape("FromDefault", rows, cols)
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = def // shallow copy per cell
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// FromFunc creates a rows×cols Matrix where cell (r, c) holds fill(r, c).
// The callback runs once per cell in row-major order, so reference-like
// element types can be deep-copied cell by cell.
// Panics with ErrBadShape on a negative dimension.
// Complexity: O(rows*cols) time and memory plus one fill call per cell.
func FromFunc[T any](rows, cols int, fill func(row, col int) T) *Matrix[T] {
	checkShape("FromFunc", rows, cols)
	data := make([]T, rows*cols)
	for r := 0; r < rows; r++ {
		base := r * cols
		for c := 0; c < cols; c++ {
			data[base+c] = fill(r, c)
		}
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// FromParts adopts data as the backing buffer of a rows×cols Matrix.
// No copy is made: the caller hands over ownership and must not retain or
// mutate data afterwards.
//
// Contract precondition: len(data) == rows*cols. Violation panics with
// ErrSizeMismatch — it signals a caller bug, not a runtime condition.
// Panics with ErrBadShape on a negative dimension.
// Complexity: O(1).
func FromParts[T any](rows, cols int, data []T) *Matrix[T] {
	checkShape("FromParts", rows, cols)
	if len(data) != rows*cols {
		panic(matrixErrorf("FromParts", ErrSizeMismatch))
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// checkShape panics with ErrBadShape when either dimension is negative.
func checkShape(method string, rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(matrixErrorf(method, ErrBadShape))
	}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Clone returns a deep copy of the Matrix: same dimensions, fresh buffer,
// no borrows carried over. Element copies are shallow Go assignments (see
// FromDefault for the reference-type caveat).
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	m.assertReadable("Clone")
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// CloneBuffer returns an independent copy of the full backing buffer in
// row-major order. Mutating the result never affects the Matrix.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) CloneBuffer() []T {
	m.assertReadable("CloneBuffer")
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Data exposes the raw backing buffer as a read-only borrowed slice.
// The slice aliases the Matrix storage; treat it as immutable and do not
// retain it across mutations. Complexity: O(1).
func (m *Matrix[T]) Data() []T {
	m.assertReadable("Data")

	return m.data
}

// DataMut exposes the raw backing buffer for in-place bulk mutation.
// The slice aliases the Matrix storage. Complexity: O(1).
func (m *Matrix[T]) DataMut() []T {
	m.assertWritable("DataMut")

	return m.data
}

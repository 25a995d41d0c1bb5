package matrix_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/flatmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestView_MirrorsSource(t *testing.T) {
	m := diag3()
	v := m.View()
	defer v.Release()

	require.Equal(t, m.Rows(), v.Rows())
	require.Equal(t, m.Cols(), v.Cols())
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			got, ok := v.Get(r, c)
			require.True(t, ok)
			require.Equal(t, m.At(r, c), got)
			require.Equal(t, m.At(r, c), v.At(r, c))
			require.Equal(t, m.At(r, c), v.GetUnchecked(r, c))
		}
	}
	_, ok := v.Get(3, 0)
	require.False(t, ok)
}

func TestView_Iteration(t *testing.T) {
	m := diag3()
	v := m.View()
	defer v.Release()

	require.Equal(t, 6, sumSeq(v.Iter()))
	require.Equal(t, []int{1, 0, 0}, slices.Collect(v.IterRow(0)))
	require.Equal(t, []int{0, 2, 0}, slices.Collect(v.IterCol(1)))
	rowCount := 0
	for row := range v.IterRows() {
		require.Len(t, row, 3)
		rowCount++
	}
	require.Equal(t, 3, rowCount)
	var cols [][]int
	for col := range v.IterCols() {
		cols = append(cols, slices.Collect(col))
	}
	require.Equal(t, [][]int{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, cols)
	require.Equal(t, []int{1, 0, 0, 0, 2, 0, 0, 0, 3}, v.CloneBuffer())
}

func TestView_ManySharedReaders(t *testing.T) {
	m := diag3()
	v1 := m.View()
	v2 := m.View()
	// Shared borrows coexist with each other and with direct reads.
	require.Equal(t, v1.At(1, 1), v2.At(1, 1))
	require.Equal(t, 2, m.At(1, 1))
	v1.Release()
	v2.Release()
}

func TestView_BlocksWriters(t *testing.T) {
	m := diag3()
	v := m.View()
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.Set(0, 0, 9) })
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.GetMut(0, 0) })
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.IterMut() })
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.DataMut() })
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.ViewMut() })
	v.Release()
	// Borrow gone: mutation is legal again.
	m.Set(0, 0, 9)
	require.Equal(t, 9, m.At(0, 0))
}

func TestView_UseAfterReleasePanics(t *testing.T) {
	m := diag3()
	v := m.View()
	v.Release()
	requirePanicsIs(t, matrix.ErrViewReleased, func() { v.Get(0, 0) })
	requirePanicsIs(t, matrix.ErrViewReleased, func() { v.Iter() })
	requirePanicsIs(t, matrix.ErrViewReleased, func() { v.Release() })
}

func TestViewMut_ExclusiveAccess(t *testing.T) {
	m := diag3()
	w := m.ViewMut()
	// While the exclusive borrow lives, even reads on the source fail fast.
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.Get(0, 0) })
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.At(0, 0) })
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.Iter() })
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.View() })
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.ViewMut() })
	requirePanicsIs(t, matrix.ErrBorrowConflict, func() { m.Clone() })
	w.Release()
	require.Equal(t, 1, m.At(0, 0))
}

func TestViewMut_MutationVisibleAfterRelease(t *testing.T) {
	m := diag3()
	w := m.ViewMut()
	w.Set(0, 1, 7)
	p, ok := w.GetMut(2, 2)
	require.True(t, ok)
	*p = 30
	for q := range w.IterRowMut(1) {
		*q += 100
	}
	w.SetUnchecked(2, 0, 5)
	w.Release()

	require.Equal(t, 7, m.At(0, 1))
	require.Equal(t, 30, m.At(2, 2))
	require.Equal(t, []int{100, 102, 100}, slices.Collect(m.IterRow(1)))
	require.Equal(t, 5, m.At(2, 0))
}

func TestViewMut_ReadSurface(t *testing.T) {
	m := diag3()
	w := m.ViewMut()
	defer w.Release()

	require.Equal(t, 3, w.Rows())
	require.Equal(t, 3, w.Cols())
	require.Equal(t, 6, sumSeq(w.Iter()))
	require.Equal(t, []int{0, 2, 0}, slices.Collect(w.IterRow(1)))
	require.Equal(t, []int{0, 2, 0}, slices.Collect(w.IterCol(1)))
	require.Equal(t, []int{1, 0, 0, 0, 2, 0, 0, 0, 3}, w.CloneBuffer())
	require.Equal(t, 2, w.GetUnchecked(1, 1))
	v, ok := w.Get(1, 1)
	require.True(t, ok)
	require.Equal(t, 2, v)
	_, ok = w.Get(9, 9)
	require.False(t, ok)
}

func TestViewMut_IterColsMut(t *testing.T) {
	m := matrix.New[int](3, 4)
	w := m.ViewMut()
	c := 0
	for col := range w.IterColsMut() {
		n := 0
		for p := range col {
			*p = c * 10
			n++
		}
		require.Equal(t, 3, n) // each column yields exactly Rows() cells
		c++
	}
	require.Equal(t, 4, c)
	w.Release()
	require.Equal(t, []int{0, 10, 20, 30, 0, 10, 20, 30, 0, 10, 20, 30}, m.CloneBuffer())
}

func TestViewMut_IterRowsMut(t *testing.T) {
	m := matrix.New[int](2, 2)
	w := m.ViewMut()
	i := 0
	for row := range w.IterRowsMut() {
		for c := range row {
			row[c] = i
			i++
		}
	}
	w.Release()
	require.Equal(t, []int{0, 1, 2, 3}, m.CloneBuffer())
}

func TestViewMut_UseAfterReleasePanics(t *testing.T) {
	m := diag3()
	w := m.ViewMut()
	w.Release()
	requirePanicsIs(t, matrix.ErrViewReleased, func() { w.Set(0, 0, 1) })
	requirePanicsIs(t, matrix.ErrViewReleased, func() { w.IterMut() })
	requirePanicsIs(t, matrix.ErrViewReleased, func() { w.Release() })
}

func TestViewMut_IterBoundsPanics(t *testing.T) {
	m := diag3()
	w := m.ViewMut()
	defer w.Release()
	requirePanicsIs(t, matrix.ErrOutOfRange, func() { w.IterRow(3) })
	requirePanicsIs(t, matrix.ErrOutOfRange, func() { w.IterRowMut(-1) })
	requirePanicsIs(t, matrix.ErrOutOfRange, func() { w.IterCol(3) })
	requirePanicsIs(t, matrix.ErrOutOfRange, func() { w.IterColMut(-1) })
}

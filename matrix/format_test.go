package matrix_test

import (
	"testing"

	"github.com/katalvlaran/flatmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestString_Diagonal3x3(t *testing.T) {
	m := diag3()
	want := "[[1, 0, 0],\n [0, 2, 0],\n [0, 0, 3]]\n"
	require.Equal(t, want, m.String())
	require.Equal(t, want, matrix.Sprint(m))
}

func TestString_SingleCellAndRow(t *testing.T) {
	require.Equal(t, "[[7]]\n", matrix.FromParts(1, 1, []int{7}).String())
	require.Equal(t, "[[1, 2, 3]]\n", matrix.FromParts(1, 3, []int{1, 2, 3}).String())
	require.Equal(t, "[[1],\n [2]]\n", matrix.FromParts(2, 1, []int{1, 2}).String())
}

func TestString_Empty(t *testing.T) {
	require.Equal(t, "[]\n", matrix.New[int](0, 0).String())
	require.Equal(t, "[]\n", matrix.New[int](0, 3).String())
}

func TestString_NonNumericElements(t *testing.T) {
	m := matrix.FromParts(2, 2, []string{"a", "b", "c", "d"})
	require.Equal(t, "[[a, b],\n [c, d]]\n", m.String())
}

func TestString_Views(t *testing.T) {
	m := diag3()
	want := "[[1, 0, 0],\n [0, 2, 0],\n [0, 0, 3]]\n"
	v := m.View()
	require.Equal(t, want, v.String())
	v.Release()
	w := m.ViewMut()
	require.Equal(t, want, w.String())
	w.Release()
}

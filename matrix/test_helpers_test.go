package matrix_test

import (
	"testing"

	"github.com/katalvlaran/flatmat/matrix"
	"github.com/stretchr/testify/require"
)

// requirePanicsIs runs fn and requires that it panics with an error value
// wrapping target (all contract-violation panics in the package do).
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.Truef(t, ok, "panic value should be an error, got %T", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// diag3 builds the canonical 3×3 fixture with 1, 2, 3 on the diagonal.
func diag3() *matrix.Matrix[int] {
	m := matrix.New[int](3, 3)
	m.Set(0, 0, 1)
	m.Set(1, 1, 2)
	m.Set(2, 2, 3)

	return m
}

// sumSeq drains a value sequence into its arithmetic sum.
func sumSeq(seq func(yield func(int) bool)) int {
	total := 0
	for v := range seq {
		total += v
	}

	return total
}

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecxify/matrix"
)

// TestAdd reproduces the 2×2 sum scenario.
func TestAdd(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{10, 8}, {11, 3}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireRows(t, [][]int{{11, 10}, {14, 7}}, sum)
	requireRows(t, [][]int{{1, 2}, {3, 4}}, a) // operands untouched

	require.NoError(t, a.AddInPlace(b))
	require.True(t, a.Equal(sum))
}

// TestSub checks both forms and that A - A is zero.
func TestSub(t *testing.T) {
	a := mustRows(t, [][]float64{{1.5, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{0.5, 2}, {5, 1}})

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 0}, {-2, 3}}, diff)

	self, err := matrix.Sub(a, a)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 0}, {0, 0}}, self)

	require.NoError(t, a.SubInPlace(b))
	require.True(t, a.Equal(diff))
}

// TestAddSub_ShapeMismatch ensures errors leave the receiver unchanged.
func TestAddSub_ShapeMismatch(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}})
	b := mustRows(t, [][]int{{1}, {2}})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.ErrorIs(t, a.AddInPlace(b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.SubInPlace(nil), matrix.ErrNilMatrix)
	requireRows(t, [][]int{{1, 2}}, a)
}

// TestScale reproduces the "*= 2" scenario.
func TestScale(t *testing.T) {
	m := mustRows(t, [][]int{{1, 23, 1}, {123, 23, 80}, {23, 74, 83}})
	want := [][]int{{2, 46, 2}, {123 * 2, 23 * 2, 160}, {23 * 2, 74 * 2, 83 * 2}}

	scaled, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	requireRows(t, want, scaled)

	m.ScaleInPlace(2)
	requireRows(t, want, m)

	_, err = matrix.Scale[int](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

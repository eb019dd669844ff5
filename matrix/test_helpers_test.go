// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.
//   • Keep all data integral or exactly representable so equality is exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecxify/internal/randgen"
	"github.com/katalvlaran/vecxify/matrix"
)

// seven7A and seven7B are the 7×7 integer operands of the reference product.
var (
	seven7A = [][]int{
		{47, 23, 11, 8, 38, 17, 29}, {39, 43, 31, 40, 5, 20, 15}, {27, 18, 48, 36, 33, 2, 1},
		{6, 37, 21, 12, 42, 30, 25}, {28, 26, 9, 13, 22, 46, 7}, {4, 3, 14, 10, 34, 16, 45},
		{32, 44, 24, 35, 19, 41, 49},
	}
	seven7B = [][]int{
		{15, 39, 42, 47, 9, 33, 37}, {31, 24, 13, 19, 2, 35, 46}, {43, 4, 6, 14, 28, 3, 8},
		{12, 32, 22, 41, 45, 34, 40}, {10, 11, 23, 25, 27, 30, 17}, {20, 38, 21, 16, 5, 1, 26},
		{29, 44, 48, 7, 18, 36, 49},
	}
	seven7AB = [][]int{
		{3548, 5025, 5138, 4553, 2770, 4862, 5714}, {4616, 5432, 4518, 5274, 3610, 4955, 6609},
		{3858, 3312, 3297, 4623, 4162, 3917, 4313}, {4029, 4292, 3919, 3476, 2990, 4154, 5291},
		{3112, 4466, 3662, 3804, 2091, 3261, 4737}, {2840, 3566, 3789, 2272, 2692, 3275, 3997},
		{5727, 7443, 6480, 5585, 4223, 6233, 8590},
	}
)

// mustRows builds a matrix from literal rows whose shape is taken from the literal.
func mustRows[T matrix.Element](t *testing.T, rows [][]T) *matrix.Mat[T] {
	t.Helper()
	m, err := matrix.NewFromRows(len(rows), len(rows[0]), rows)
	require.NoError(t, err)

	return m
}

// requireRows compares m with want row by row and prints a structural diff on mismatch.
func requireRows[T matrix.Element](t *testing.T, want [][]T, m *matrix.Mat[T]) {
	t.Helper()
	if diff := cmp.Diff(want, m.Rows2D()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// randomMat returns an r×c matrix with integer-valued entries in [-9, 9].
func randomMat[T matrix.Element](t *testing.T, r *rand.Rand, rows, cols int) *matrix.Mat[T] {
	t.Helper()
	m, err := matrix.NewFromData(rows, cols, randgen.Slice[T](r, rows*cols, -9, 9))
	require.NoError(t, err)

	return m
}

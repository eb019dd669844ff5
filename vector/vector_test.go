package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecxify/matrix"
	"github.com/katalvlaran/vecxify/vector"
)

func TestConstruction(t *testing.T) {
	v, err := vector.New[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.Equal(t, []int{0, 0, 0}, v.Values())

	_, err = vector.New[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = vector.FromSlice[float64](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	src := []int{1, 2, 3}
	w, err := vector.FromSlice(src)
	require.NoError(t, err)
	src[0] = 100
	require.Equal(t, 1, w.Get(0), "FromSlice must copy")
}

func TestFromMatrix(t *testing.T) {
	row := matrix.MustFromRows(1, 3, [][]int{{4, 5, 6}})
	v, err := vector.FromMatrix(row)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, v.Values())
	require.True(t, v.Matrix().Equal(row))

	_, err = vector.FromMatrix(matrix.MustFromRows(2, 1, [][]int{{1}, {2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = vector.FromMatrix[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAccessors(t *testing.T) {
	v := vector.MustFromSlice(1.0, 2.0)
	require.NoError(t, v.Set(1, 5))
	x, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 5.0, x)

	_, err = v.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), matrix.ErrOutOfRange)

	v.Put(0, 9)
	require.Equal(t, 9.0, v.Get(0))
}

// TestAddSub reproduces the vector scenario: v+v2 == v3 and v-v3 == v4.
func TestAddSub(t *testing.T) {
	v := vector.MustFromSlice(1, 2, 4)
	v2 := vector.MustFromSlice(2, 2, 4)
	v3 := vector.MustFromSlice(3, 4, 8)
	v4 := vector.MustFromSlice(-2, -2, -4)

	sum, err := v.Add(v2)
	require.NoError(t, err)
	require.True(t, sum.Equal(v3), "got %s", sum)

	diff, err := v.Sub(v3)
	require.NoError(t, err)
	require.True(t, diff.Equal(v4), "got %s", diff)

	_, err = v.Add(vector.MustFromSlice(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = v.Sub(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDot(t *testing.T) {
	a := vector.MustFromSlice(1, 2, 3)
	b := vector.MustFromSlice(4, -5, 6)

	d, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 12, d)

	d2, err := b.Dot(a)
	require.NoError(t, err)
	require.Equal(t, d, d2)

	_, err = a.Dot(vector.MustFromSlice(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLength(t *testing.T) {
	require.Equal(t, 5.0, vector.MustFromSlice(3, 4).Length())
	require.InDelta(t, 3.0, vector.MustFromSlice(1.0, 2.0, 2.0).Length(), 1e-12)
	require.Equal(t, 0.0, vector.MustFromSlice(0, 0, 0).Length())

	v := vector.MustFromSlice(2.0, -3.0, 6.0)
	d, err := v.Dot(v)
	require.NoError(t, err)
	require.InDelta(t, d, v.Length()*v.Length(), 1e-9)
}

func TestScaleFillClone(t *testing.T) {
	v := vector.MustFromSlice(1, -2, 3)
	s := v.Scale(3)
	require.Equal(t, []int{3, -6, 9}, s.Values())
	require.Equal(t, []int{1, -2, 3}, v.Values())

	c := v.Clone()
	c.Fill(7)
	require.Equal(t, []int{7, 7, 7}, c.Values())
	require.Equal(t, []int{1, -2, 3}, v.Values())
}

func TestString(t *testing.T) {
	require.Equal(t, "[1, 2, 4]", vector.MustFromSlice(1, 2, 4).String())
}

func TestNilReceiver_ReturnsErrNilMatrix(t *testing.T) {
	var nilVec *vector.Vec[int]
	v := vector.MustFromSlice(1, 2, 3)

	_, err := nilVec.Dot(v)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = nilVec.Add(v)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = nilVec.Sub(v)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = nilVec.At(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, nilVec.Set(0, 1), matrix.ErrNilMatrix)

	require.False(t, nilVec.Equal(v))
	require.True(t, nilVec.Equal(nil))
}

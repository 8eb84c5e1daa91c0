// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmorph/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[uint8](0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[float64](5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsColsType verifies dimensions and the run-time element type.
func TestRowsColsType(t *testing.T) {
	m, err := matrix.NewDense[uint16](3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, matrix.TypeUint16, m.ElementType())
	require.Len(t, m.Data(), 12)

	b, err := matrix.NewDense[matrix.Bit](1, 1)
	require.NoError(t, err)
	require.True(t, b.ElementType().IsBinary())
	require.Equal(t, "bit", b.ElementType().String())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense[int16](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() and the row-major layout.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense[float32](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(7.5), val)
	require.Equal(t, float32(7.5), m.Data()[1*3+2])
}

// TestNewDenseFrom covers the happy path and ragged input.
func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]int32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3, 4, 5, 6}, m.Data())

	_, err = matrix.NewDenseFrom([][]int32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom([][]int32{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestLikeCloneCopyFrom checks the three bulk constructors/copies.
func TestLikeCloneCopyFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]uint8{{1, 2}, {3, 4}})
	require.NoError(t, err)

	like := m.Like().(*matrix.Dense[uint8])
	require.Equal(t, []uint8{0, 0, 0, 0}, like.Data())

	clone := m.Clone().(*matrix.Dense[uint8])
	require.True(t, clone.Equal(m))
	clone.Data()[0] = 9
	require.Equal(t, uint8(1), m.Data()[0], "clone must not share storage")

	require.NoError(t, like.CopyFrom(m))
	require.True(t, like.Equal(m))

	other, _ := matrix.NewDense[uint8](3, 2)
	require.ErrorIs(t, like.CopyFrom(other), matrix.ErrDimensionMismatch)

	bits, _ := matrix.NewDense[matrix.Bit](2, 2)
	require.ErrorIs(t, like.CopyFrom(bits), matrix.ErrTypeMismatch)
	require.ErrorIs(t, like.CopyFrom(nil), matrix.ErrNilMatrix)
}

// TestFillString checks Fill and the debugging representation.
func TestFillString(t *testing.T) {
	m, _ := matrix.NewDense[matrix.Bit](2, 2)
	m.Fill(1)
	require.Equal(t, "[1, 1]\n[1, 1]\n", m.String())
}

package rectmorph_test

import (
	"testing"

	"github.com/katalvlaran/lvmorph/matrix"
	"github.com/katalvlaran/lvmorph/morphology"
	"github.com/katalvlaran/lvmorph/pattern"
	"github.com/katalvlaran/lvmorph/rectmorph"
	"github.com/stretchr/testify/require"
)

// TestOneShot compares the package helpers with an explicit engine.
func TestOneShot(t *testing.T) {
	src := randomDense[int32](t, 14, 15, 13, 10000)
	for _, side := range []int{0, 1, 2, 3, 6, 9} {
		p, err := pattern.Rectangle(-side/2, -side/2, max(side, 1), max(side, 1))
		require.NoError(t, err)

		m := src.Clone().(*matrix.Dense[int32])
		require.NoError(t, rectmorph.DilateSquare(m, src.Like(), side))
		require.True(t, m.Equal(reference(t, src, morphology.Dilation, p, matrix.Cyclic)), "side=%d", side)

		m = src.Clone().(*matrix.Dense[int32])
		require.NoError(t, rectmorph.ErodeSquare(m, src.Like(), side, rectmorph.WithMultithreading(true)))
		require.True(t, m.Equal(reference(t, src, morphology.Erosion, p, matrix.Cyclic)), "side=%d", side)
	}
}

// TestOneShot_Errors surfaces construction and binding failures.
func TestOneShot_Errors(t *testing.T) {
	m := zeros[uint8](t, 4, 4)
	require.ErrorIs(t, rectmorph.DilateSquare(m, nil, 3), rectmorph.ErrNilScratch)
	require.ErrorIs(t, rectmorph.ErodeSquare(m, zeros[uint8](t, 4, 3), 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, rectmorph.ErodeSquare(m, zeros[uint8](t, 4, 4), -1), rectmorph.ErrNegativeSize)
}

package morphology_test

import (
	"testing"

	"github.com/katalvlaran/lvmorph/matrix"
	"github.com/katalvlaran/lvmorph/morphology"
	"github.com/katalvlaran/lvmorph/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Conventions
//----------------------------------------------------------------------------//

// TestDilate_SinglePoint checks dst(x) = max src(x−p): a lone sample is
// copied to every offset of the pattern.
func TestDilate_SinglePoint(t *testing.T) {
	src := mustDense(t, [][]uint8{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 7, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	dst := like(src)
	svc := morphology.Default(false)

	require.NoError(t, svc.Dilate(dst, src, pattern.Pair(1, -1), matrix.ZeroConstant, false))
	want := mustDense(t, [][]uint8{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 7, 0},
		{0, 0, 7, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	require.True(t, dst.Equal(want), "got\n%v", dst)
}

// TestErode_ReflectedPattern checks dst(x) = min src(x−p).
func TestErode_ReflectedPattern(t *testing.T) {
	src := mustDense(t, [][]int32{{0, 5, 5, 5, 0}})
	dst := like(src)

	require.NoError(t, morphology.Default(false).Erode(dst, src, pattern.Pair(1, 0), matrix.ZeroConstant, false))
	require.Equal(t, []int32{0, 0, 5, 5, 0}, dst.Data())
}

// TestDilate_Binary checks that Bit matrices dilate as OR.
func TestDilate_Binary(t *testing.T) {
	src := mustDense(t, [][]matrix.Bit{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	dst := like(src)
	require.NoError(t, morphology.Default(false).Dilate(dst, src, pattern.Cross(), matrix.ZeroConstant, false))
	require.Equal(t, []matrix.Bit{0, 1, 0, 1, 1, 1, 0, 1, 0}, dst.Data())
}

// TestIncludeOrigin verifies the origin is added on request only.
func TestIncludeOrigin(t *testing.T) {
	src := mustDense(t, [][]uint8{{9, 0, 0, 0}})
	dst := like(src)
	svc := morphology.Default(false)

	require.NoError(t, svc.Dilate(dst, src, pattern.Single(2, 0), matrix.ZeroConstant, false))
	assert.Equal(t, []uint8{0, 0, 9, 0}, dst.Data())

	require.NoError(t, svc.Dilate(dst, src, pattern.Single(2, 0), matrix.ZeroConstant, true))
	assert.Equal(t, []uint8{9, 0, 9, 0}, dst.Data())
}

//----------------------------------------------------------------------------//
// Continuation
//----------------------------------------------------------------------------//

// TestContinuationModes shifts [1 2 3 4] one step right under every mode.
func TestContinuationModes(t *testing.T) {
	cases := []struct {
		name string
		mode matrix.Continuation
		want []uint16
	}{
		{"None", matrix.ContinuationNone, []uint16{4, 1, 2, 3}},
		{"Cyclic", matrix.Cyclic, []uint16{4, 1, 2, 3}},
		{"Mirror", matrix.Mirror, []uint16{1, 1, 2, 3}},
		{"Zero", matrix.ZeroConstant, []uint16{0, 1, 2, 3}},
		{"PseudoCyclic", matrix.PseudoCyclic, []uint16{4, 1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := mustDense(t, [][]uint16{{1, 2, 3, 4}})
			dst := like(src)
			require.NoError(t, morphology.Default(false).Dilate(dst, src, pattern.Single(1, 0), tc.mode, false))
			require.Equal(t, tc.want, dst.Data())
		})
	}
}

// TestPseudoCyclicCrossesRows distinguishes pseudo-cyclic from cyclic on
// a 2×2 matrix: the sample leaving a row enters the next one.
func TestPseudoCyclicCrossesRows(t *testing.T) {
	src := mustDense(t, [][]uint8{{1, 2}, {3, 4}})
	dst := like(src)
	svc := morphology.Default(false)

	require.NoError(t, svc.Dilate(dst, src, pattern.Single(1, 0), matrix.PseudoCyclic, false))
	assert.Equal(t, []uint8{4, 1, 2, 3}, dst.Data())

	require.NoError(t, svc.Dilate(dst, src, pattern.Single(1, 0), matrix.Cyclic, false))
	assert.Equal(t, []uint8{2, 1, 4, 3}, dst.Data())
}

// TestPseudoCyclic_MatchesFlatSequence checks every sample of a dilation
// against Continuation.Locate, with offsets larger than the matrix.
func TestPseudoCyclic_MatchesFlatSequence(t *testing.T) {
	const rows, cols = 5, 7
	src := randomDense[uint8](t, 17, rows, cols, 256)
	p, err := pattern.New(pattern.Point{X: 3, Y: -2}, pattern.Point{X: -9, Y: 1}, pattern.Point{X: 0, Y: 4}, pattern.Point{X: 15, Y: -6})
	require.NoError(t, err)
	dst := like(src)
	require.NoError(t, morphology.Default(false).Dilate(dst, src, p, matrix.PseudoCyclic, false))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var want uint8
			for _, q := range p.Points() {
				idx, ok := matrix.PseudoCyclic.Locate(x-q.X, y-q.Y, cols, rows)
				require.True(t, ok)
				want = max(want, src.Data()[idx])
			}
			require.Equal(t, want, dst.Data()[y*cols+x], "sample (%d,%d)", x, y)
		}
	}
}

//----------------------------------------------------------------------------//
// Threading and errors
//----------------------------------------------------------------------------//

// TestDefault_Singletons checks the two shared instances.
func TestDefault_Singletons(t *testing.T) {
	assert.Same(t, morphology.Default(true), morphology.Default(true))
	assert.Same(t, morphology.Default(false), morphology.Default(false))
	assert.True(t, morphology.Default(true).Multithreaded())
	assert.False(t, morphology.Default(false).Multithreaded())
}

// TestMultithreadedMatchesSingle compares both singletons on a matrix tall
// enough to be split into bands.
func TestMultithreadedMatchesSingle(t *testing.T) {
	src := randomDense[uint16](t, 7, 96, 37, 1000)
	p, err := pattern.Rectangle(-2, -1, 4, 3)
	require.NoError(t, err)

	modes := []matrix.Continuation{
		matrix.ContinuationNone, matrix.Cyclic, matrix.PseudoCyclic, matrix.Mirror, matrix.ZeroConstant,
	}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			a, b := like(src), like(src)
			require.NoError(t, morphology.Default(false).Erode(a, src, p, mode, false))
			require.NoError(t, morphology.Default(true).Erode(b, src, p, mode, false))
			require.True(t, a.Equal(b))
		})
	}
}

// TestServiceErrors covers every precondition.
func TestServiceErrors(t *testing.T) {
	src, _ := matrix.NewDense[uint8](3, 3)
	bits, _ := matrix.NewDense[matrix.Bit](3, 3)
	wide, _ := matrix.NewDense[uint8](3, 4)
	svc := morphology.Default(false)

	err := svc.Dilate(src, src, pattern.Cross(), matrix.Cyclic, false)
	assert.ErrorIs(t, err, morphology.ErrAliased)

	err = svc.Dilate(like(src), src, pattern.Pattern{}, matrix.Cyclic, false)
	assert.ErrorIs(t, err, pattern.ErrEmpty)

	err = svc.Erode(bits, src, pattern.Cross(), matrix.Cyclic, false)
	assert.ErrorIs(t, err, matrix.ErrTypeMismatch)

	err = svc.Erode(wide, src, pattern.Cross(), matrix.Cyclic, false)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = svc.Erode(nil, src, pattern.Cross(), matrix.Cyclic, false)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPatternFilter checks the Filter adapter routes to the right operation.
func TestPatternFilter(t *testing.T) {
	src := mustDense(t, [][]float64{{1, 5, 2}})
	dst := like(src)
	f := morphology.PatternFilter{
		Service:      morphology.Default(false),
		Op:           morphology.Erosion,
		Pattern:      pattern.Pair(-1, 0),
		Continuation: matrix.Mirror,
	}
	require.NoError(t, f.Apply(dst, src))
	// min(src(x), src(x+1)) with the right edge mirrored.
	require.Equal(t, []float64{1, 2, 2}, dst.Data())
}

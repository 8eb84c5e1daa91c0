package rectmorph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmorph/matrix"
	"github.com/katalvlaran/lvmorph/morphology"
	"github.com/katalvlaran/lvmorph/pattern"
	"github.com/katalvlaran/lvmorph/rectmorph"
	"github.com/stretchr/testify/require"
)

// Test helper functions shared across rectmorph tests.

// mustDense builds a Dense from rows or fails the test.
func mustDense[T matrix.Element](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// zeros allocates a rows×cols zero matrix or fails the test.
func zeros[T matrix.Element](t *testing.T, rows, cols int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](rows, cols)
	require.NoError(t, err)
	return m
}

// randomDense fills a rows×cols matrix with values in [0, span) from a
// fixed-seed source.
func randomDense[T matrix.Element](t *testing.T, seed int64, rows, cols, span int) *matrix.Dense[T] {
	t.Helper()
	m := zeros[T](t, rows, cols)
	rng := rand.New(rand.NewSource(seed))
	for i := range m.Data() {
		m.Data()[i] = T(rng.Intn(span))
	}
	return m
}

// run binds a clone of src to a fresh engine, applies fn and returns the
// target together with the engine.
func run[T matrix.Element](t *testing.T, src *matrix.Dense[T], fn func(e *rectmorph.Engine) error, opts ...rectmorph.Option) (*matrix.Dense[T], *rectmorph.Engine) {
	t.Helper()
	target := src.Clone().(*matrix.Dense[T])
	e, err := rectmorph.New(src.Like(), opts...)
	require.NoError(t, err)
	require.NoError(t, e.BindTarget(target))
	require.NoError(t, fn(e))
	return target, e
}

// reference applies op by the explicit pattern p through the generic
// service. Erosion uses the reflected pattern, so both operations take the
// structuring element in the engine's convention.
func reference[T matrix.Element](t *testing.T, src *matrix.Dense[T], op morphology.Operation, p pattern.Pattern, mode matrix.Continuation) *matrix.Dense[T] {
	t.Helper()
	dst := src.Like().(*matrix.Dense[T])
	svc := morphology.Default(false)
	var err error
	if op == morphology.Erosion {
		err = svc.Erode(dst, src, p.Symmetric(), mode, false)
	} else {
		err = svc.Dilate(dst, src, p, mode, false)
	}
	require.NoError(t, err)
	return dst
}

// at reads (x, y) or fails the test.
func at[T matrix.Element](t *testing.T, m *matrix.Dense[T], x, y int) T {
	t.Helper()
	v, err := m.At(y, x)
	require.NoError(t, err)
	return v
}

// requireSameSamples compares two matrices sample by sample. NaN matches
// NaN, and a zero must carry the same sign on both sides.
func requireSameSamples[T matrix.Element](t *testing.T, want, got *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i, w := range want.Data() {
		g := got.Data()[i]
		if w != w || g != g {
			require.True(t, w != w && g != g, "NaN at only one side of sample %d", i)
			continue
		}
		require.Equal(t, w, g, "sample %d", i)
		require.Equal(t, math.Signbit(float64(w)), math.Signbit(float64(g)), "sign of sample %d", i)
	}
}

// withSpecials overwrites samples of m with NaN, -0 and +0.
func withSpecials[T float32 | float64](m *matrix.Dense[T]) *matrix.Dense[T] {
	d := m.Data()
	negZero := T(math.Copysign(0, -1))
	for i := 0; i < len(d); i += 5 {
		d[i] = negZero
	}
	for i := 2; i < len(d); i += 9 {
		d[i] = 0
	}
	d[len(d)/2] = T(math.NaN())
	d[len(d)-4] = T(math.NaN())
	return m
}

package morphology_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmorph/matrix"
	"github.com/stretchr/testify/require"
)

// Test helper functions shared across morphology tests.

// mustDense builds a Dense from rows or fails the test.
func mustDense[T matrix.Element](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// randomDense fills a rows×cols matrix with values in [0, span) from a
// fixed-seed source, so failures are reproducible.
func randomDense[T matrix.Element](t *testing.T, seed int64, rows, cols, span int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](rows, cols)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	for i := range data {
		data[i] = T(rng.Intn(span))
	}
	return m
}

// like returns an empty matrix shaped like m.
func like[T matrix.Element](m *matrix.Dense[T]) *matrix.Dense[T] {
	return m.Like().(*matrix.Dense[T])
}

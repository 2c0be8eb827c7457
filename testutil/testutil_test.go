package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.Less(t, v[0][0], 1.0)
	assert.GreaterOrEqual(t, v[1][0], 0.0)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	first := rng.UniformVectors(2, 4)
	rng.Reset()
	again := rng.UniformVectors(2, 4)

	assert.Equal(t, first, again)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestIntegerVectors(t *testing.T) {
	rng := NewRNG(1)

	for _, vec := range rng.IntegerVectors(20, 3, 4) {
		require.Len(t, vec, 3)
		for _, x := range vec {
			assert.Contains(t, []float64{0, 1, 2, 3}, x)
		}
	}
}

func TestClusteredVectors(t *testing.T) {
	rng := NewRNG(4711)

	v, assignment := rng.ClusteredVectors(9, 4, 3, 0.01)

	require.Len(t, v, 9)
	require.Len(t, assignment, 9)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1, 2}, assignment)
	assert.Equal(t, "class-2", ClassLabels(assignment)[2])
}

func TestExactTopK(t *testing.T) {
	data := [][]float64{{5}, {3}, {8}, {1}, {9}, {3}}

	assert.Equal(t, []int{3, 1}, ExactTopK([]float64{0}, data, 2))
	assert.Equal(t, []int{3, 1, 5}, ExactTopK([]float64{0}, data, 3))
	assert.Len(t, ExactTopK([]float64{0}, data, 10), 6)
	assert.Empty(t, ExactTopK([]float64{0}, nil, 3))

	withNaN := [][]float64{{math.NaN()}, {5}, {1}}
	assert.Equal(t, []int{2, 1, 0}, ExactTopK([]float64{0}, withNaN, 3))
}

func TestEuclideanDistance(t *testing.T) {
	assert.Equal(t, 5.0, EuclideanDistance([]float64{0, 0}, []float64{3, 4}))
}

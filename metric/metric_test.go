package metric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	assert.Equal(t, 11.0, Dot([]float64{1, 2}, []float64{3, 4}))
}

func TestEuclidean(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{3, 4}
	assert.InDelta(t, 5, Euclidean(a, b), 1e-12)
	assert.InDelta(t, 25, SquaredEuclidean(a, b), 1e-12)
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5, Magnitude([]float64{3, 4}), 1e-12)
}

func TestGaussian(t *testing.T) {
	k := Gaussian(1)
	assert.InDelta(t, 1, k([]float64{1, 1}, []float64{1, 1}), 1e-12)
	assert.InDelta(t, math.Exp(-0.5), k([]float64{0}, []float64{1}), 1e-12)

	// Symmetric.
	a := []float64{0.3, -1}
	b := []float64{2, 0.7}
	assert.Equal(t, k(a, b), k(b, a))
}

func TestCosineSimilarity(t *testing.T) {
	got, err := CosineSimilarity([]float64{1, 0}, []float64{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 1e-12)

	got, err = CosineSimilarity([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-12)

	_, err = CosineSimilarity([]float64{1}, []float64{1, 2})
	require.Error(t, err)

	got, err = CosineSimilarity([]float64{0, 0}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestVector(t *testing.T) {
	out := make([]float64, 3)
	Vector([]float64{1, 2, 3}, out)
	assert.Equal(t, []float64{1, 2, 3}, out)
}

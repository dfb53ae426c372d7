package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/canautumn/tapkee/internal/core"
)

func copyVector(item []float64, out []float64) { copy(out, item) }

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func TestCovarianceIdenticalVectors(t *testing.T) {
	data := [][]float64{{1, 2}, {1, 2}, {1, 2}}
	kc := core.NewContext(nil, nil, nil)

	cov, mean, err := Covariance(kc, data, copyVector, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, mean)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, 0, cov.At(i, j), 1e-10, "cov[%d,%d]", i, j)
		}
	}
}

func TestCovarianceMatchesTwoPass(t *testing.T) {
	data := [][]float64{{1, 0}, {2, 1}, {3, 1}, {0, -2}}
	kc := core.NewContext(nil, nil, nil)

	cov, mean, err := Covariance(kc, data, copyVector, 2)
	require.NoError(t, err)

	// Reference: explicit centering then outer-product sum.
	ref := mat.NewSymDense(2, nil)
	for _, x := range data {
		c := []float64{x[0] - mean[0], x[1] - mean[1]}
		for i := 0; i < 2; i++ {
			for j := i; j < 2; j++ {
				ref.SetSym(i, j, ref.At(i, j)+c[i]*c[j])
			}
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, ref.At(i, j), cov.At(i, j), 1e-10)
		}
	}
}

func TestCovarianceCancelled(t *testing.T) {
	kc := core.NewContext(nil, nil, func() bool { return true })
	_, _, err := Covariance(kc, [][]float64{{1}, {2}}, copyVector, 1)
	require.ErrorIs(t, err, core.ErrCancelled)
}

func TestCenteredKernelRowColumnSumsVanish(t *testing.T) {
	data := [][]float64{{1, 0}, {0, 1}, {2, 3}, {-1, 1}, {0.5, -2}}
	kc := core.NewContext(nil, nil, nil)

	k, err := CenteredKernel(kc, data, dot, 4)
	require.NoError(t, err)

	n := k.SymmetricDim()
	require.Equal(t, len(data), n)
	for i := 0; i < n; i++ {
		row := 0.0
		for j := 0; j < n; j++ {
			row += k.At(i, j)
			assert.Equal(t, k.At(i, j), k.At(j, i))
		}
		assert.InDelta(t, 0, row, 1e-10, "row %d", i)
	}
}

func TestCenteredKernelCancelled(t *testing.T) {
	kc := core.NewContext(nil, nil, func() bool { return true })
	_, err := CenteredKernel(kc, [][]float64{{1}, {2}}, dot, 1)
	require.ErrorIs(t, err, core.ErrCancelled)
}

func TestPairwiseSymmetricNoCentering(t *testing.T) {
	data := []float64{0, 1, 3}
	kc := core.NewContext(nil, nil, nil)

	abs := func(a, b float64) float64 {
		if a > b {
			return a - b
		}
		return b - a
	}
	m, err := Pairwise(kc, data, abs, 2)
	require.NoError(t, err)

	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 3.0, m.At(0, 2))
	assert.Equal(t, 2.0, m.At(1, 2))
	assert.Equal(t, m.At(2, 1), m.At(1, 2))
}

func TestCenterSquaredDistances(t *testing.T) {
	// Distances from three collinear points at 0, 1, 3.
	d := mat.NewSymDense(3, nil)
	d.SetSym(0, 1, 1)
	d.SetSym(0, 2, 3)
	d.SetSym(1, 2, 2)

	CenterSquaredDistances(d)

	// The centered Gram matrix of classical scaling has vanishing row sums
	// and its trace equals the scatter of the configuration.
	for i := 0; i < 3; i++ {
		row := 0.0
		for j := 0; j < 3; j++ {
			row += d.At(i, j)
		}
		assert.InDelta(t, 0, row, 1e-10)
	}
	// Points 0, 1, 3 have mean 4/3; scatter = (4/3)² + (1/3)² + (5/3)².
	scatter := (16.0 + 1.0 + 25.0) / 9.0
	assert.InDelta(t, scatter, d.At(0, 0)+d.At(1, 1)+d.At(2, 2), 1e-10)
}

func TestSquareBytes(t *testing.T) {
	assert.Equal(t, int64(8), SquareBytes(1))
	assert.Equal(t, int64(800), SquareBytes(10))
}

package tapkee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/canautumn/tapkee/metric"
	"github.com/canautumn/tapkee/param"
)

func TestProjectIdentityBasis(t *testing.T) {
	pr := &Projection{Basis: mat.NewDense(2, 2, []float64{1, 0, 0, 1})}
	data := [][]float64{{3, 4}, {-1, 2}}

	out, err := Project(pr, data, metric.Vector, 2)
	require.NoError(t, err)
	for i, row := range data {
		for j, v := range row {
			assert.Equal(t, v, out.At(i, j))
		}
	}
}

func TestProjectSubtractsMean(t *testing.T) {
	pr := &Projection{
		Basis: mat.NewDense(2, 1, []float64{1, 0}),
		Mean:  []float64{10, 20},
	}
	out, err := Project(pr, [][]float64{{13, 25}}, metric.Vector, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, out.At(0, 0))
}

func TestProjectErrors(t *testing.T) {
	pr := &Projection{Basis: mat.NewDense(2, 1, []float64{1, 0})}
	data := [][]float64{{1, 2}}

	_, err := Project[[]float64](nil, data, metric.Vector, 2)
	require.ErrorIs(t, err, ErrWrongParameterValue)

	_, err = Project(pr, data, nil, 2)
	require.ErrorIs(t, err, ErrCapabilityMissing)

	_, err = Project(pr, data, metric.Vector, 3)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Project(pr, [][]float64{}, metric.Vector, 2)
	require.ErrorIs(t, err, ErrWrongParameterValue)

	pr.Mean = []float64{1}
	_, err = Project(pr, data, metric.Vector, 2)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestProjectReplaysEmbedding(t *testing.T) {
	// Re-projecting the training data through the returned artifact must
	// reproduce the embedding rows exactly.
	data := [][]float64{{0, 0}, {2, 1}, {1, 3}, {4, 0}}
	res, err := Embed(context.Background(), data, vectorCallbacks(2), param.Map{
		param.KeyMethod:          param.Enum(MethodPCA),
		param.KeyTargetDimension: param.Int(2),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Projection)

	out, err := Project(res.Projection, data, metric.Vector, 2)
	require.NoError(t, err)
	assert.Equal(t, res.Embedding.RawMatrix().Data, out.RawMatrix().Data)
}

func TestProjectionDimensions(t *testing.T) {
	pr := &Projection{Basis: mat.NewDense(4, 2, nil)}
	assert.Equal(t, 4, pr.InputDimension())
	assert.Equal(t, 2, pr.OutputDimension())
}

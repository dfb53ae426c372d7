package tapkee

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Project maps new items into the reduced space learned by a previous
// embedding: each item's feature vector is extracted, the artifact's mean
// (if any) subtracted, and the row computed as Basisᵀ·x. Exactly one output
// row per item, in input order; no statistics are recomputed and the
// artifact is not mutated.
//
// dimension must match the artifact's input dimension, otherwise
// ErrDimensionMismatch is returned before any callback runs.
func Project[T any](pr *Projection, data []T, vector VectorFunc[T], dimension int, optFns ...Option) (*mat.Dense, error) {
	opts := newOptions(optFns...)

	start := time.Now()
	out, err := project(pr, data, vector, dimension)
	elapsed := time.Since(start)

	target := 0
	if pr != nil && pr.Basis != nil {
		target = pr.OutputDimension()
	}
	opts.logger.LogProject(context.Background(), len(data), target, elapsed, err)
	opts.metrics.RecordProject(len(data), elapsed, err)
	return out, err
}

func project[T any](pr *Projection, data []T, vector VectorFunc[T], dimension int) (*mat.Dense, error) {
	if pr == nil || pr.Basis == nil {
		return nil, fmt.Errorf("%w: nil projection", ErrWrongParameterValue)
	}
	if vector == nil {
		return nil, fmt.Errorf("%w: vector", ErrCapabilityMissing)
	}
	d, t := pr.Basis.Dims()
	if dimension != d {
		return nil, fmt.Errorf("%w: projection expects %d, data has %d", ErrDimensionMismatch, d, dimension)
	}
	if pr.Mean != nil && len(pr.Mean) != d {
		return nil, fmt.Errorf("%w: mean has length %d, basis expects %d", ErrDimensionMismatch, len(pr.Mean), d)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data sequence", ErrWrongParameterValue)
	}

	out := mat.NewDense(len(data), t, nil)
	buf := make([]float64, d)
	x := mat.NewVecDense(d, buf)
	row := mat.NewVecDense(t, nil)
	for i, item := range data {
		vector(item, buf)
		if pr.Mean != nil {
			for j := range buf {
				buf[j] -= pr.Mean[j]
			}
		}
		row.MulVec(pr.Basis.T(), x)
		out.SetRow(i, row.RawVector().Data)
	}
	return out, nil
}

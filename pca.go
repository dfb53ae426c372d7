package tapkee

import (
	"fmt"
	"time"

	"github.com/canautumn/tapkee/internal/linalg"
	"github.com/canautumn/tapkee/param"
)

// pcaHandler embeds data onto the top principal axes of its covariance
// matrix and returns the learned basis as a reusable projection.
func pcaHandler[T any](e *engine[T]) (Result, error) {
	d := e.cb.Dimension
	t := e.target()
	if t > d {
		return Result{}, wrongValueError(param.KeyTargetDimension, "exceeds feature dimension")
	}

	release, err := e.reserveSquare(d)
	if err != nil {
		return Result{}, fmt.Errorf("covariance matrix: %w", err)
	}
	defer release()

	start := time.Now()
	cov, mean, err := linalg.Covariance(e.kc, e.data, e.cb.Vector, d)
	if err != nil {
		return Result{}, err
	}
	e.opts.metrics.RecordMatrixBuild("covariance", d, time.Since(start))

	sp, err := e.decompose(cov, t, 0, true)
	if err != nil {
		return Result{}, err
	}

	pr := &Projection{Basis: sp.Vectors, Mean: mean}
	emb, err := project(pr, e.data, e.cb.Vector, d)
	if err != nil {
		return Result{}, err
	}
	return Result{Embedding: emb, Projection: pr}, nil
}

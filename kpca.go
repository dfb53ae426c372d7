package tapkee

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/canautumn/tapkee/internal/linalg"
)

// kernelPCAHandler embeds data through the spectrum of its centered kernel
// matrix. The construction is O(n²) in both time and memory, which is the
// method's hard scalability ceiling; the allocation is charged against the
// resource budget up front.
func kernelPCAHandler[T any](e *engine[T]) (Result, error) {
	n := len(e.data)
	t := e.target()

	release, err := e.reserveSquare(n)
	if err != nil {
		return Result{}, fmt.Errorf("kernel matrix: %w", err)
	}
	defer release()

	start := time.Now()
	k, err := linalg.CenteredKernel(e.kc, e.data, e.cb.Kernel, e.workers())
	if err != nil {
		return Result{}, err
	}
	e.opts.metrics.RecordMatrixBuild("kernel", n, time.Since(start))

	sp, err := e.decompose(k, t, 0, true)
	if err != nil {
		return Result{}, err
	}

	return Result{Embedding: scaleBySqrtEigenvalues(sp.Vectors, sp.Values)}, nil
}

// scaleBySqrtEigenvalues turns unit eigenvectors into embedding
// coordinates: column j is scaled by √λⱼ, with numerically negative
// eigenvalues clamped to zero.
func scaleBySqrtEigenvalues(vectors *mat.Dense, values []float64) *mat.Dense {
	n, t := vectors.Dims()
	out := mat.NewDense(n, t, nil)
	for j, lambda := range values {
		s := 0.0
		if lambda > 0 {
			s = math.Sqrt(lambda)
		}
		for i := range n {
			out.Set(i, j, vectors.At(i, j)*s)
		}
	}
	return out
}

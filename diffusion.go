package tapkee

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/canautumn/tapkee/internal/linalg"
	"github.com/canautumn/tapkee/param"
)

// diffusionMapHandler builds a Gaussian affinity over the distance
// callback, normalizes it into a symmetrized Markov operator and reads the
// diffusion coordinates off its spectrum, skipping the stationary
// eigenvector.
func diffusionMapHandler[T any](e *engine[T]) (Result, error) {
	n := len(e.data)
	t := e.target()

	width, err := e.cfg.Float(param.KeyGaussianWidth)
	if err != nil {
		return Result{}, err
	}
	if width <= 0 {
		return Result{}, wrongValueError(param.KeyGaussianWidth, "must be positive")
	}
	if t+1 > n {
		return Result{}, wrongValueError(param.KeyTargetDimension, "diffusion map needs target_dimension + 1 samples")
	}

	release, err := e.reserveSquare(n)
	if err != nil {
		return Result{}, fmt.Errorf("affinity matrix: %w", err)
	}
	defer release()

	inv := 1 / (2 * width * width)
	start := time.Now()
	w, err := linalg.Pairwise(e.kc, e.data, func(a, b T) float64 {
		d := e.cb.Distance(a, b)
		return math.Exp(-d * d * inv)
	}, e.workers())
	if err != nil {
		return Result{}, err
	}
	e.opts.metrics.RecordMatrixBuild("kernel", n, time.Since(start))

	// Symmetrized normalization A = D^{-1/2} W D^{-1/2}; its spectrum is
	// that of the Markov operator D^{-1} W.
	deg := make([]float64, n)
	for i := range n {
		for j := range n {
			deg[i] += w.At(i, j)
		}
	}
	for i := range n {
		deg[i] = math.Sqrt(deg[i])
	}
	for i := range n {
		for j := i; j < n; j++ {
			w.SetSym(i, j, w.At(i, j)/(deg[i]*deg[j]))
		}
	}

	sp, err := e.decompose(w, t, 1, true)
	if err != nil {
		return Result{}, err
	}

	// Diffusion coordinate k of sample i is λ_k φ_k(i) / √deg(i).
	emb := mat.NewDense(n, t, nil)
	for k, lambda := range sp.Values {
		for i := range n {
			emb.Set(i, k, lambda*sp.Vectors.At(i, k)/deg[i])
		}
	}
	return Result{Embedding: emb}, nil
}

package tapkee

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/canautumn/tapkee/param"
)

// randomProjectionHandler draws a seeded Gaussian basis with unit-norm
// columns and replays it through the projection path, so the same artifact
// embeds out-of-sample points later.
func randomProjectionHandler[T any](e *engine[T]) (Result, error) {
	d := e.cb.Dimension
	t := e.target()
	if t > d {
		return Result{}, wrongValueError(param.KeyTargetDimension, "exceeds feature dimension")
	}
	seed, err := e.cfg.Int(param.KeyRandomSeed)
	if err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	basis := mat.NewDense(d, t, nil)
	for j := range t {
		norm := 0.0
		for i := range d {
			v := rng.NormFloat64()
			basis.Set(i, j, v)
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm > 0 {
			for i := range d {
				basis.Set(i, j, basis.At(i, j)/norm)
			}
		}
	}

	pr := &Projection{Basis: basis}
	emb, err := project(pr, e.data, e.cb.Vector, d)
	if err != nil {
		return Result{}, err
	}
	return Result{Embedding: emb, Projection: pr}, nil
}

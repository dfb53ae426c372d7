package tapkee

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/canautumn/tapkee/internal/linalg"
	"github.com/canautumn/tapkee/param"
)

// mdsHandler implements classical multidimensional scaling: the centered
// Gram matrix −½d² is built from the distance callback and its top
// eigenpairs give the coordinates.
func mdsHandler[T any](e *engine[T]) (Result, error) {
	n := len(e.data)
	t := e.target()

	release, err := e.reserveSquare(n)
	if err != nil {
		return Result{}, fmt.Errorf("gram matrix: %w", err)
	}
	defer release()

	gram := func(a, b T) float64 {
		d := e.cb.Distance(a, b)
		return -0.5 * d * d
	}

	start := time.Now()
	g, err := linalg.CenteredKernel(e.kc, e.data, gram, e.workers())
	if err != nil {
		return Result{}, err
	}
	e.opts.metrics.RecordMatrixBuild("gram", n, time.Since(start))

	sp, err := e.decompose(g, t, 0, true)
	if err != nil {
		return Result{}, err
	}
	return Result{Embedding: scaleBySqrtEigenvalues(sp.Vectors, sp.Values)}, nil
}

// landmarkMDSHandler scales a seeded landmark subset classically, then
// places every sample by distance triangulation against the landmarks.
// With landmark_ratio = 1 the result matches classical scaling up to sign.
func landmarkMDSHandler[T any](e *engine[T]) (Result, error) {
	n := len(e.data)
	t := e.target()

	ratio, err := e.cfg.Float(param.KeyLandmarkRatio)
	if err != nil {
		return Result{}, err
	}
	if ratio <= 0 || ratio > 1 {
		return Result{}, wrongValueError(param.KeyLandmarkRatio, "must be in (0,1]")
	}
	seed, err := e.cfg.Int(param.KeyRandomSeed)
	if err != nil {
		return Result{}, err
	}

	m := int(math.Ceil(ratio * float64(n)))
	if m < t+1 {
		m = t + 1
	}
	if m > n {
		m = n
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	perm := rng.Perm(n)
	idx := append([]int(nil), perm[:m]...)
	sort.Ints(idx)
	landmarks := make([]T, m)
	for i, j := range idx {
		landmarks[i] = e.data[j]
	}

	release, err := e.reserveSquare(m)
	if err != nil {
		return Result{}, fmt.Errorf("landmark gram matrix: %w", err)
	}
	defer release()

	// Uncentered squared distances between landmarks; the column means are
	// reused by the triangulation below.
	start := time.Now()
	sq, err := linalg.Pairwise(e.kc, landmarks, func(a, b T) float64 {
		d := e.cb.Distance(a, b)
		return d * d
	}, e.workers())
	if err != nil {
		return Result{}, err
	}
	colMean := make([]float64, m)
	for j := range m {
		for i := range m {
			colMean[j] += sq.At(i, j)
		}
		colMean[j] /= float64(m)
	}

	gram := mat.NewSymDense(m, nil)
	for i := range m {
		for j := i; j < m; j++ {
			gram.SetSym(i, j, -0.5*sq.At(i, j))
		}
	}
	linalg.Center(gram)
	e.opts.metrics.RecordMatrixBuild("gram", m, time.Since(start))

	sp, err := e.decompose(gram, t, 0, true)
	if err != nil {
		return Result{}, err
	}
	for _, lambda := range sp.Values {
		if lambda <= 0 {
			return Result{}, fmt.Errorf("%s: %w: nonpositive landmark spectrum, reduce target dimension", e.method, ErrEigendecomposition)
		}
	}

	// Pseudo-inverse rows of the landmark embedding: column k is v_k/√λ_k.
	pinv := mat.NewDense(m, t, nil)
	for k, lambda := range sp.Values {
		s := 1 / math.Sqrt(lambda)
		for i := range m {
			pinv.Set(i, k, sp.Vectors.At(i, k)*s)
		}
	}

	emb := mat.NewDense(n, t, nil)
	delta := make([]float64, m)
	for i, item := range e.data {
		if e.kc.Cancelled() {
			return Result{}, e.kc.Err("landmark triangulation")
		}
		for j, lm := range landmarks {
			d := e.cb.Distance(item, lm)
			delta[j] = d * d
		}
		for k := range t {
			acc := 0.0
			for j := range m {
				acc += pinv.At(j, k) * (delta[j] - colMean[j])
			}
			emb.Set(i, k, -0.5*acc)
		}
	}
	return Result{Embedding: emb}, nil
}

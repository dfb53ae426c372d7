// Package eigen provides the eigendecomposition backend used by the
// spectral reduction methods.
//
// The backend is a runtime choice: Auto resolves to the dense gonum solver,
// and Power is an opt-in iterative solver for the largest eigenpairs of
// well-separated spectra. Backend availability is a configuration concern,
// not a build-time one.
package eigen

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors.
var (
	// ErrNotConverged is returned when a solver fails to converge.
	ErrNotConverged = errors.New("eigendecomposition did not converge")

	// ErrRankTooLarge is returned when more eigenpairs are requested than
	// the matrix has.
	ErrRankTooLarge = errors.New("requested rank exceeds matrix order")
)

// Backend selects the eigendecomposition implementation.
type Backend int

const (
	// Auto resolves to Dense.
	Auto Backend = iota

	// Dense uses gonum's dense symmetric solver (full factorization).
	Dense

	// Power uses power iteration with deflation. Largest eigenpairs only;
	// tolerance-bounded, so results may differ from Dense within tolerance.
	Power
)

func (b Backend) String() string {
	switch b {
	case Auto:
		return "auto"
	case Dense:
		return "dense"
	case Power:
		return "power"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// Spectrum holds ordered eigenpairs. Vectors has one column per eigenvalue,
// in the same order as Values.
type Spectrum struct {
	Values  []float64
	Vectors *mat.Dense
}

// Power iteration bounds.
const (
	powerMaxIterations = 1000
	powerTolerance     = 1e-10
)

// Decompose computes rank eigenpairs of the symmetric matrix a, skipping the
// first skip pairs at the requested end of the spectrum. With largest=true
// values come back in descending order, otherwise ascending.
func Decompose(a mat.Symmetric, rank, skip int, largest bool, backend Backend) (Spectrum, error) {
	n := a.SymmetricDim()
	if rank < 1 {
		return Spectrum{}, fmt.Errorf("%w: rank %d", ErrRankTooLarge, rank)
	}
	if rank+skip > n {
		return Spectrum{}, fmt.Errorf("%w: rank %d + skip %d > order %d", ErrRankTooLarge, rank, skip, n)
	}

	switch backend {
	case Auto, Dense:
		return denseDecompose(a, rank, skip, largest)
	case Power:
		if !largest {
			return Spectrum{}, fmt.Errorf("power backend computes largest eigenpairs only")
		}
		return powerDecompose(a, rank, skip)
	default:
		return Spectrum{}, fmt.Errorf("unknown eigen backend %v", backend)
	}
}

// Shift adds eps to every diagonal entry of a in place. Spectral methods use
// it to regularize near-singular matrices before solving.
func Shift(a *mat.SymDense, eps float64) {
	n := a.SymmetricDim()
	for i := range n {
		a.SetSym(i, i, a.At(i, i)+eps)
	}
}

func denseDecompose(a mat.Symmetric, rank, skip int, largest bool) (Spectrum, error) {
	var es mat.EigenSym
	if !es.Factorize(a, true) {
		return Spectrum{}, ErrNotConverged
	}

	n := a.SymmetricDim()
	all := es.Values(nil) // ascending
	var allVecs mat.Dense
	es.VectorsTo(&allVecs)

	values := make([]float64, rank)
	vectors := mat.NewDense(n, rank, nil)
	for k := range rank {
		var src int
		if largest {
			src = n - 1 - skip - k
		} else {
			src = skip + k
		}
		values[k] = all[src]
		for i := range n {
			vectors.Set(i, k, allVecs.At(i, src))
		}
	}
	return Spectrum{Values: values, Vectors: vectors}, nil
}

// powerDecompose finds the top rank+skip eigenpairs by power iteration with
// deflation, then drops the first skip of them.
func powerDecompose(a mat.Symmetric, rank, skip int) (Spectrum, error) {
	n := a.SymmetricDim()
	want := rank + skip

	work := mat.NewDense(n, n, nil)
	for i := range n {
		for j := range n {
			work.Set(i, j, a.At(i, j))
		}
	}

	values := make([]float64, 0, want)
	vectors := mat.NewDense(n, want, nil)

	v := mat.NewVecDense(n, nil)
	av := mat.NewVecDense(n, nil)
	for k := range want {
		// Deterministic start vector.
		for i := range n {
			v.SetVec(i, 1/float64(n)+float64(i%7)*1e-3)
		}
		normalize(v)

		var lambda float64
		converged := false
		for range powerMaxIterations {
			av.MulVec(work, v)
			lambda = mat.Dot(av, v) // Rayleigh quotient for unit v

			// ||A v - lambda v|| relative to |lambda|.
			resid := 0.0
			for i := range n {
				d := av.AtVec(i) - lambda*v.AtVec(i)
				resid += d * d
			}

			norm := mat.Norm(av, 2)
			if norm == 0 {
				// Remaining spectrum is numerically zero.
				lambda = 0
				converged = true
				break
			}
			av.ScaleVec(1/norm, av)
			v.CopyVec(av)

			if resid <= powerTolerance*powerTolerance*(lambda*lambda+powerTolerance) {
				converged = true
				break
			}
		}
		if !converged {
			return Spectrum{}, fmt.Errorf("%w: eigenpair %d after %d iterations", ErrNotConverged, k, powerMaxIterations)
		}

		values = append(values, lambda)
		for i := range n {
			vectors.Set(i, k, v.AtVec(i))
		}

		// Deflate: work -= lambda v vᵀ.
		for i := range n {
			for j := range n {
				work.Set(i, j, work.At(i, j)-lambda*v.AtVec(i)*v.AtVec(j))
			}
		}
	}

	out := Spectrum{
		Values:  values[skip:],
		Vectors: mat.NewDense(n, rank, nil),
	}
	for k := range rank {
		for i := range n {
			out.Vectors.Set(i, k, vectors.At(i, skip+k))
		}
	}
	return out, nil
}

func normalize(v *mat.VecDense) {
	norm := mat.Norm(v, 2)
	if norm > 0 {
		v.ScaleVec(1/norm, v)
	}
}

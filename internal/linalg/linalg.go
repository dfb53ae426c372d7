// Package linalg holds the matrix-construction primitives shared by the
// spectral reduction methods: covariance accumulation and centered kernel
// construction. Both produce symmetric matrices that are owned by the
// computation that built them and handed straight to the eigensolver.
package linalg

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/canautumn/tapkee/internal/core"
)

// Covariance accumulates C = Σ xᵢxᵢᵀ − (1/n)(Σxᵢ)(Σxᵢ)ᵀ over the feature
// vectors of data, and returns the mean vector alongside. Only the upper
// triangle is written; consumers must read the result as symmetric.
//
// This is a single-pass formulation: the full outer-product sum is built
// before the mean term is subtracted. It is less numerically stable than
// two-pass centering for ill-conditioned data, but touches the data
// sequence only once.
func Covariance[T any](kc *core.Context, data []T, vector func(T, []float64), dim int) (*mat.SymDense, []float64, error) {
	n := len(data)
	cov := mat.NewSymDense(dim, nil)
	sum := mat.NewVecDense(dim, nil)

	buf := make([]float64, dim)
	x := mat.NewVecDense(dim, buf)
	for i, item := range data {
		if kc.Cancelled() {
			return nil, nil, kc.Err("covariance construction")
		}
		vector(item, buf)
		sum.AddVec(sum, x)
		cov.SymRankOne(cov, 1, x)
		kc.Progress(float64(i+1) / float64(n))
	}
	cov.SymRankOne(cov, -1/float64(n), sum)

	mean := make([]float64, dim)
	for j := range dim {
		mean[j] = sum.AtVec(j) / float64(n)
	}
	return cov, mean, nil
}

// CenteredKernel evaluates kernel once per unordered sample pair (diagonal
// included), mirrors the value through the symmetric storage, and applies
// the kernel-PCA double-centering identity: add the grand mean everywhere,
// subtract each column's mean, subtract each row's mean.
//
// Time and memory are quadratic in sample count; callers reserve the matrix
// from the resource budget before calling. Rows are filled in parallel,
// partitioned so no two workers write the same cell, and cancellation is
// polled once per row.
func CenteredKernel[T any](kc *core.Context, data []T, kernel func(a, b T) float64, workers int) (*mat.SymDense, error) {
	n := len(data)
	k := mat.NewSymDense(n, nil)

	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	var done atomic.Int64
	for i := range n {
		g.Go(func() error {
			if kc.Cancelled() {
				return kc.Err("kernel matrix construction")
			}
			a := data[i]
			for j := i; j < n; j++ {
				k.SetSym(i, j, kernel(a, data[j]))
			}
			kc.Progress(float64(done.Add(1)) / float64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	center(k)
	return k, nil
}

// Pairwise fills a symmetric matrix with f evaluated once per unordered
// pair, diagonal included, without centering. Same parallel fill and
// cancellation behavior as CenteredKernel.
func Pairwise[T any](kc *core.Context, data []T, f func(a, b T) float64, workers int) (*mat.SymDense, error) {
	n := len(data)
	m := mat.NewSymDense(n, nil)

	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	var done atomic.Int64
	for i := range n {
		g.Go(func() error {
			if kc.Cancelled() {
				return kc.Err("pairwise matrix construction")
			}
			a := data[i]
			for j := i; j < n; j++ {
				m.SetSym(i, j, f(a, data[j]))
			}
			kc.Progress(float64(done.Add(1)) / float64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

// CenterSquaredDistances turns a matrix of pairwise distances into the
// centered Gram matrix of classical scaling in place: each entry becomes
// −½d² and the result is double-centered.
func CenterSquaredDistances(d *mat.SymDense) {
	n := d.SymmetricDim()
	for i := range n {
		for j := i; j < n; j++ {
			v := d.At(i, j)
			d.SetSym(i, j, -0.5*v*v)
		}
	}
	center(d)
}

// Center applies the double-centering identity to a symmetric matrix in
// place.
func Center(k *mat.SymDense) {
	center(k)
}

// center applies double-centering in place. Column and row means coincide
// for a symmetric matrix, so one mean vector serves both subtractions and
// the result stays symmetric.
func center(k *mat.SymDense) {
	n := k.SymmetricDim()
	means := make([]float64, n)
	grand := 0.0
	for i := range n {
		for j := range n {
			means[i] += k.At(i, j)
		}
		means[i] /= float64(n)
		grand += means[i]
	}
	grand /= float64(n)

	for i := range n {
		for j := i; j < n; j++ {
			k.SetSym(i, j, k.At(i, j)+grand-means[i]-means[j])
		}
	}
}

// SquareBytes returns the allocation size of an n×n float64 matrix, for
// resource-budget reservations.
func SquareBytes(n int) int64 {
	return int64(n) * int64(n) * 8
}

package tapkee

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/canautumn/tapkee/internal/linalg"
	"github.com/canautumn/tapkee/internal/neighbors"
	"github.com/canautumn/tapkee/param"
)

// isomapHandler approximates geodesic distances along the k-NN graph with
// all-pairs shortest paths and scales them classically. Geodesics make the
// stage O(n²) in memory on top of the Gram matrix, both charged to the
// resource budget.
func isomapHandler[T any](e *engine[T]) (Result, error) {
	n := len(e.data)
	t := e.target()

	k, err := e.cfg.Int(param.KeyNumNeighbors)
	if err != nil {
		return Result{}, err
	}
	if k < 1 {
		return Result{}, wrongValueError(param.KeyNumNeighbors, "must be at least 1")
	}
	checkConnectivity, err := e.cfg.Bool(param.KeyCheckConnectivity)
	if err != nil {
		return Result{}, err
	}

	nb, err := neighbors.KNN(e.kc, e.data, e.cb.Distance, k, e.workers())
	if err != nil {
		return Result{}, err
	}

	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range n {
		g.AddNode(simple.Node(i))
	}
	for i, row := range nb {
		for _, nn := range row {
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(nn.Index), nn.Distance))
		}
	}

	// Two n×n matrices live at once here: the geodesics and the Gram
	// matrix derived from them.
	release, err := e.reserveSquare(n)
	if err != nil {
		return Result{}, fmt.Errorf("geodesic matrix: %w", err)
	}
	defer release()
	release2, err := e.reserveSquare(n)
	if err != nil {
		return Result{}, fmt.Errorf("gram matrix: %w", err)
	}
	defer release2()

	if e.kc.Cancelled() {
		return Result{}, e.kc.Err("geodesic computation")
	}
	start := time.Now()
	paths := path.DijkstraAllPaths(g)

	geo := mat.NewSymDense(n, nil)
	diameter := 0.0
	disconnected := false
	for i := range n {
		for j := i + 1; j < n; j++ {
			w := paths.Weight(int64(i), int64(j))
			if math.IsInf(w, 1) {
				disconnected = true
				w = -1 // placeholder, clamped to the diameter below
			} else if w > diameter {
				diameter = w
			}
			geo.SetSym(i, j, w)
		}
	}
	if disconnected {
		if checkConnectivity {
			return Result{}, wrongValueError(param.KeyNumNeighbors, "neighbor graph is disconnected, increase num_neighbors")
		}
		// Connectivity check disabled: clamp unreachable pairs to the
		// observed diameter so the scaling stays finite.
		for i := range n {
			for j := i + 1; j < n; j++ {
				if geo.At(i, j) < 0 {
					geo.SetSym(i, j, diameter)
				}
			}
		}
	}

	linalg.CenterSquaredDistances(geo)
	e.opts.metrics.RecordMatrixBuild("gram", n, time.Since(start))

	sp, err := e.decompose(geo, t, 0, true)
	if err != nil {
		return Result{}, err
	}
	return Result{Embedding: scaleBySqrtEigenvalues(sp.Vectors, sp.Values)}, nil
}

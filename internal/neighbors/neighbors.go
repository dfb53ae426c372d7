// Package neighbors finds k-nearest neighbors by exhaustive scan. The
// quadratic scan keeps the engine free of spatial-index dependencies; local
// methods already pay O(n²) for their geodesic stage, so the scan is not
// the ceiling.
package neighbors

import (
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/canautumn/tapkee/internal/core"
)

// Neighbor is one edge of the k-NN graph.
type Neighbor struct {
	Index    int
	Distance float64
}

// KNN returns, for every item, its k nearest other items by dist, sorted by
// ascending distance (ties by index). Items are scanned in parallel,
// one result row per worker write.
func KNN[T any](kc *core.Context, data []T, dist func(a, b T) float64, k, workers int) ([][]Neighbor, error) {
	n := len(data)
	if k >= n {
		k = n - 1
	}
	out := make([][]Neighbor, n)

	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	var done atomic.Int64
	for i := range n {
		g.Go(func() error {
			if kc.Cancelled() {
				return kc.Err("neighbor search")
			}
			row := make([]Neighbor, 0, n-1)
			for j := range n {
				if j == i {
					continue
				}
				row = append(row, Neighbor{Index: j, Distance: dist(data[i], data[j])})
			}
			sort.Slice(row, func(a, b int) bool {
				if row[a].Distance != row[b].Distance {
					return row[a].Distance < row[b].Distance
				}
				return row[a].Index < row[b].Index
			})
			out[i] = row[:k]
			kc.Progress(float64(done.Add(1)) / float64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Package tapkee provides a generic dimensionality-reduction engine for Go.
//
// Data items stay opaque to the engine: callers hand over a slice of items
// together with capability callbacks (a kernel for pairwise similarity, a
// distance for pairwise dissimilarity, a feature-vector extractor) and
// select one of the supported reduction methods at runtime through a typed
// parameter map. Linear methods additionally return a reusable projection
// that maps out-of-sample points into the same reduced space.
//
// # Quick Start
//
//	data := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
//	cb := tapkee.Callbacks[[]float64]{
//	    Vector:    metric.Vector,
//	    Dimension: 2,
//	}
//	params := param.Map{
//	    param.KeyMethod:          param.Enum(tapkee.MethodPCA),
//	    param.KeyTargetDimension: param.Int(1),
//	}
//	res, err := tapkee.Embed(context.Background(), data, cb, params)
//
// Out-of-sample points replay the learned projection:
//
//	emb, err := tapkee.Project(res.Projection, more, metric.Vector, 2)
//
// # Methods and capabilities
//
// Each method requires a subset of the three callbacks; a missing required
// callback fails with ErrCapabilityMissing before any computation starts.
// Kernel methods (kernel PCA) need Kernel, distance methods (MDS, landmark
// MDS, Isomap, diffusion maps) need Distance, and linear methods (PCA,
// random projection, pass-thru) need Vector plus its fixed Dimension.
//
// # Scale
//
// Kernel, Gram and affinity matrices are quadratic in sample count in both
// time and memory. Attach a resource.Controller with WithResources to turn
// oversized allocations into ErrNotEnoughMemory instead of process
// exhaustion.
//
// # Progress and cancellation
//
// A func(float64) progress hook and a func() bool cancellation predicate
// can be supplied in the parameter map; cancellation is also observed from
// the context passed to Embed. Cancellation is cooperative: primitives poll
// at natural checkpoints and unwind with ErrCancelled.
package tapkee

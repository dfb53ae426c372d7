package tapkee

import "fmt"

// Method selects a dimensionality-reduction algorithm.
type Method int

const (
	// MethodUnknown is the zero value; dispatching it is a parameter error.
	MethodUnknown Method = iota

	MethodKernelLocallyLinearEmbedding
	MethodKernelLocalTangentSpaceAlignment
	MethodDiffusionMap
	MethodMultidimensionalScaling
	MethodLandmarkMultidimensionalScaling
	MethodIsomap
	MethodLandmarkIsomap
	MethodNeighborhoodPreservingEmbedding
	MethodLinearLocalTangentSpaceAlignment
	MethodHessianLocallyLinearEmbedding
	MethodLaplacianEigenmaps
	MethodLocalityPreservingProjections
	MethodPCA
	MethodKernelPCA
	MethodRandomProjection
	MethodStochasticProximityEmbedding
	MethodPassThru
	MethodFactorAnalysis
	MethodTDistributedStochasticNeighborEmbedding

	methodEnd // keep last
)

func (m Method) String() string {
	switch m {
	case MethodKernelLocallyLinearEmbedding:
		return "kernel locally linear embedding"
	case MethodKernelLocalTangentSpaceAlignment:
		return "kernel local tangent space alignment"
	case MethodDiffusionMap:
		return "diffusion map"
	case MethodMultidimensionalScaling:
		return "multidimensional scaling"
	case MethodLandmarkMultidimensionalScaling:
		return "landmark multidimensional scaling"
	case MethodIsomap:
		return "isomap"
	case MethodLandmarkIsomap:
		return "landmark isomap"
	case MethodNeighborhoodPreservingEmbedding:
		return "neighborhood preserving embedding"
	case MethodLinearLocalTangentSpaceAlignment:
		return "linear local tangent space alignment"
	case MethodHessianLocallyLinearEmbedding:
		return "hessian locally linear embedding"
	case MethodLaplacianEigenmaps:
		return "laplacian eigenmaps"
	case MethodLocalityPreservingProjections:
		return "locality preserving projections"
	case MethodPCA:
		return "principal component analysis"
	case MethodKernelPCA:
		return "kernel principal component analysis"
	case MethodRandomProjection:
		return "random projection"
	case MethodStochasticProximityEmbedding:
		return "stochastic proximity embedding"
	case MethodPassThru:
		return "pass-thru"
	case MethodFactorAnalysis:
		return "factor analysis"
	case MethodTDistributedStochasticNeighborEmbedding:
		return "t-distributed stochastic neighbor embedding"
	default:
		return fmt.Sprintf("unknown method (%d)", int(m))
	}
}

// ParseMethod maps a selector name to its Method. Unknown names return
// MethodUnknown and false.
func ParseMethod(name string) (Method, bool) {
	switch name {
	case "klle":
		return MethodKernelLocallyLinearEmbedding, true
	case "kltsa":
		return MethodKernelLocalTangentSpaceAlignment, true
	case "diffusion_map":
		return MethodDiffusionMap, true
	case "mds":
		return MethodMultidimensionalScaling, true
	case "landmark_mds":
		return MethodLandmarkMultidimensionalScaling, true
	case "isomap":
		return MethodIsomap, true
	case "landmark_isomap":
		return MethodLandmarkIsomap, true
	case "npe":
		return MethodNeighborhoodPreservingEmbedding, true
	case "lltsa":
		return MethodLinearLocalTangentSpaceAlignment, true
	case "hlle":
		return MethodHessianLocallyLinearEmbedding, true
	case "laplacian_eigenmaps":
		return MethodLaplacianEigenmaps, true
	case "lpp":
		return MethodLocalityPreservingProjections, true
	case "pca":
		return MethodPCA, true
	case "kpca":
		return MethodKernelPCA, true
	case "random_projection":
		return MethodRandomProjection, true
	case "spe":
		return MethodStochasticProximityEmbedding, true
	case "passthru":
		return MethodPassThru, true
	case "factor_analysis":
		return MethodFactorAnalysis, true
	case "tsne":
		return MethodTDistributedStochasticNeighborEmbedding, true
	default:
		return MethodUnknown, false
	}
}

// valid reports whether m names a member of the closed method set.
func (m Method) valid() bool {
	return m > MethodUnknown && m < methodEnd
}

// requiredCapabilities returns the callback subset a method needs. The
// dispatcher checks it before any heavy work starts.
func (m Method) requiredCapabilities() Capability {
	switch m {
	case MethodKernelLocallyLinearEmbedding,
		MethodKernelLocalTangentSpaceAlignment,
		MethodHessianLocallyLinearEmbedding,
		MethodKernelPCA:
		return CapKernel
	case MethodNeighborhoodPreservingEmbedding,
		MethodLinearLocalTangentSpaceAlignment:
		return CapKernel | CapVector
	case MethodDiffusionMap,
		MethodMultidimensionalScaling,
		MethodLandmarkMultidimensionalScaling,
		MethodIsomap,
		MethodLandmarkIsomap,
		MethodLaplacianEigenmaps,
		MethodStochasticProximityEmbedding:
		return CapDistance
	case MethodLocalityPreservingProjections:
		return CapDistance | CapVector
	case MethodTDistributedStochasticNeighborEmbedding:
		return CapDistance | CapVector
	case MethodPCA,
		MethodRandomProjection,
		MethodPassThru,
		MethodFactorAnalysis:
		return CapVector
	default:
		return 0
	}
}

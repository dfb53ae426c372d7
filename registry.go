package tapkee

// handler is the uniform signature every method variant implements.
type handler[T any] func(*engine[T]) (Result, error)

// handlerFor is the method registry: one row per implemented variant.
// Adding a method is an edit here plus its handler file. Recognized
// selectors without a row dispatch to ErrUnsupportedMethod.
func handlerFor[T any](m Method) handler[T] {
	switch m {
	case MethodPCA:
		return pcaHandler[T]
	case MethodKernelPCA:
		return kernelPCAHandler[T]
	case MethodMultidimensionalScaling:
		return mdsHandler[T]
	case MethodLandmarkMultidimensionalScaling:
		return landmarkMDSHandler[T]
	case MethodDiffusionMap:
		return diffusionMapHandler[T]
	case MethodIsomap:
		return isomapHandler[T]
	case MethodRandomProjection:
		return randomProjectionHandler[T]
	case MethodPassThru:
		return passThruHandler[T]
	default:
		return nil
	}
}

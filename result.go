package tapkee

import "gonum.org/v1/gonum/mat"

// Result is the outcome of an embedding: the embedded coordinates plus, for
// linear methods, a reusable projection for out-of-sample points.
type Result struct {
	// Embedding has one row per sample and one column per target dimension
	// unless column-per-sample orientation was requested.
	Embedding *mat.Dense

	// Projection is non-nil only for methods that learn a linear map.
	Projection *Projection
}

// Projection is the reusable artifact of a linear reduction: a basis and
// the side vectors needed to replay it against new data. It outlives the
// Embed call that produced it and is never mutated by Project.
type Projection struct {
	// Basis is the d×t projection matrix; rows index input features,
	// columns index embedded dimensions.
	Basis *mat.Dense

	// Mean, when non-nil, is subtracted from each feature vector before
	// projecting (length d).
	Mean []float64
}

// InputDimension returns the feature-vector length the projection expects.
func (p *Projection) InputDimension() int {
	d, _ := p.Basis.Dims()
	return d
}

// OutputDimension returns the embedded dimensionality.
func (p *Projection) OutputDimension() int {
	_, t := p.Basis.Dims()
	return t
}

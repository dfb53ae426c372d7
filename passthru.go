package tapkee

import "gonum.org/v1/gonum/mat"

// passThruHandler copies the feature vectors through unchanged, one row per
// sample. The target dimension is ignored: the embedding keeps the feature
// dimension. Useful for exercising the pipeline without reduction.
func passThruHandler[T any](e *engine[T]) (Result, error) {
	n := len(e.data)
	d := e.cb.Dimension

	emb := mat.NewDense(n, d, nil)
	buf := make([]float64, d)
	for i, item := range e.data {
		if e.kc.Cancelled() {
			return Result{}, e.kc.Err("pass-thru")
		}
		e.cb.Vector(item, buf)
		emb.SetRow(i, buf)
		e.kc.Progress(float64(i+1) / float64(n))
	}
	return Result{Embedding: emb}, nil
}

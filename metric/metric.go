// Package metric provides ready-made kernel and distance callbacks for
// samples that are plain []float64 feature vectors. All functions assume
// equal-length inputs (caller's responsibility) unless documented otherwise.
package metric

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dot is the linear kernel: the dot product of two vectors.
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// SquaredEuclidean is the squared L2 distance between two vectors.
func SquaredEuclidean(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// Euclidean is the L2 distance between two vectors.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Magnitude is the L2 norm of a vector.
func Magnitude(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Gaussian returns an RBF kernel exp(−‖a−b‖² / (2w²)) with the given width.
func Gaussian(width float64) func(a, b []float64) float64 {
	inv := 1 / (2 * width * width)
	return func(a, b []float64) float64 {
		return math.Exp(-SquaredEuclidean(a, b) * inv)
	}
}

// CosineSimilarity calculates the cosine similarity of two vectors.
func CosineSimilarity(a, b []float64) (float64, error) {
	// Check if the vector sizes match
	if len(a) != len(b) {
		return 0, errors.New("vector sizes do not match")
	}

	dot := floats.Dot(a, b)
	magA := Magnitude(a)
	magB := Magnitude(b)

	// Avoid division by zero
	if magA == 0 || magB == 0 {
		return 0, nil
	}
	return dot / (magA * magB), nil
}

// Vector is a feature-vector callback for []float64 samples: it copies the
// sample into the caller-owned buffer.
func Vector(item []float64, out []float64) {
	copy(out, item)
}

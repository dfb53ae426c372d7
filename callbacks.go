package tapkee

import (
	"fmt"
	"strings"
)

// KernelFunc computes a positive-semidefinite similarity between two items.
type KernelFunc[T any] func(a, b T) float64

// DistanceFunc computes a metric (or pseudo-metric) between two items.
type DistanceFunc[T any] func(a, b T) float64

// VectorFunc writes the fixed-length feature vector of item into out, a
// caller-owned buffer of the adapter's Dimension.
type VectorFunc[T any] func(item T, out []float64)

// Capability is a bitmask of the callback subset a method requires.
type Capability uint8

const (
	CapKernel Capability = 1 << iota
	CapDistance
	CapVector
)

func (c Capability) String() string {
	var parts []string
	if c&CapKernel != 0 {
		parts = append(parts, "kernel")
	}
	if c&CapDistance != 0 {
		parts = append(parts, "distance")
	}
	if c&CapVector != 0 {
		parts = append(parts, "vector")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Callbacks adapts the caller-supplied capability callbacks behind one
// value. Each field is independently optional; the selected method
// determines which subset must be present. Results are never cached; each
// call recomputes, so memoization is the caller's concern.
type Callbacks[T any] struct {
	Kernel   KernelFunc[T]
	Distance DistanceFunc[T]
	Vector   VectorFunc[T]

	// Dimension is the fixed length of the vectors written by Vector.
	// Required whenever Vector is set.
	Dimension int
}

// Capabilities reports which callbacks are present.
func (c Callbacks[T]) Capabilities() Capability {
	var have Capability
	if c.Kernel != nil {
		have |= CapKernel
	}
	if c.Distance != nil {
		have |= CapDistance
	}
	if c.Vector != nil {
		have |= CapVector
	}
	return have
}

// require fails with ErrCapabilityMissing unless every capability in need
// is configured, and validates the feature dimension when vectors are
// needed. Checked once per dispatch, before any heavy work.
func (c Callbacks[T]) require(need Capability) error {
	missing := need &^ c.Capabilities()
	if missing != 0 {
		return fmt.Errorf("%w: %s", ErrCapabilityMissing, missing)
	}
	if need&CapVector != 0 && c.Dimension < 1 {
		return fmt.Errorf("%w: vector callback configured without a positive Dimension", ErrCapabilityMissing)
	}
	return nil
}

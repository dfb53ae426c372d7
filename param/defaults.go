package param

import (
	"fmt"

	"github.com/canautumn/tapkee/eigen"
)

// Default values applied by ValidateAndDefault for absent optional keys.
const (
	DefaultTargetDimension = 2
	DefaultEigenShift      = 1e-9
	DefaultTraceShift      = 1e-3
	DefaultNumNeighbors    = 10
	DefaultLandmarkRatio   = 0.5
	DefaultGaussianWidth   = 1.0
	DefaultRandomSeed      = 1
)

// defaults returns the defaulting table. Keys absent here (method, hooks,
// method-specific extras) have no default on purpose.
func defaults() map[Key]Value {
	return map[Key]Value{
		KeyTargetDimension:         Int(DefaultTargetDimension),
		KeyOutputColumnsAreSamples: Bool(false),
		KeyEigenShift:              Float(DefaultEigenShift),
		KeyTraceShift:              Float(DefaultTraceShift),
		KeyCheckConnectivity:       Bool(true),
		KeyEigenBackend:            Enum(eigen.Auto),
		KeyNumNeighbors:            Int(DefaultNumNeighbors),
		KeyLandmarkRatio:           Float(DefaultLandmarkRatio),
		KeyGaussianWidth:           Float(DefaultGaussianWidth),
		KeyRandomSeed:              Int(DefaultRandomSeed),
	}
}

// ValidateAndDefault checks that the method selector is present and of the
// enum kind, then fills absent optional keys with their defaults on a copy.
// The input map is never mutated. Applying the function twice yields an
// identical map, and fill order does not matter.
func ValidateAndDefault(m Map) (Map, error) {
	mv, ok := m[KeyMethod]
	if !ok {
		return nil, fmt.Errorf("%w: reduction method was not specified", ErrMissing)
	}
	if mv.Kind() != KindEnum {
		return nil, fmt.Errorf("%s: %w: want enum, have %s", KeyMethod, ErrWrongType, mv.Kind())
	}

	out := m.Clone()
	for k, dv := range defaults() {
		if _, ok := out[k]; !ok {
			out[k] = dv
		}
	}
	return out, nil
}

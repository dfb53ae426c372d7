// Package param implements the typed parameter store consumed by the
// dimensionality-reduction dispatcher.
//
// Values are tagged unions: every read returns a typed result or a typed
// error, so a wrongly-typed entry is a read-time error rather than a panic
// deep inside an algorithm. Construction never fails.
package param

import (
	"errors"
	"fmt"
)

// Sentinel errors for parameter access.
var (
	// ErrMissing is returned when a required parameter is absent.
	ErrMissing = errors.New("missing parameter")

	// ErrWrongType is returned when a parameter holds a value of an
	// incompatible kind for the requested read.
	ErrWrongType = errors.New("wrong parameter type")
)

// Key identifies a configuration parameter.
type Key int

const (
	// KeyMethod selects the reduction method. Required.
	KeyMethod Key = iota

	// KeyTargetDimension is the dimensionality of the embedding.
	KeyTargetDimension

	// KeyOutputColumnsAreSamples requests one column (instead of one row)
	// per sample in the returned embedding.
	KeyOutputColumnsAreSamples

	// KeyEigenShift is the diagonal regularization added before
	// eigendecomposition where a method asks for it.
	KeyEigenShift

	// KeyTraceShift is the trace regularization used by the locally-linear
	// family of methods.
	KeyTraceShift

	// KeyCheckConnectivity toggles the neighbor-graph connectivity check in
	// graph-based methods.
	KeyCheckConnectivity

	// KeyEigenBackend selects the eigendecomposition backend.
	KeyEigenBackend

	// KeyNumNeighbors is the neighborhood size for local methods.
	KeyNumNeighbors

	// KeyLandmarkRatio is the fraction of samples used as landmarks by
	// landmark methods.
	KeyLandmarkRatio

	// KeyGaussianWidth is the kernel width for diffusion maps.
	KeyGaussianWidth

	// KeyRandomSeed seeds the randomized methods.
	KeyRandomSeed

	// KeyProgressFunc holds an optional func(float64) progress hook.
	KeyProgressFunc

	// KeyCancelFunc holds an optional func() bool cancellation hook.
	KeyCancelFunc
)

func (k Key) String() string {
	switch k {
	case KeyMethod:
		return "method"
	case KeyTargetDimension:
		return "target_dimension"
	case KeyOutputColumnsAreSamples:
		return "output_columns_are_samples"
	case KeyEigenShift:
		return "eigen_shift"
	case KeyTraceShift:
		return "trace_shift"
	case KeyCheckConnectivity:
		return "check_connectivity"
	case KeyEigenBackend:
		return "eigen_backend"
	case KeyNumNeighbors:
		return "num_neighbors"
	case KeyLandmarkRatio:
		return "landmark_ratio"
	case KeyGaussianWidth:
		return "gaussian_width"
	case KeyRandomSeed:
		return "random_seed"
	case KeyProgressFunc:
		return "progress_func"
	case KeyCancelFunc:
		return "cancel_func"
	default:
		return fmt.Sprintf("key(%d)", int(k))
	}
}

// Kind tags the payload stored in a Value.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindEnum
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindFunc:
		return "func"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged parameter value. The zero Value is a false bool.
type Value struct {
	kind Kind
	b    bool
	i    int
	f    float64
	s    string
	x    any // enum and func payloads
}

// Bool wraps a bool.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int wraps an int.
func Int(v int) Value { return Value{kind: KindInt, i: v} }

// Float wraps a float64.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String wraps a string.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Enum wraps an enumerated constant of any type. Reads go through EnumAs.
func Enum(v any) Value { return Value{kind: KindEnum, x: v} }

// Func wraps a function value. Reads go through FuncAs.
func Func(v any) Value { return Value{kind: KindFunc, x: v} }

// Kind reports the tag of the stored payload.
func (v Value) Kind() Kind { return v.kind }

// Bool reads the value as a bool.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, kindError(KindBool, v.kind)
	}
	return v.b, nil
}

// Int reads the value as an int.
func (v Value) Int() (int, error) {
	if v.kind != KindInt {
		return 0, kindError(KindInt, v.kind)
	}
	return v.i, nil
}

// Float reads the value as a float64.
func (v Value) Float() (float64, error) {
	if v.kind != KindFloat {
		return 0, kindError(KindFloat, v.kind)
	}
	return v.f, nil
}

// String reads the value as a string.
func (v Value) String() (string, error) {
	if v.kind != KindString {
		return "", kindError(KindString, v.kind)
	}
	return v.s, nil
}

// EnumAs reads an enum value of concrete type E.
func EnumAs[E any](v Value) (E, error) {
	var zero E
	if v.kind != KindEnum {
		return zero, kindError(KindEnum, v.kind)
	}
	e, ok := v.x.(E)
	if !ok {
		return zero, fmt.Errorf("%w: enum holds %T", ErrWrongType, v.x)
	}
	return e, nil
}

// FuncAs reads a function value of concrete type F.
func FuncAs[F any](v Value) (F, error) {
	var zero F
	if v.kind != KindFunc {
		return zero, kindError(KindFunc, v.kind)
	}
	f, ok := v.x.(F)
	if !ok {
		return zero, fmt.Errorf("%w: func holds %T", ErrWrongType, v.x)
	}
	return f, nil
}

func kindError(want, got Kind) error {
	return fmt.Errorf("%w: want %s, have %s", ErrWrongType, want, got)
}

// Map is a parameter map. A nil Map is valid and empty.
type Map map[Key]Value

// Has reports whether key is present.
func (m Map) Has(key Key) bool {
	_, ok := m[key]
	return ok
}

// Bool reads key as a bool; absence is ErrMissing.
func (m Map) Bool(key Key) (bool, error) {
	v, ok := m[key]
	if !ok {
		return false, missingError(key)
	}
	b, err := v.Bool()
	if err != nil {
		return false, keyError(key, err)
	}
	return b, nil
}

// Int reads key as an int; absence is ErrMissing.
func (m Map) Int(key Key) (int, error) {
	v, ok := m[key]
	if !ok {
		return 0, missingError(key)
	}
	i, err := v.Int()
	if err != nil {
		return 0, keyError(key, err)
	}
	return i, nil
}

// Float reads key as a float64; absence is ErrMissing.
func (m Map) Float(key Key) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, missingError(key)
	}
	f, err := v.Float()
	if err != nil {
		return 0, keyError(key, err)
	}
	return f, nil
}

// Clone returns a shallow copy of m. Clone(nil) is an empty non-nil Map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func missingError(key Key) error {
	return fmt.Errorf("%w: %s", ErrMissing, key)
}

func keyError(key Key, err error) error {
	return fmt.Errorf("%s: %w", key, err)
}

package tapkee

import (
	"errors"
	"fmt"

	"github.com/canautumn/tapkee/eigen"
	"github.com/canautumn/tapkee/internal/core"
	"github.com/canautumn/tapkee/param"
	"github.com/canautumn/tapkee/resource"
)

// The closed error taxonomy of the engine. Every failure of Embed or
// Project matches exactly one of these with errors.Is; messages carry the
// distinguishing detail.
var (
	// ErrMissingParameter is returned when a required parameter (the
	// method selector) is absent from the parameter map.
	ErrMissingParameter = param.ErrMissing

	// ErrWrongParameterType is returned when a parameter holds a value of
	// an incompatible kind.
	ErrWrongParameterType = param.ErrWrongType

	// ErrWrongParameterValue is returned when a parameter is present and
	// well-typed but outside the method's valid domain.
	ErrWrongParameterValue = errors.New("wrong parameter value")

	// ErrUnsupportedMethod is returned for a recognized method selector
	// with no implementation in this engine.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrCapabilityMissing is returned when the selected method requires a
	// callback that was not supplied.
	ErrCapabilityMissing = errors.New("required callback is not supplied")

	// ErrNotEnoughMemory is returned when a matrix allocation would exceed
	// the configured memory budget.
	ErrNotEnoughMemory = resource.ErrNotEnoughMemory

	// ErrCancelled is returned when the cancellation hook (or the ambient
	// context) signaled during computation.
	ErrCancelled = core.ErrCancelled

	// ErrEigendecomposition is returned when the eigensolver fails to
	// converge. Solver failures propagate; they are never masked by a
	// default result.
	ErrEigendecomposition = eigen.ErrNotConverged

	// ErrDimensionMismatch is returned by Project when a feature vector's
	// length does not match the projection basis.
	ErrDimensionMismatch = errors.New("feature vector dimension mismatch")
)

func wrongValueError(key param.Key, detail string) error {
	return fmt.Errorf("%s: %w: %s", key, ErrWrongParameterValue, detail)
}

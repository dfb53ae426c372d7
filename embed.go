package tapkee

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/canautumn/tapkee/eigen"
	"github.com/canautumn/tapkee/internal/core"
	"github.com/canautumn/tapkee/param"
)

// Embed computes a lower-dimensional embedding of data using the method
// selected in p. Raw data layout stays with the caller: the engine only
// sees data through the capability callbacks in cb, and borrows the data
// slice read-only for the duration of the call.
//
// Configuration errors (missing selector, wrong types, values out of
// domain, missing capabilities) are detected before any heavy computation.
// Numerical and resource errors surface once the corresponding step runs
// and are never downgraded to a default result. For a fixed configuration,
// data sequence and deterministic callbacks the output is deterministic up
// to the chosen eigensolver's tolerance.
func Embed[T any](ctx context.Context, data []T, cb Callbacks[T], p param.Map, optFns ...Option) (Result, error) {
	opts := newOptions(optFns...)

	start := time.Now()
	res, method, target, err := embed(ctx, data, cb, p, opts)
	elapsed := time.Since(start)

	opts.logger.LogEmbed(ctx, method, len(data), target, elapsed, err)
	opts.metrics.RecordEmbed(method, len(data), elapsed, err)
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func embed[T any](ctx context.Context, data []T, cb Callbacks[T], p param.Map, opts options) (Result, Method, int, error) {
	cfg, err := param.ValidateAndDefault(p)
	if err != nil {
		return Result{}, MethodUnknown, 0, err
	}

	method, err := param.EnumAs[Method](cfg[param.KeyMethod])
	if err != nil {
		return Result{}, MethodUnknown, 0, fmt.Errorf("%s: %w", param.KeyMethod, err)
	}
	if !method.valid() {
		return Result{}, method, 0, wrongValueError(param.KeyMethod, "unknown method")
	}

	target, err := cfg.Int(param.KeyTargetDimension)
	if err != nil {
		return Result{}, method, 0, err
	}

	kc, err := newRunContext(ctx, cfg)
	if err != nil {
		return Result{}, method, target, err
	}
	if kc.Cancelled() {
		return Result{}, method, target, kc.Err("embedding")
	}

	if err := cb.require(method.requiredCapabilities()); err != nil {
		return Result{}, method, target, fmt.Errorf("%s: %w", method, err)
	}
	if len(data) == 0 {
		return Result{}, method, target, fmt.Errorf("%w: empty data sequence", ErrWrongParameterValue)
	}
	if target < 1 {
		return Result{}, method, target, wrongValueError(param.KeyTargetDimension, "must be at least 1")
	}
	if target > len(data) {
		return Result{}, method, target, wrongValueError(param.KeyTargetDimension, "exceeds sample count")
	}

	h := handlerFor[T](method)
	if h == nil {
		return Result{}, method, target, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	e := &engine[T]{cfg: cfg, data: data, cb: cb, kc: kc, opts: opts, method: method}
	res, err := h(e)
	if err != nil {
		return Result{}, method, target, err
	}

	// The orientation transform is the only global, method-independent
	// post-processing step.
	if cols, err := cfg.Bool(param.KeyOutputColumnsAreSamples); err != nil {
		return Result{}, method, target, err
	} else if cols {
		res.Embedding = mat.DenseCopyOf(res.Embedding.T())
	}

	kc.Progress(1)
	return res, method, target, nil
}

// newRunContext reads the optional progress and cancellation hooks from the
// configuration and folds the caller's context into the cancel predicate.
func newRunContext(ctx context.Context, cfg param.Map) (*core.Context, error) {
	var progress func(float64)
	var cancel func() bool
	if v, ok := cfg[param.KeyProgressFunc]; ok {
		fn, err := param.FuncAs[func(float64)](v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", param.KeyProgressFunc, err)
		}
		progress = fn
	}
	if v, ok := cfg[param.KeyCancelFunc]; ok {
		fn, err := param.FuncAs[func() bool](v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", param.KeyCancelFunc, err)
		}
		cancel = fn
	}
	return core.NewContext(ctx, progress, cancel), nil
}

// engine carries everything a method variant receives from the dispatcher:
// the validated configuration, the borrowed data sequence, the capability
// adapter and the execution context. The call contract is uniform across
// variants regardless of which capabilities a variant actually uses.
type engine[T any] struct {
	cfg    param.Map
	data   []T
	cb     Callbacks[T]
	kc     *core.Context
	opts   options
	method Method
}

func (e *engine[T]) target() int {
	t, _ := e.cfg.Int(param.KeyTargetDimension)
	return t
}

func (e *engine[T]) workers() int {
	return e.opts.resources.Workers()
}

// reserveSquare claims an n×n float64 matrix from the memory budget and
// returns the matching release.
func (e *engine[T]) reserveSquare(n int) (func(), error) {
	bytes := int64(n) * int64(n) * 8
	if err := e.opts.resources.Reserve(bytes); err != nil {
		return nil, err
	}
	return func() { e.opts.resources.Release(bytes) }, nil
}

// decompose runs the configured eigen backend and records the solve.
func (e *engine[T]) decompose(a mat.Symmetric, rank, skip int, largest bool) (eigen.Spectrum, error) {
	backend, err := param.EnumAs[eigen.Backend](e.cfg[param.KeyEigenBackend])
	if err != nil {
		return eigen.Spectrum{}, fmt.Errorf("%s: %w", param.KeyEigenBackend, err)
	}

	start := time.Now()
	sp, err := eigen.Decompose(a, rank, skip, largest, backend)
	e.opts.metrics.RecordEigensolve(backend.String(), time.Since(start), err)
	if err != nil {
		return eigen.Spectrum{}, fmt.Errorf("%s: %w", e.method, err)
	}
	return sp, nil
}

// Package resource bounds the memory and concurrency used by a reduction.
//
// Kernel and Gram matrices are quadratic in sample count, so the engine
// reserves their size from a Controller before allocating. The reservation
// is the observable analogue of an allocation failure: an exceeded budget
// surfaces as ErrNotEnoughMemory instead of an OOM kill.
package resource

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrNotEnoughMemory is returned when a reservation would exceed the
// configured memory budget.
var ErrNotEnoughMemory = errors.New("not enough memory")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard budget for matrix allocations.
	// If 0, no budget is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxWorkers bounds the goroutines used for parallel matrix fills.
	// If 0, defaults to GOMAXPROCS.
	MaxWorkers int
}

// Controller tracks and limits engine resources.
// A nil *Controller is valid and enforces nothing.
type Controller struct {
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64
	workers int
}

// NewController creates a controller with the given limits.
func NewController(cfg Config) *Controller {
	c := &Controller{workers: cfg.MaxWorkers}
	if c.workers <= 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}
	return c
}

// Reserve claims bytes from the budget without blocking. Computations fail
// fast on an exhausted budget rather than queue behind each other.
func (c *Controller) Reserve(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}
	if c.memSem != nil && !c.memSem.TryAcquire(bytes) {
		return fmt.Errorf("%w: %d bytes requested, %d in use", ErrNotEnoughMemory, bytes, c.memUsed.Load())
	}
	c.memUsed.Add(bytes)
	return nil
}

// Release returns bytes to the budget.
func (c *Controller) Release(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the currently reserved bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// Workers returns the parallel fill worker bound.
func (c *Controller) Workers() int {
	if c == nil || c.workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.workers
}

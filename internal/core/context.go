// Package core carries the execution side-channel through a reduction:
// progress reporting and cooperative cancellation. A Context is scoped to a
// single top-level embedding call and holds no state afterwards.
package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
)

// ErrCancelled is returned when the cancellation hook (or the caller's
// context) signals during a computation.
var ErrCancelled = errors.New("computation cancelled")

// Progress hooks can fire from tight fill loops; cap delivery so the
// caller's hook is advisory, not a hot path.
const progressEventsPerSecond = 30

// Context threads progress and cancellation hooks through primitives and
// method implementations. Both hooks are optional. Safe for concurrent use
// by parallel fill workers.
type Context struct {
	ctx      context.Context
	progress func(float64)
	cancel   func() bool

	mu      sync.Mutex
	limiter *rate.Limiter
	last    float64
}

// NewContext builds a Context for one embedding call. ctx may be nil;
// progress and cancel may be nil.
func NewContext(ctx context.Context, progress func(float64), cancel func() bool) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	c := &Context{ctx: ctx, progress: progress, cancel: cancel}
	if progress != nil {
		c.limiter = rate.NewLimiter(progressEventsPerSecond, 1)
	}
	return c
}

// Cancelled reports whether the caller asked to stop, either through the
// cancellation hook or by cancelling the ambient context.
func (c *Context) Cancelled() bool {
	if c == nil {
		return false
	}
	if c.cancel != nil && c.cancel() {
		return true
	}
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Err returns ErrCancelled annotated with the stage that observed it.
func (c *Context) Err(stage string) error {
	return fmt.Errorf("%s: %w", stage, ErrCancelled)
}

// Progress reports a completion fraction in [0,1]. Fractions are clamped
// monotone non-decreasing; intermediate reports are rate-limited, the
// terminal 1.0 is always delivered.
func (c *Context) Progress(frac float64) {
	if c == nil || c.progress == nil {
		return
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	// The hook runs under the lock so concurrent fill workers cannot
	// deliver fractions out of order.
	c.mu.Lock()
	defer c.mu.Unlock()
	if frac < c.last {
		frac = c.last
	}
	if frac < 1 && !c.limiter.Allow() {
		return
	}
	c.last = frac
	c.progress(frac)
}

package tapkee

import "github.com/canautumn/tapkee/resource"

type options struct {
	logger    *Logger
	metrics   MetricsCollector
	resources *resource.Controller
}

// Option configures engine-level behavior of Embed and Project. The
// per-call algorithm parameters live in the param.Map instead.
type Option func(*options)

func newOptions(optFns ...Option) options {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := tapkee.NewJSONLogger(slog.LevelInfo)
//	res, err := tapkee.Embed(ctx, data, cb, params, tapkee.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithResources bounds the memory and worker count of a reduction. The
// quadratic kernel and Gram matrices are reserved against the controller's
// budget before allocation; an exceeded budget fails the call with
// ErrNotEnoughMemory instead of exhausting the process.
func WithResources(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

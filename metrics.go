package tapkee

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordEmbed is called after each embedding run.
	// duration is the total time taken, err is nil if successful.
	RecordEmbed(m Method, samples int, duration time.Duration, err error)

	// RecordProject is called after each projection replay.
	RecordProject(samples int, duration time.Duration, err error)

	// RecordMatrixBuild is called after a covariance or kernel matrix is
	// constructed. kind is "covariance", "kernel" or "gram"; order is the
	// matrix order.
	RecordMatrixBuild(kind string, order int, duration time.Duration)

	// RecordEigensolve is called after each eigendecomposition.
	RecordEigensolve(backend string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEmbed(Method, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordProject(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordMatrixBuild(string, int, time.Duration)  {}
func (NoopMetricsCollector) RecordEigensolve(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EmbedCount       atomic.Int64
	EmbedErrors      atomic.Int64
	EmbedTotalNanos  atomic.Int64
	ProjectCount     atomic.Int64
	ProjectErrors    atomic.Int64
	MatrixBuildCount atomic.Int64
	EigensolveCount  atomic.Int64
	EigensolveErrors atomic.Int64
}

// RecordEmbed implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEmbed(m Method, samples int, duration time.Duration, err error) {
	b.EmbedCount.Add(1)
	b.EmbedTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EmbedErrors.Add(1)
	}
}

// RecordProject implements MetricsCollector.
func (b *BasicMetricsCollector) RecordProject(samples int, duration time.Duration, err error) {
	b.ProjectCount.Add(1)
	if err != nil {
		b.ProjectErrors.Add(1)
	}
}

// RecordMatrixBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatrixBuild(kind string, order int, duration time.Duration) {
	b.MatrixBuildCount.Add(1)
}

// RecordEigensolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEigensolve(backend string, duration time.Duration, err error) {
	b.EigensolveCount.Add(1)
	if err != nil {
		b.EigensolveErrors.Add(1)
	}
}

// AvgEmbedNanos returns the mean embed duration in nanoseconds.
func (b *BasicMetricsCollector) AvgEmbedNanos() int64 {
	count := b.EmbedCount.Load()
	if count == 0 {
		return 0
	}
	return b.EmbedTotalNanos.Load() / count
}

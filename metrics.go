package kmeans

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    fitCounter    prometheus.Counter
//	    fitHistogram  prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordFit(duration time.Duration, iterations int, converged bool, err error) {
//	    p.fitCounter.Inc()
//	    p.fitHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordFit is called after each fit.
	// iterations and converged are zero values if err is non-nil.
	RecordFit(duration time.Duration, iterations int, converged bool, err error)

	// RecordIteration is called after each assign/update cycle with the
	// largest centroid shift examined by the convergence check.
	RecordIteration(maxShift float64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(time.Duration, int, bool, error) {}
func (NoopMetricsCollector) RecordIteration(float64)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount       atomic.Int64
	FitErrors      atomic.Int64
	FitConverged   atomic.Int64
	FitTotalNanos  atomic.Int64
	IterationCount atomic.Int64
	lastShiftBits  atomic.Uint64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(duration time.Duration, iterations int, converged bool, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
		return
	}
	if converged {
		b.FitConverged.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(maxShift float64) {
	b.IterationCount.Add(1)
	b.lastShiftBits.Store(math.Float64bits(maxShift))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:       b.FitCount.Load(),
		FitErrors:      b.FitErrors.Load(),
		FitConverged:   b.FitConverged.Load(),
		FitAvgNanos:    b.getAvgFitNanos(),
		IterationCount: b.IterationCount.Load(),
		LastMaxShift:   math.Float64frombits(b.lastShiftBits.Load()),
	}
}

func (b *BasicMetricsCollector) getAvgFitNanos() int64 {
	count := b.FitCount.Load()
	if count == 0 {
		return 0
	}
	return b.FitTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount       int64
	FitErrors      int64
	FitConverged   int64
	FitAvgNanos    int64
	IterationCount int64
	LastMaxShift   float64
}

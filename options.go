package kmeans

import (
	"github.com/hupe1980/kmeans/codec"
	ikmeans "github.com/hupe1980/kmeans/internal/kmeans"
)

// EmptyClusterPolicy decides what happens when a cluster attracts no points.
type EmptyClusterPolicy = ikmeans.EmptyClusterPolicy

const (
	// EmptyClusterError aborts the fit with ErrDegenerateCluster (default).
	EmptyClusterError = ikmeans.EmptyClusterError
	// EmptyClusterKeep leaves the centroid unchanged for that iteration.
	EmptyClusterKeep = ikmeans.EmptyClusterKeep
)

type options struct {
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
	memoryLimit      int64
	emptyCluster     EmptyClusterPolicy
}

// Option configures Fit, FitResult and FitJSON.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		emptyCluster:     EmptyClusterError,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCodec configures the codec FitJSON decodes requests and encodes
// responses with.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger sets the logger. Iteration progress is logged at debug level.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets a metrics collector.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithMemoryLimit caps the memory a single fit may reserve for its points,
// centroids and clusters. A fit that needs more fails with
// ErrResourceExhausted. 0 means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithEmptyClusterPolicy selects how an empty cluster is handled.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyCluster = p
	}
}

package kmeans

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultMaxIterations is the iteration budget when none is given.
	DefaultMaxIterations = 200
	// MaxIterationsLimit is the exclusive upper bound of the iteration budget.
	MaxIterationsLimit = 1000
	// DefaultEpsilon is the default convergence threshold.
	DefaultEpsilon = 0.001
)

var (
	// ErrInvalidK is returned when K is not in (1, N).
	ErrInvalidK = errors.New("kmeans: invalid number of clusters")
	// ErrInvalidMaxIterations is returned when the iteration budget is not in [1, 1000).
	ErrInvalidMaxIterations = errors.New("kmeans: invalid maximum iteration")
	// ErrInvalidEpsilon is returned when epsilon is not a positive finite number.
	ErrInvalidEpsilon = errors.New("kmeans: invalid epsilon")
)

// EmptyClusterPolicy decides what the update step does with a cluster that
// attracted no points.
type EmptyClusterPolicy int

const (
	// EmptyClusterError aborts the run with ErrDegenerateCluster.
	EmptyClusterError EmptyClusterPolicy = iota
	// EmptyClusterKeep leaves the centroid where it was for that iteration.
	EmptyClusterKeep
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case EmptyClusterError:
		return "error"
	case EmptyClusterKeep:
		return "keep"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// Config holds the parameters of a run.
type Config struct {
	// K is the number of clusters.
	K int
	// MaxIterations bounds the number of assign/update cycles.
	MaxIterations int
	// Epsilon is the per-centroid displacement below which a run has converged.
	Epsilon float64
	// EmptyCluster selects the degenerate-cluster policy.
	EmptyCluster EmptyClusterPolicy
}

// DefaultConfig returns a Config for k clusters with the default budget and
// threshold.
func DefaultConfig(k int) Config {
	return Config{
		K:             k,
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
		EmptyCluster:  EmptyClusterError,
	}
}

// validateShape checks the parameters that do not depend on the input size.
func (c Config) validateShape() error {
	var errs []error
	if c.K <= 1 {
		errs = append(errs, fmt.Errorf("%w: k=%d", ErrInvalidK, c.K))
	}
	if c.MaxIterations < 1 || c.MaxIterations >= MaxIterationsLimit {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidMaxIterations, c.MaxIterations))
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidEpsilon, c.Epsilon))
	}
	switch c.EmptyCluster {
	case EmptyClusterError, EmptyClusterKeep:
	default:
		errs = append(errs, fmt.Errorf("kmeans: unknown empty cluster policy %v", c.EmptyCluster))
	}
	return errors.Join(errs...)
}

// Validate checks the configuration against an input of n points:
// 1 < K < n, 1 <= MaxIterations < 1000 and 0 < Epsilon.
// All violations are reported together.
func (c Config) Validate(n int) error {
	var errs []error
	if err := c.validateShape(); err != nil {
		errs = append(errs, err)
	}
	if c.K > 1 && c.K >= n {
		errs = append(errs, fmt.Errorf("%w: k=%d, n=%d", ErrInvalidK, c.K, n))
	}
	return errors.Join(errs...)
}

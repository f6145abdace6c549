package kmeans

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/hupe1980/kmeans/internal/cluster"
	"github.com/hupe1980/kmeans/internal/pointset"
	"github.com/hupe1980/kmeans/internal/resource"
)

// State is the driver's position in its run.
type State int

const (
	StateInitializing State = iota
	StateIterating
	StateConverged
	StateMaxIterReached
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateMaxIterReached:
		return "max_iter_reached"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// IterationStats describes one completed assign/update cycle.
type IterationStats struct {
	// Iteration is 1-based.
	Iteration int
	// MaxShift is the largest centroid displacement examined by the
	// convergence check (which may stop early).
	MaxShift float64
	// Inertia is the within-cluster sum of squares of this iteration's
	// assignment against the centroids it was made with.
	Inertia float64
	// Empty is the number of clusters that attracted no points.
	Empty int
}

// Observer receives progress callbacks from a Driver.
type Observer interface {
	OnIteration(stats IterationStats)
	OnFinish(state State, iterations int)
}

// Result is the outcome of a completed run.
type Result struct {
	Centroids  Centroids
	Iterations int
	State      State
}

// Converged reports whether the run ended because the centroids settled.
func (r *Result) Converged() bool {
	return r.State == StateConverged
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithLogger sets the logger used for per-iteration debug output.
func WithLogger(l *slog.Logger) DriverOption {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithController sets the memory budget runs reserve against.
func WithController(rc *resource.Controller) DriverOption {
	return func(d *Driver) {
		d.rc = rc
	}
}

// WithObserver registers an observer for iteration progress.
func WithObserver(o Observer) DriverOption {
	return func(d *Driver) {
		d.observer = o
	}
}

// Driver runs Lloyd's iterations for a fixed Config.
// A Driver holds no per-run state and can be reused.
type Driver struct {
	cfg      Config
	logger   *slog.Logger
	rc       *resource.Controller
	observer Observer
}

// NewDriver validates cfg and returns a Driver.
// K is checked against the input size when Run is called.
func NewDriver(cfg Config, opts ...DriverOption) (*Driver, error) {
	if err := cfg.validateShape(); err != nil {
		return nil, err
	}

	d := &Driver{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Config returns the driver's configuration.
func (d *Driver) Config() Config {
	return d.cfg
}

// Run clusters points. Every reservation made for the run is released before
// Run returns, whether it succeeds or not. On error no result is returned.
func (d *Driver) Run(points *pointset.Set) (*Result, error) {
	return d.RunContext(context.Background(), points)
}

// RunContext is Run with cancellation. The context is checked before every
// assignment step.
func (d *Driver) RunContext(ctx context.Context, points *pointset.Set) (*Result, error) {
	scope := resource.NewScope(d.rc)
	defer scope.Close()

	if points == nil || points.Len() == 0 {
		return nil, pointset.ErrEmpty
	}
	if uint64(points.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("kmeans: %d points exceed the supported maximum", points.Len())
	}

	k, n, dim := d.cfg.K, points.Len(), points.Dim()
	centroidBytes := int64(k) * int64(dim) * 8
	partitionBytes := cluster.EstimateBytes(k, n)

	state := StateInitializing
	if err := scope.Acquire(centroidBytes); err != nil {
		return nil, err
	}
	centroids, err := Initialize(points, k)
	if err != nil {
		return nil, err
	}

	state = StateIterating
	iteration := 0
	for state == StateIterating {
		iteration++

		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", iteration, err)
		}
		if err := scope.Acquire(partitionBytes); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", iteration, err)
		}
		partition := Assign(points, centroids)

		if err := scope.Acquire(centroidBytes); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", iteration, err)
		}
		next, err := Update(points, partition, centroids, d.cfg.EmptyCluster)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", iteration, err)
		}

		converged, maxShift := Converged(centroids, next, d.cfg.Epsilon)

		stats := IterationStats{
			Iteration: iteration,
			MaxShift:  maxShift,
			Empty:     len(partition.Empty()),
		}
		if d.observer != nil {
			stats.Inertia = Inertia(points, partition, centroids)
			d.observer.OnIteration(stats)
		}
		d.logger.Debug("kmeans iteration",
			"iteration", iteration,
			"max_shift", maxShift,
			"empty_clusters", stats.Empty,
		)

		// The partition and the previous centroids are discarded here.
		scope.Release(partitionBytes)
		scope.Release(centroidBytes)
		centroids = next

		switch {
		case converged:
			state = StateConverged
		case iteration >= d.cfg.MaxIterations:
			state = StateMaxIterReached
		}
	}

	if d.observer != nil {
		d.observer.OnFinish(state, iteration)
	}
	d.logger.Debug("kmeans finished",
		"state", state.String(),
		"iterations", iteration,
		"peak_bytes", scope.Peak(),
	)

	return &Result{
		Centroids:  centroids,
		Iterations: iteration,
		State:      state,
	}, nil
}

package kmeans

import (
	"fmt"
	"time"

	ikmeans "github.com/hupe1980/kmeans/internal/kmeans"
	"github.com/hupe1980/kmeans/internal/pointset"
	"github.com/hupe1980/kmeans/internal/resource"
)

// Result is the outcome of FitResult.
type Result struct {
	// Centroids holds k rows of d coordinates, in centroid index order.
	Centroids [][]float64
	// Iterations is the number of assign/update cycles that ran.
	Iterations int
	// Converged is false when the iteration budget ran out first.
	Converged bool
}

// Fit clusters points into k groups and returns the k centroids in index
// order. Centroid i is seeded from points[i]. The run stops when every
// centroid moves less than epsilon or after maxIter iterations.
//
// All parameters are required: 1 < k < len(points), 1 <= maxIter < 1000,
// epsilon > 0. Every point must have the length of the first one.
func Fit(points [][]float64, k, maxIter int, epsilon float64, opts ...Option) ([][]float64, error) {
	res, err := FitResult(points, k, maxIter, epsilon, opts...)
	if err != nil {
		return nil, err
	}
	return res.Centroids, nil
}

// FitResult is like Fit but also reports how the run ended.
func FitResult(points [][]float64, k, maxIter int, epsilon float64, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	logger := o.logger.WithK(k)

	start := time.Now()
	res, err := fit(points, ikmeans.Config{
		K:             k,
		MaxIterations: maxIter,
		Epsilon:       epsilon,
		EmptyCluster:  o.emptyCluster,
	}, o, logger)
	err = translateError(err)

	if err != nil {
		o.metricsCollector.RecordFit(time.Since(start), 0, false, err)
		logger.LogFit(len(points), 0, false, err)
		return nil, err
	}

	o.metricsCollector.RecordFit(time.Since(start), res.Iterations, res.Converged(), nil)
	logger.LogFit(len(points), res.Iterations, res.Converged(), nil)

	return &Result{
		Centroids:  res.Centroids.Rows(),
		Iterations: res.Iterations,
		Converged:  res.Converged(),
	}, nil
}

func fit(points [][]float64, cfg ikmeans.Config, o options, logger *Logger) (*ikmeans.Result, error) {
	if len(points) == 0 {
		return nil, pointset.ErrEmpty
	}
	if err := cfg.Validate(len(points)); err != nil {
		return nil, err
	}

	rc := resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})
	scope := resource.NewScope(rc)
	defer scope.Close()

	set, err := pointset.FromRows(points, scope)
	if err != nil {
		return nil, fmt.Errorf("load points: %w", err)
	}

	driverOpts := []ikmeans.DriverOption{
		ikmeans.WithLogger(logger.WithDimension(set.Dim()).Logger),
		ikmeans.WithController(rc),
	}
	if _, noop := o.metricsCollector.(NoopMetricsCollector); !noop {
		driverOpts = append(driverOpts, ikmeans.WithObserver(metricsObserver{mc: o.metricsCollector}))
	}

	driver, err := ikmeans.NewDriver(cfg, driverOpts...)
	if err != nil {
		return nil, err
	}

	return driver.Run(set)
}

// metricsObserver forwards driver progress to a MetricsCollector.
type metricsObserver struct {
	mc MetricsCollector
}

func (m metricsObserver) OnIteration(s ikmeans.IterationStats) {
	m.mc.RecordIteration(s.MaxShift)
}

func (metricsObserver) OnFinish(ikmeans.State, int) {}

package kmeans

import (
	"errors"
	"fmt"

	ikmeans "github.com/hupe1980/kmeans/internal/kmeans"
	"github.com/hupe1980/kmeans/internal/pointset"
	"github.com/hupe1980/kmeans/internal/resource"
)

var (
	// ErrInvalidK is returned when k is not in (1, n).
	ErrInvalidK = errors.New("invalid number of clusters")
	// ErrInvalidMaxIterations is returned when the iteration budget is not in [1, 1000).
	ErrInvalidMaxIterations = errors.New("invalid maximum iteration")
	// ErrInvalidEpsilon is returned when epsilon is not a positive finite number.
	ErrInvalidEpsilon = errors.New("invalid epsilon")
	// ErrEmptyInput is returned when there are no points or the points have no coordinates.
	ErrEmptyInput = errors.New("empty input")
	// ErrDegenerateCluster is returned when a cluster becomes empty under EmptyClusterError.
	ErrDegenerateCluster = errors.New("degenerate cluster")
	// ErrResourceExhausted is returned when a fit exceeds its memory limit.
	ErrResourceExhausted = errors.New("failed to allocate memory")
	// ErrInvalidRequest is returned by FitJSON for undecodable or incomplete requests.
	ErrInvalidRequest = errors.New("invalid request")
)

// ErrDimensionMismatch indicates a point whose length differs from the first point.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Row      int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Row, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidPoint indicates a NaN or infinite coordinate.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidPoint struct {
	Row    int
	Column int
	cause  error
}

func (e *ErrInvalidPoint) Error() string {
	return fmt.Sprintf("invalid point %d: coordinate %d is not finite", e.Row, e.Column)
}

func (e *ErrInvalidPoint) Unwrap() error { return e.cause }

// sentinels maps internal errors to their public counterparts.
var sentinels = []struct {
	internal error
	public   error
}{
	{ikmeans.ErrInvalidK, ErrInvalidK},
	{ikmeans.ErrNotEnoughPoints, ErrInvalidK},
	{ikmeans.ErrInvalidMaxIterations, ErrInvalidMaxIterations},
	{ikmeans.ErrInvalidEpsilon, ErrInvalidEpsilon},
	{ikmeans.ErrDegenerateCluster, ErrDegenerateCluster},
	{pointset.ErrEmpty, ErrEmptyInput},
	{pointset.ErrZeroDimension, ErrEmptyInput},
	{resource.ErrMemoryLimitExceeded, ErrResourceExhausted},
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *pointset.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Row: dm.Row, Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var iv *pointset.ErrInvalidValue
	if errors.As(err, &iv) {
		return &ErrInvalidPoint{Row: iv.Row, Column: iv.Column, cause: err}
	}

	// Configuration errors may be joined; keep every match.
	var public []error
	for _, s := range sentinels {
		if errors.Is(err, s.internal) && !containsErr(public, s.public) {
			public = append(public, s.public)
		}
	}
	switch len(public) {
	case 0:
		return err
	case 1:
		return fmt.Errorf("%w: %w", public[0], err)
	default:
		return fmt.Errorf("%w: %w", errors.Join(public...), err)
	}
}

func containsErr(errs []error, target error) bool {
	for _, e := range errs {
		if e == target {
			return true
		}
	}
	return false
}

package kmeans

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/internal/cluster"
	"github.com/hupe1980/kmeans/internal/pointset"
)

var (
	// ErrNotEnoughPoints is returned when the input holds fewer than K points.
	ErrNotEnoughPoints = errors.New("kmeans: fewer points than clusters")
	// ErrDegenerateCluster is returned when a cluster is empty under EmptyClusterError.
	ErrDegenerateCluster = errors.New("kmeans: degenerate cluster")
)

// Centroids holds K centroids of dimension Dim in one row-major slice.
// Centroid i always lives at index i.
type Centroids struct {
	Data []float64
	Dim  int
}

// NewCentroids allocates k zero centroids of dimension dim.
func NewCentroids(k, dim int) Centroids {
	return Centroids{Data: make([]float64, k*dim), Dim: dim}
}

// K returns the number of centroids.
func (c Centroids) K() int {
	if c.Dim == 0 {
		return 0
	}
	return len(c.Data) / c.Dim
}

// At returns centroid i. The slice aliases c.
func (c Centroids) At(i int) []float64 {
	return c.Data[i*c.Dim : (i+1)*c.Dim : (i+1)*c.Dim]
}

// Rows returns a deep copy as nested slices.
func (c Centroids) Rows() [][]float64 {
	out := make([][]float64, c.K())
	for i := range out {
		out[i] = append([]float64(nil), c.At(i)...)
	}
	return out
}

// Bytes returns the storage size of the centroids.
func (c Centroids) Bytes() int64 {
	return int64(len(c.Data)) * 8
}

// Initialize returns deep copies of the first k points.
func Initialize(points *pointset.Set, k int) (Centroids, error) {
	if k < 1 {
		return Centroids{}, fmt.Errorf("%w: k=%d", ErrInvalidK, k)
	}
	if points.Len() < k {
		return Centroids{}, fmt.Errorf("%w: n=%d, k=%d", ErrNotEnoughPoints, points.Len(), k)
	}

	dim := points.Dim()
	c := NewCentroids(k, dim)
	copy(c.Data, points.Flat()[:k*dim])
	return c, nil
}

// Assign places every point into the cluster of its nearest centroid.
// Ties go to the lowest centroid index.
func Assign(points *pointset.Set, centroids Centroids) *cluster.Partition {
	n := points.Len()
	p := cluster.NewPartition(centroids.K(), n)

	for i := 0; i < n; i++ {
		best, _ := distance.Nearest(points.Row(i), centroids.Data, centroids.Dim)
		p.Assign(i, best)
	}

	return p
}

// Update recomputes every centroid as the mean of its cluster.
// previous supplies the value kept for an empty cluster under EmptyClusterKeep.
func Update(points *pointset.Set, p *cluster.Partition, previous Centroids, policy EmptyClusterPolicy) (Centroids, error) {
	k := p.K()
	dim := points.Dim()
	next := NewCentroids(k, dim)

	for i, c := range p.Assignments() {
		floats.Add(next.At(c), points.Row(i))
	}

	for j := 0; j < k; j++ {
		count := p.Size(j)
		if count == 0 {
			switch policy {
			case EmptyClusterKeep:
				copy(next.At(j), previous.At(j))
				continue
			default:
				return Centroids{}, fmt.Errorf("%w: cluster %d has no points", ErrDegenerateCluster, j)
			}
		}
		row, size := next.At(j), float64(count)
		for d := range row {
			row[d] /= size
		}
	}

	return next, nil
}

// Converged reports whether every centroid moved strictly less than eps.
// It stops at the first centroid whose shift is >= eps; maxShift is the
// largest shift examined.
func Converged(old, next Centroids, eps float64) (converged bool, maxShift float64) {
	for i := 0; i < old.K(); i++ {
		delta := distance.Euclidean(old.At(i), next.At(i))
		maxShift = math.Max(maxShift, delta)
		if delta >= eps {
			return false, maxShift
		}
	}
	return true, maxShift
}

// Inertia returns the within-cluster sum of squared distances for p.
func Inertia(points *pointset.Set, p *cluster.Partition, centroids Centroids) float64 {
	var sum float64
	for i, c := range p.Assignments() {
		sum += distance.SquaredEuclidean(points.Row(i), centroids.At(c))
	}
	return sum
}

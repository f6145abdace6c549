package distance

import (
	"gonum.org/v1/gonum/floats"
)

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// Euclidean returns sqrt(Σ (a_k - b_k)²).
// Assumes vectors are the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean returns Σ (a_k - b_k)².
// Used for within-cluster sum of squares where the square root is not needed.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Nearest returns the index of the vector in flat (row-major, dim columns)
// closest to v, and the distance to it.
// Ties resolve to the lowest index: only a strict improvement replaces the
// current best. Returns -1 if flat holds no vectors.
func Nearest(v []float64, flat []float64, dim int) (int, float64) {
	best := -1
	minDist := 0.0

	for j := 0; (j+1)*dim <= len(flat); j++ {
		d := Euclidean(v, flat[j*dim:(j+1)*dim])
		if best == -1 || d < minDist {
			minDist = d
			best = j
		}
	}

	return best, minDist
}

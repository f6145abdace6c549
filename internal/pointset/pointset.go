package pointset

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/kmeans/internal/resource"
)

// bytesPerValue is the size of one coordinate.
const bytesPerValue = 8

var (
	// ErrEmpty is returned when a set would contain no points.
	ErrEmpty = errors.New("pointset: no points")
	// ErrZeroDimension is returned when the first point has no coordinates.
	ErrZeroDimension = errors.New("pointset: point has no coordinates")
)

// ErrDimensionMismatch indicates a row whose length differs from the first row.
type ErrDimensionMismatch struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("pointset: row %d has %d values, expected %d", e.Row, e.Actual, e.Expected)
}

// ErrInvalidValue indicates a NaN or infinite coordinate.
type ErrInvalidValue struct {
	Row    int
	Column int
	Value  float64
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("pointset: row %d column %d is not finite (%v)", e.Row, e.Column, e.Value)
}

// Set is an immutable collection of N points of dimension d.
type Set struct {
	data []float64
	dim  int
	n    int
}

// FromRows copies rows into a new Set. Every row must have the length of the
// first one and every value must be finite.
func FromRows(rows [][]float64, scope *resource.Scope) (*Set, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	dim := len(rows[0])
	if dim == 0 {
		return nil, ErrZeroDimension
	}

	if err := scope.Acquire(int64(len(rows)) * int64(dim) * bytesPerValue); err != nil {
		return nil, err
	}

	data := make([]float64, 0, len(rows)*dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, &ErrDimensionMismatch{Row: i, Expected: dim, Actual: len(row)}
		}
		if err := checkFinite(i, row); err != nil {
			return nil, err
		}
		data = append(data, row...)
	}

	return &Set{data: data, dim: dim, n: len(rows)}, nil
}

// Len returns the number of points N.
func (s *Set) Len() int {
	return s.n
}

// Dim returns the dimension d.
func (s *Set) Dim() int {
	return s.dim
}

// Row returns point i. The returned slice aliases the set's storage and must
// not be modified.
func (s *Set) Row(i int) []float64 {
	return s.data[i*s.dim : (i+1)*s.dim : (i+1)*s.dim]
}

// Flat returns the row-major backing storage. It must not be modified.
func (s *Set) Flat() []float64 {
	return s.data
}

// Bytes returns the storage size of the set.
func (s *Set) Bytes() int64 {
	return int64(len(s.data)) * bytesPerValue
}

// Rows returns a deep copy of the set as nested slices.
func (s *Set) Rows() [][]float64 {
	out := make([][]float64, s.n)
	for i := range out {
		out[i] = append([]float64(nil), s.Row(i)...)
	}
	return out
}

func checkFinite(row int, values []float64) error {
	for j, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ErrInvalidValue{Row: row, Column: j, Value: v}
		}
	}
	return nil
}

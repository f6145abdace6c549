package pointset

import (
	"github.com/hupe1980/kmeans/internal/resource"
)

// Builder accumulates rows into a Set. The zero value is not usable; call
// NewBuilder.
type Builder struct {
	scope *resource.Scope
	data  []float64
	dim   int
	n     int
}

// NewBuilder creates a Builder whose growth is reserved against scope.
func NewBuilder(scope *resource.Scope) *Builder {
	return &Builder{scope: scope}
}

// Append adds a copy of row. The first row fixes the dimension.
func (b *Builder) Append(row []float64) error {
	if b.n == 0 {
		if len(row) == 0 {
			return ErrZeroDimension
		}
		b.dim = len(row)
	} else if len(row) != b.dim {
		return &ErrDimensionMismatch{Row: b.n, Expected: b.dim, Actual: len(row)}
	}
	if err := checkFinite(b.n, row); err != nil {
		return err
	}

	if need := len(b.data) + len(row); need > cap(b.data) {
		newCap := max(2*cap(b.data), need, 64)
		if err := b.scope.Acquire(int64(newCap-cap(b.data)) * bytesPerValue); err != nil {
			return err
		}
		grown := make([]float64, len(b.data), newCap)
		copy(grown, b.data)
		b.data = grown
	}

	b.data = append(b.data, row...)
	b.n++
	return nil
}

// Len returns the number of rows appended so far.
func (b *Builder) Len() int {
	return b.n
}

// Dim returns the dimension fixed by the first row, or 0 before any row.
func (b *Builder) Dim() int {
	return b.dim
}

// Build returns the accumulated Set. The Builder must not be used afterwards.
func (b *Builder) Build() (*Set, error) {
	if b.n == 0 {
		return nil, ErrEmpty
	}
	s := &Set{data: b.data, dim: b.dim, n: b.n}
	b.data = nil
	return s, nil
}

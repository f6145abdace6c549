package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, math.Sqrt(27)},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Pythagorean", []float64{0, 0}, []float64{3, 4}, 5},
		{"Single", []float64{-2}, []float64{3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Euclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestSquaredEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SquaredEuclidean(tt.a, tt.b))
		})
	}
}

func TestNearest(t *testing.T) {
	flat := []float64{
		0, 0, // 0
		10, 10, // 1
		20, 20, // 2
	}

	idx, d := Nearest([]float64{1, 1}, flat, 2)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, math.Sqrt2, d, 1e-12)

	idx, _ = Nearest([]float64{19, 19}, flat, 2)
	assert.Equal(t, 2, idx)

	t.Run("TieGoesToLowestIndex", func(t *testing.T) {
		idx, _ := Nearest([]float64{5, 5}, flat, 2)
		assert.Equal(t, 0, idx)

		idx, _ = Nearest([]float64{15, 15}, flat, 2)
		assert.Equal(t, 1, idx)
	})

	t.Run("Empty", func(t *testing.T) {
		idx, _ := Nearest([]float64{1, 1}, nil, 2)
		assert.Equal(t, -1, idx)
	})
}

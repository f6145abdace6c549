package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformPoints(8, 32)

	assert.Len(t, v, 8)
	assert.Len(t, v[0], 32)
	assert.Less(t, v[0][0], 1.0)
	assert.GreaterOrEqual(t, v[1][0], 0.0)
}

func TestBlobs(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Blobs(30, 2, 3, 0.01)
	assert.Len(t, v, 30)

	// Points of the same blob stay close together.
	for i := 3; i < len(v); i++ {
		dx := v[i][0] - v[i%3][0]
		dy := v[i][1] - v[i%3][1]
		assert.Less(t, dx*dx+dy*dy, 0.1)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(7)
	a := rng.UniformPoints(4, 2)
	rng.Reset()
	b := rng.UniformPoints(4, 2)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(7), rng.Seed())
}

func TestFormatPoints(t *testing.T) {
	got := FormatPoints([][]float64{{0, 1.5}, {-2, 1e-7}})
	assert.Equal(t, "0,1.5\n-2,1e-07\n", got)
}

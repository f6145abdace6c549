package pointset

import (
	"math"
	"testing"

	"github.com/hupe1980/kmeans/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	rows := [][]float64{{0, 0}, {0, 1}, {10, 10}}

	s, err := FromRows(rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, []float64{0, 1}, s.Row(1))
	assert.Equal(t, int64(48), s.Bytes())

	// The set owns a copy.
	rows[1][1] = 42
	assert.Equal(t, []float64{0, 1}, s.Row(1))

	assert.Equal(t, [][]float64{{0, 0}, {0, 1}, {10, 10}}, s.Rows())
}

func TestFromRows_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := FromRows(nil, nil)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("ZeroDimension", func(t *testing.T) {
		_, err := FromRows([][]float64{{}}, nil)
		assert.ErrorIs(t, err, ErrZeroDimension)
	})

	t.Run("Ragged", func(t *testing.T) {
		_, err := FromRows([][]float64{{1, 2}, {3}}, nil)
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 1, dm.Row)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 1, dm.Actual)
	})

	t.Run("NaN", func(t *testing.T) {
		_, err := FromRows([][]float64{{1, 2}, {3, math.NaN()}}, nil)
		var iv *ErrInvalidValue
		require.ErrorAs(t, err, &iv)
		assert.Equal(t, 1, iv.Row)
		assert.Equal(t, 1, iv.Column)
	})

	t.Run("Inf", func(t *testing.T) {
		_, err := FromRows([][]float64{{math.Inf(-1)}}, nil)
		var iv *ErrInvalidValue
		assert.ErrorAs(t, err, &iv)
	})

	t.Run("MemoryLimit", func(t *testing.T) {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 16})
		scope := resource.NewScope(rc)
		defer scope.Close()

		_, err := FromRows([][]float64{{1, 2}, {3, 4}}, scope)
		assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
	})
}

func TestBuilder(t *testing.T) {
	rc := resource.NewController(resource.Config{})
	scope := resource.NewScope(rc)

	b := NewBuilder(scope)
	for i := 0; i < 100; i++ {
		require.NoError(t, b.Append([]float64{float64(i), float64(-i), 0.5}))
	}
	assert.Equal(t, 100, b.Len())
	assert.Equal(t, 3, b.Dim())
	assert.GreaterOrEqual(t, scope.Held(), int64(100*3*8))

	s, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 100, s.Len())
	assert.Equal(t, []float64{42, -42, 0.5}, s.Row(42))

	scope.Close()
	assert.Zero(t, rc.InUse())
}

func TestBuilder_Errors(t *testing.T) {
	b := NewBuilder(nil)

	_, err := b.Build()
	assert.ErrorIs(t, err, ErrEmpty)

	assert.ErrorIs(t, b.Append(nil), ErrZeroDimension)

	require.NoError(t, b.Append([]float64{1, 2}))
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, b.Append([]float64{1, 2, 3}), &dm)
	assert.Equal(t, 1, dm.Row)

	var iv *ErrInvalidValue
	require.ErrorAs(t, b.Append([]float64{math.NaN(), 1}), &iv)

	// Rejected rows leave the builder unchanged.
	assert.Equal(t, 1, b.Len())
}

func TestBuilder_MemoryLimit(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1024})
	scope := resource.NewScope(rc)
	defer scope.Close()

	b := NewBuilder(scope)
	var err error
	for i := 0; i < 1000 && err == nil; i++ {
		err = b.Append([]float64{1, 2, 3, 4})
	}
	require.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
	assert.LessOrEqual(t, rc.InUse(), int64(1024))
}

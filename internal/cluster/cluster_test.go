package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	p := NewPartition(3, 5)
	assert.Equal(t, 3, p.K())
	assert.Equal(t, 5, p.N())
	assert.Equal(t, -1, p.ClusterOf(0))
	assert.Error(t, p.Validate())

	p.Assign(0, 0)
	p.Assign(1, 0)
	p.Assign(2, 2)
	p.Assign(3, 2)
	p.Assign(4, 2)

	require.NoError(t, p.Validate())
	assert.Equal(t, 2, p.Size(0))
	assert.Equal(t, 0, p.Size(1))
	assert.Equal(t, 3, p.Size(2))
	assert.Equal(t, []int{1}, p.Empty())
	assert.Equal(t, []uint32{2, 3, 4}, p.Members(2))
	assert.Equal(t, []int{0, 0, 2, 2, 2}, p.Assignments())

	// Reassignment moves the point.
	p.Assign(4, 1)
	require.NoError(t, p.Validate())
	assert.Equal(t, 1, p.ClusterOf(4))
	assert.Equal(t, []uint32{2, 3}, p.Members(2))
	assert.Empty(t, p.Empty())
	assert.Positive(t, p.Bytes())
}

func TestPartition_ForEach(t *testing.T) {
	p := NewPartition(2, 4)
	for i := 0; i < 4; i++ {
		p.Assign(i, i%2)
	}

	var seen []int
	p.ForEach(1, func(point int) bool {
		seen = append(seen, point)
		return true
	})
	assert.Equal(t, []int{1, 3}, seen)

	seen = seen[:0]
	p.ForEach(0, func(point int) bool {
		seen = append(seen, point)
		return false
	})
	assert.Equal(t, []int{0}, seen)
}

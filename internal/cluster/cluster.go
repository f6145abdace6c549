// Package cluster holds the per-iteration partition of points into K clusters.
//
// Each cluster is a Roaring bitmap of point indices. A dense assignment slice
// (point -> cluster) is kept alongside so the update step can stream points in
// input order without iterating K bitmaps.
package cluster

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Partition assigns each of N points to exactly one of K clusters.
type Partition struct {
	members    []*roaring.Bitmap
	assignment []int
}

// NewPartition creates an empty partition of n points into k clusters.
// Every point starts unassigned (-1).
func NewPartition(k, n int) *Partition {
	p := &Partition{
		members:    make([]*roaring.Bitmap, k),
		assignment: make([]int, n),
	}
	for i := range p.members {
		p.members[i] = roaring.New()
	}
	for i := range p.assignment {
		p.assignment[i] = -1
	}
	return p
}

// Assign places point into cluster c, moving it out of its previous cluster.
func (p *Partition) Assign(point, c int) {
	if prev := p.assignment[point]; prev >= 0 {
		p.members[prev].Remove(uint32(point)) //nolint:gosec // point < n, n fits uint32 (checked by callers)
	}
	p.assignment[point] = c
	p.members[c].Add(uint32(point)) //nolint:gosec // see above
}

// K returns the number of clusters.
func (p *Partition) K() int {
	return len(p.members)
}

// N returns the number of points.
func (p *Partition) N() int {
	return len(p.assignment)
}

// ClusterOf returns the cluster of point, or -1 if it is unassigned.
func (p *Partition) ClusterOf(point int) int {
	return p.assignment[point]
}

// Assignments returns the dense point -> cluster mapping. It must not be modified.
func (p *Partition) Assignments() []int {
	return p.assignment
}

// Size returns the number of points in cluster c.
func (p *Partition) Size(c int) int {
	return int(p.members[c].GetCardinality())
}

// Members returns the point indices of cluster c in ascending order.
func (p *Partition) Members(c int) []uint32 {
	return p.members[c].ToArray()
}

// ForEach calls fn for each point of cluster c in ascending order until fn
// returns false.
func (p *Partition) ForEach(c int, fn func(point int) bool) {
	it := p.members[c].Iterator()
	for it.HasNext() {
		if !fn(int(it.Next())) {
			return
		}
	}
}

// Empty returns the indices of clusters with no points.
func (p *Partition) Empty() []int {
	var out []int
	for i, m := range p.members {
		if m.IsEmpty() {
			out = append(out, i)
		}
	}
	return out
}

// Validate checks that the clusters are pairwise disjoint and that their union
// covers every point exactly once.
func (p *Partition) Validate() error {
	union := roaring.New()
	var total uint64
	for i, m := range p.members {
		if union.Intersects(m) {
			return fmt.Errorf("cluster: cluster %d overlaps an earlier cluster", i)
		}
		union.Or(m)
		total += m.GetCardinality()
	}

	n := uint64(len(p.assignment))
	if total != n || union.GetCardinality() != n {
		return fmt.Errorf("cluster: %d of %d points assigned", union.GetCardinality(), n)
	}
	if n > 0 && (union.Minimum() != 0 || uint64(union.Maximum()) != n-1) {
		return fmt.Errorf("cluster: assigned indices outside [0,%d)", n)
	}
	for point, c := range p.assignment {
		if c < 0 || !p.members[c].Contains(uint32(point)) { //nolint:gosec // point < n
			return fmt.Errorf("cluster: point %d not in its cluster %d", point, c)
		}
	}
	return nil
}

// Bytes estimates the memory held by the partition.
func (p *Partition) Bytes() int64 {
	size := int64(len(p.assignment)) * 8
	for _, m := range p.members {
		size += int64(m.GetSizeInBytes()) //nolint:gosec // bounded by n
	}
	return size
}

// EstimateBytes returns the reservation made for a partition of n points into
// k clusters before it is built: the dense assignment plus a 4-byte array
// container entry per point and a fixed header per bitmap.
func EstimateBytes(k, n int) int64 {
	return int64(n)*(8+4) + int64(k)*64
}

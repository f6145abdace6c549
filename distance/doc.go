// Package distance provides Euclidean distance calculations over float64 vectors.
//
// Distances are computed with gonum's floats package so that the engine and the
// adapters share one numeric kernel.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	sq := distance.SquaredEuclidean(a, b)
package distance

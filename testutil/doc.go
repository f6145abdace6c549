// Package testutil provides testing utilities for kmeans.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG, Gaussian blob generators and text fixtures.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(100, 3)           // uniform [0, 1)
//	blobs := rng.Blobs(300, 2, 3, 0.1)            // 3 tight clusters
//
// # Text Fixtures
//
//	txt := testutil.FormatPoints(points)          // "x,y\n" lines
package testutil

// Package kmeans computes K centroids for a set of points with Lloyd's algorithm.
//
// The first K points seed the centroids, every point is assigned to its nearest
// centroid by Euclidean distance (ties go to the lowest index), centroids move
// to the mean of their cluster, and the loop stops once every centroid moves
// less than epsilon or the iteration budget is spent. There is no randomness:
// the same input always yields bit-identical centroids.
//
// # Quick Start
//
//	centroids, err := kmeans.Fit(points, 2, 100, 0.001)
//
// FitResult also reports the iteration count and whether the run converged:
//
//	res, err := kmeans.FitResult(points, 2, 100, 0.001,
//	    kmeans.WithLogger(kmeans.NewTextLogger(os.Stderr, slog.LevelDebug)),
//	    kmeans.WithMemoryLimit(64<<20),
//	)
//
// # Crossing a Process Boundary
//
// FitJSON accepts and returns JSON, for callers that cannot link Go code:
//
//	{"points":[[0,0],[0,1],[10,10],[10,11]],"k":2,"max_iter":10,"epsilon":0.001}
//	{"centroids":[[0,0.5],[10,10.5]],"iterations":3,"converged":true}
//
// # Empty Clusters
//
// A centroid that attracts no points cannot be recomputed. By default the fit
// fails with ErrDegenerateCluster; WithEmptyClusterPolicy(EmptyClusterKeep)
// leaves such a centroid in place instead.
//
// # Command Line
//
// cmd/kmeans reads points from standard input and prints the centroids with
// four decimals:
//
//	kmeans 3 100 < points.txt
package kmeans

// Package kmeans implements Lloyd's k-means over a pointset.Set.
//
// One run is initialize, then repeated assign/update/convergence cycles until
// every centroid moves less than epsilon or the iteration budget is spent.
// Initialization copies the first K points, so a run is fully deterministic.
package kmeans

// Package pointset stores the input points of a clustering run.
//
// Points are kept in a single row-major []float64 of length N*d, so row access is
// O(1) and the whole set is one allocation. A Set is read-only once built.
//
// Two construction paths exist:
//
//   - FromRows copies an in-memory [][]float64 (embedded callers).
//   - Builder appends rows one at a time (text scanners), inferring d from the
//     first row.
//
// Both paths reserve their storage against a resource.Scope before growing it.
package pointset

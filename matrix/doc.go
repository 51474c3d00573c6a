// Package matrix offers the dense cost-matrix graph representation consumed
// by the dijkstra package.
//
// The matrix package provides:
//
//   - Cost: an n×n row-major matrix of int64 edge weights with a separate
//     presence flag per cell, so a zero-weight edge is distinct from "no edge".
//   - FromDense: a constructor for legacy tables where any value <= 0 means
//     "no edge".
//   - Deterministic neighbour iteration in ascending column order.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V²) relaxation scans are acceptable.
package matrix

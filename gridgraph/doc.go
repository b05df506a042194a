// Package gridgraph treats a 2D grid of entry costs as a graph, the common
// substrate for the route searches in this module.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of non-negative costs.
//   - Cell and Heading describe positions and directions of travel.
//   - Step / Neighbors implement 4-directional movement with bounds checks.
//   - ShortestPath computes an unconstrained minimum-cost route (Dijkstra).
//
// Why:
//
//   - Heat-loss maps: every block charges a cost when a crucible enters it.
//   - Oracle: constrained searches degenerate to ShortestPath when runs are unbounded.
//
// Complexity:
//
//   - NewGridGraph / FromDigits: O(W×H) time and memory.
//   - ShortestPath:             O(W×H·log(W×H)), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell cost is below zero.
//   - ErrBadDigit: a digit row contains a non-digit.
//   - ErrCellOutOfBounds: an endpoint lies outside the grid.
//   - ErrNoPath: no path exists between the specified cells.
package gridgraph

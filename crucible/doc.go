// Package crucible provides an exact shortest-path search on cost grids for
// walkers whose straight runs are bounded from below and above.
//
// Overview:
//
//   - The walker (a crucible) enters one block per move and pays that block's cost.
//   - It must travel at least MinRun blocks in a heading before it may turn or stop,
//     and at most MaxRun blocks before it is forced to turn 90° left or right.
//   - It never reverses. The start block is free and the first move may go anywhere.
//   - The search runs Dijkstra over states (cell, heading, run length), so a cell
//     reached with different headings or runs is explored separately.
//
// When to use:
//
//   - Route planning for vehicles with limited steering (crucibles, carts, robots).
//   - Any grid search where “how did I get here” changes what moves come next.
//
// Key features:
//
//   - Functional options: WithRunBounds, Crucible (1..3), UltraCrucible (4..10).
//   - WithReturnPath: reconstructs the cell sequence of the best route.
//   - WithMaxCost: stops once every remaining route is more expensive than the cap.
//   - WithWallThreshold: treats expensive cells as impassable.
//   - WithContext / WithLogger: cancellation and slog debug records.
//   - SolveAll: independent queries in parallel over one shared, read-only grid.
//
// Performance and complexity:
//
//   - Time:  O(S·log S), S = W·H·4·MaxRun states.
//   - Space: O(S) for best costs, the settled set, and the lazy-deletion heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrCellOutOfBounds, ErrSameEndpoints: malformed endpoints or grid.
//   - ErrBadRunBounds, ErrBadMaxCost, ErrBadWallThreshold: malformed options.
//
// An unreachable goal is not an error: Solve returns Reachable == false and
// Cost == math.MaxInt64.
//
// Thread safety:
//
//   - Solve keeps all mutable state local to the call; concurrent calls on the
//     same grid are safe because gridgraph.GridGraph is immutable.
//
// See also:
//
//   - gridgraph.GridGraph.ShortestPath: the unconstrained special case.
package crucible

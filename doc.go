// Package aoc2023 gathers two search engines behind Gear Island's lava
// factory: one routes crucibles over a heat-loss grid, the other counts the
// machine parts a set of sorting workflows accepts.
//
// What is inside?
//
//	gridgraph/  immutable cost grid, cells, headings, plain cell Dijkstra
//	crucible/   run-length constrained shortest path (min/max straight run)
//	partition/  decision trees of range tests, accepted hyper-rectangles and their volumes
//	workflow/   parser and builder turning "px{a<2006:qkq,m>2090:A,rfg}" rules into partition trees
//	examples/   runnable program using both engines on the sample inputs
//
// Design notes:
//
//   - Inputs are validated up front; malformed input is a sentinel error,
//     an unreachable goal is a normal result.
//   - Options are functional (WithLogger, WithContext, WithMaxDepth …) with
//     DefaultOptions() for the zero-config path.
//   - Logging goes through log/slog and is discarded unless a logger is given.
//
// Quick example:
//
//	gg, _ := gridgraph.FromDigits(lines)
//	res, _ := crucible.Solve(gg, gg.TopLeft(), gg.BottomRight(), crucible.UltraCrucible())
//
//	sys, _ := workflow.Parse(text)
//	n, _ := sys.CountAccepted(workflow.DefaultEntry)
package aoc2023

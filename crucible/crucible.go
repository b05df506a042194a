// Package crucible implements a run-length constrained shortest-path search
// on cost grids: Dijkstra over the augmented state space
// (cell, heading, run length).
//
// Complexity:
//
//   - Time:  O(S·log S) where S = W·H·4·MaxRun is the number of states.
//   - Each state is settled at most once.
//   - Each settled state pushes at most 3 successors (straight, left, right).
//   - Space: O(S) for the best-cost map, the settled set, and the heap.
//
// Notes on implementation choices:
//
//   - Cells are validated non-negative by gridgraph, so first pop = optimum.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The first popped goal state whose run satisfies MinRun closes the search.
package crucible

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"

	"github.com/Marlinski/advent-of-code-2023/gridgraph"
)

// pollMask sets how often (in pops) the context is checked for cancellation.
const pollMask = 1<<10 - 1

// Solve computes the minimum total entered-cell cost of a route from start to
// goal in which every straight run is between MinRun and MaxRun blocks long,
// turns are exactly 90°, and the crucible never reverses. The start cell is
// not charged, and the start itself may head off in any direction.
//
// Returns:
//
//   - Result with Reachable == true and the minimum Cost on success.
//   - Result with Reachable == false and Cost == math.MaxInt64 if no admissible
//     route exists (or none within MaxCost). This is not an error.
//   - err for malformed input (see the sentinel errors) or context cancellation.
//
// Preconditions and validation (in order):
//  1. gg must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrBadRunBounds, ErrBadMaxCost, ErrBadWallThreshold).
//  3. start and goal must be in bounds (ErrCellOutOfBounds).
//  4. start must differ from goal (ErrSameEndpoints).
func Solve(gg *gridgraph.GridGraph, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before any search work
	if gg == nil {
		return unreachable(), ErrNilGrid
	}
	if err := cfg.validate(); err != nil {
		return unreachable(), err
	}
	if !gg.InBounds(start) {
		return unreachable(), fmt.Errorf("%w: start %v", ErrCellOutOfBounds, start)
	}
	if !gg.InBounds(goal) {
		return unreachable(), fmt.Errorf("%w: goal %v", ErrCellOutOfBounds, goal)
	}
	if start == goal {
		return unreachable(), fmt.Errorf("%w: %v", ErrSameEndpoints, start)
	}

	// 3) Prepare per-call state; nothing here is shared between calls.
	r := &runner{
		gg:      gg,
		options: cfg,
		goal:    goal,
		dist:    make(map[State]int64),
		settled: make(map[State]bool),
		pq:      make(statePQ, 0, gg.Width*gg.Height),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State)
	}

	cfg.Logger.Debug("crucible: search started",
		slog.Int("width", gg.Width),
		slog.Int("height", gg.Height),
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.Int("min_run", cfg.MinRun),
		slog.Int("max_run", cfg.MaxRun),
	)

	// 4) Seed the frontier and run the main loop.
	r.init(State{Cell: start, Heading: gridgraph.NoHeading})
	res, err := r.process()
	if err != nil {
		cfg.Logger.Debug("crucible: search aborted", slog.String("error", err.Error()))

		return unreachable(), err
	}

	cfg.Logger.Debug("crucible: search finished",
		slog.Bool("reachable", res.Reachable),
		slog.Int64("cost", res.Cost),
		slog.Int("settled", res.Settled),
		slog.Int("pushed", res.Pushed),
	)

	return res, nil
}

// unreachable returns the Result reported when no admissible route was found.
func unreachable() Result {
	return Result{Cost: math.MaxInt64}
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	gg      *gridgraph.GridGraph // The input grid; read-only.
	options Options              // Validated configuration.
	goal    gridgraph.Cell       // Destination cell.
	dist    map[State]int64      // Best known cost per state.
	prev    map[State]State      // Predecessor per state; nil unless ReturnPath.
	settled map[State]bool       // States whose cost is final.
	pq      statePQ              // Min-heap of frontier entries.
	pops    int                  // Number of heap pops so far.
	pushed  int                  // Number of heap pushes so far.
}

// init records the start state at cost zero and pushes it onto the heap.
func (r *runner) init(start State) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// process drains the frontier in increasing cost order.
//
// Loop termination conditions:
//
//   - A goal state with Run ≥ MinRun is popped (success).
//   - The heap becomes empty (unreachable).
//   - The minimum cost in the heap exceeds MaxCost (unreachable within the cap).
//   - The context is cancelled (error).
func (r *runner) process() (Result, error) {
	res := unreachable()
	for r.pq.Len() > 0 {
		if r.pops&pollMask == 0 {
			if err := r.options.Ctx.Err(); err != nil {
				return res, err
			}
		}
		r.pops++

		// 1) Pop the cheapest entry; skip it if its state is already final.
		it := heap.Pop(&r.pq).(stateItem)
		if r.settled[it.state] {
			continue
		}

		// 2) Everything left in the heap costs at least this much.
		if it.cost > r.options.MaxCost {
			break
		}

		// 3) Finalize.
		r.settled[it.state] = true

		// 4) A crucible may only stop at the goal once its run is long enough.
		if it.state.Cell == r.goal && it.state.Run >= r.options.MinRun {
			res.Cost = it.cost
			res.Reachable = true
			res.End = it.state
			if r.prev != nil {
				res.Path = r.path(it.state)
			}
			break
		}

		r.relax(it)
	}
	res.Settled = len(r.settled)
	res.Pushed = r.pushed

	return res, nil
}

// relax pushes every admissible successor of it whose cost improves on the best known.
func (r *runner) relax(it stateItem) {
	for _, h := range r.moves(it.state) {
		next, ok := r.gg.Step(it.state.Cell, h)
		if !ok {
			continue
		}
		w := r.gg.Cost(next)
		if w >= r.options.WallThreshold {
			continue
		}

		run := 1
		if h == it.state.Heading {
			run = it.state.Run + 1
		}
		ns := State{Cell: next, Heading: h, Run: run}
		if r.settled[ns] {
			continue
		}

		nd := it.cost + int64(w)
		if nd > r.options.MaxCost {
			continue
		}
		if old, seen := r.dist[ns]; seen && nd >= old {
			continue
		}

		r.dist[ns] = nd
		if r.prev != nil {
			r.prev[ns] = it.state
		}
		r.push(ns, nd)
	}
}

// moves lists the headings a crucible in state s may take next.
// The start state may go anywhere. Otherwise it continues straight while
// Run < MaxRun and turns left or right once Run ≥ MinRun. Reversal never appears.
func (r *runner) moves(s State) []gridgraph.Heading {
	if s.Heading == gridgraph.NoHeading {
		return gridgraph.Headings[:]
	}
	out := make([]gridgraph.Heading, 0, 3)
	if s.Run < r.options.MaxRun {
		out = append(out, s.Heading)
	}
	if s.Run >= r.options.MinRun {
		out = append(out, s.Heading.Left(), s.Heading.Right())
	}

	return out
}

// path walks predecessors back from end and returns cells start..end.
func (r *runner) path(end State) []gridgraph.Cell {
	var cells []gridgraph.Cell
	for s := end; ; {
		cells = append(cells, s.Cell)
		p, ok := r.prev[s]
		if !ok {
			break
		}
		s = p
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	return cells
}

// push adds a frontier entry and counts it.
func (r *runner) push(s State, cost int64) {
	heap.Push(&r.pq, stateItem{state: s, cost: cost})
	r.pushed++
}

// stateItem is a frontier entry: a search state and its accumulated cost.
type stateItem struct {
	state State
	cost  int64
}

// statePQ is a min-heap of stateItem ordered by cost only.
// Ties are broken arbitrarily; with non-negative costs that never affects optimality.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Package crucible defines core types and configuration options
// for the run-length constrained shortest-path search on cost grids.
//
// A crucible moves one block at a time. It may go straight for at most MaxRun
// blocks and must go straight for at least MinRun blocks before it turns 90°
// or stops. It never reverses. The search state is therefore the tuple
// (cell, heading, run length) rather than the cell alone.
//
// Options:
//
//	– MinRun, MaxRun: straight-run bounds, 1 ≤ MinRun ≤ MaxRun.
//	– ReturnPath:     if true, the cell sequence of the best route is returned.
//	– MaxCost:        optional cap on accumulated cost; states beyond are not explored.
//	– WallThreshold:  cells with cost ≥ threshold are impassable.
//	– Ctx:            cancellation, polled while the frontier is drained.
//	– Logger:         structured debug logging; discarded by default.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid pointer is nil.
//	– ErrCellOutOfBounds  if start or goal lies outside the grid.
//	– ErrSameEndpoints    if start equals goal.
//	– ErrBadRunBounds     if MinRun < 1 or MinRun > MaxRun.
//	– ErrBadMaxCost       if MaxCost < 0.
//	– ErrBadWallThreshold if WallThreshold ≤ 0.
//
// Example usage:
//
//	res, err := Solve(gg, gg.TopLeft(), gg.BottomRight(), UltraCrucible(), WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Reachable {
//	    fmt.Println(res.Cost, len(res.Path))
//	}
package crucible

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/Marlinski/advent-of-code-2023/gridgraph"
)

// Sentinel errors returned by Solve and SolveAll.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrCellOutOfBounds indicates a start or goal outside the grid.
	ErrCellOutOfBounds = errors.New("crucible: cell out of bounds")

	// ErrSameEndpoints indicates that start and goal are the same cell.
	ErrSameEndpoints = errors.New("crucible: start and goal must differ")

	// ErrBadRunBounds indicates run bounds outside 1 ≤ MinRun ≤ MaxRun.
	ErrBadRunBounds = errors.New("crucible: run bounds must satisfy 1 <= min <= max")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("crucible: MaxCost must be non-negative")

	// ErrBadWallThreshold indicates that WallThreshold was set to zero or negative,
	// which would treat every cell (including zero-cost cells) as a wall.
	ErrBadWallThreshold = errors.New("crucible: WallThreshold must be positive")
)

// State is the unit of visitation: a cell, the heading used to enter it, and
// the number of consecutive blocks travelled in that heading (Run).
// The start state has Heading == gridgraph.NoHeading and Run == 0.
// State is comparable and is used directly as a map key.
type State struct {
	Cell    gridgraph.Cell
	Heading gridgraph.Heading
	Run     int
}

// String renders the state as "(row,col)H×run".
func (s State) String() string {
	return fmt.Sprintf("%v%v×%d", s.Cell, s.Heading, s.Run)
}

// Result is the outcome of one Solve call.
//
// Cost is math.MaxInt64 and Reachable is false when no admissible route exists.
// End is the goal state that closed the search. Path is only filled when
// ReturnPath was requested and lists cells from start to goal inclusive.
// Settled and Pushed count frontier activity and are useful for diagnostics.
type Result struct {
	Cost      int64
	Reachable bool
	End       State
	Path      []gridgraph.Cell
	Settled   int
	Pushed    int
}

// Options configures the behavior of the constrained search.
//
// MinRun        – blocks to travel straight before a turn or a stop. Default 1.
// MaxRun        – blocks after which a turn is forced. Default 3.
// ReturnPath    – if true, Result.Path is reconstructed.
// MaxCost       – optional cap on cost to explore. Default math.MaxInt64.
// WallThreshold – cells with cost ≥ threshold are never entered. Default math.MaxInt.
// Ctx           – cancellation context. Default context.Background().
// Logger        – debug logger. Default discards everything.
type Options struct {
	MinRun        int
	MaxRun        int
	ReturnPath    bool
	MaxCost       int64
	WallThreshold int
	Ctx           context.Context
	Logger        *slog.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithRunBounds sets the straight-run bounds. Validation happens in Solve,
// which reports ErrBadRunBounds for min < 1 or min > max.
func WithRunBounds(minRun, maxRun int) Option {
	return func(o *Options) {
		o.MinRun = minRun
		o.MaxRun = maxRun
	}
}

// Crucible selects the standard crucible bounds: at most 3 blocks straight.
func Crucible() Option {
	return WithRunBounds(1, 3)
}

// UltraCrucible selects the ultra crucible bounds: 4 to 10 blocks straight.
func UltraCrucible() Option {
	return WithRunBounds(4, 10)
}

// WithReturnPath enables reconstruction of the best route in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost sets a maximum accumulated cost.
// States whose cost would exceed this value are not explored.
func WithMaxCost(limit int64) Option {
	return func(o *Options) {
		o.MaxCost = limit
	}
}

// WithWallThreshold treats every cell with cost ≥ threshold as impassable.
func WithWallThreshold(threshold int) Option {
	return func(o *Options) {
		o.WallThreshold = threshold
	}
}

// WithContext sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a structured logger for search diagnostics.
// Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//   - MinRun:        1
//   - MaxRun:        3
//   - ReturnPath:    false
//   - MaxCost:       math.MaxInt64 (no cap)
//   - WallThreshold: math.MaxInt (no walls)
//   - Ctx:           context.Background()
//   - Logger:        a logger backed by slog.DiscardHandler
func DefaultOptions() Options {
	return Options{
		MinRun:        1,
		MaxRun:        3,
		ReturnPath:    false,
		MaxCost:       math.MaxInt64,
		WallThreshold: math.MaxInt,
		Ctx:           context.Background(),
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// validate checks option invariants. Called by Solve before any search work.
func (o Options) validate() error {
	if o.MinRun < 1 || o.MinRun > o.MaxRun {
		return fmt.Errorf("%w: got min=%d max=%d", ErrBadRunBounds, o.MinRun, o.MaxRun)
	}
	if o.MaxCost < 0 {
		return ErrBadMaxCost
	}
	if o.WallThreshold <= 0 {
		return ErrBadWallThreshold
	}

	return nil
}

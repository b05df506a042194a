// Package crucible_test contains unit tests for the constrained route search.
// These tests validate input checking, the known heat-loss answers, route
// reconstruction, caps and walls, cancellation, and agreement with plain
// Dijkstra when runs are unconstrained.
package crucible_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Marlinski/advent-of-code-2023/crucible"
	"github.com/Marlinski/advent-of-code-2023/gridgraph"
)

// lavaMap is the 13-column example heat-loss map.
var lavaMap = []string{
	"2413432311323",
	"3215453535623",
	"3255245654254",
	"3446585845452",
	"4546657867536",
	"1438598798454",
	"4457876987766",
	"3637877979653",
	"4654967986887",
	"4564679986453",
	"1224686865563",
	"2546548887735",
	"4322674655533",
}

// bleakMap is the example where an ultra crucible must take an unfortunate route.
var bleakMap = []string{
	"111111111111",
	"999999999991",
	"999999999991",
	"999999999991",
	"999999999991",
}

func mustDigits(t testing.TB, rows []string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.FromDigits(rows)
	require.NoError(t, err)

	return gg
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for malformed inputs.
// ------------------------------------------------------------------------

func TestSolve_Validation(t *testing.T) {
	gg := mustDigits(t, []string{"123", "456"})
	in := gridgraph.Cell{Row: 0, Col: 0}
	out := gridgraph.Cell{Row: 2, Col: 0}

	cases := []struct {
		name  string
		gg    *gridgraph.GridGraph
		start gridgraph.Cell
		goal  gridgraph.Cell
		opts  []crucible.Option
		err   error
	}{
		{"NilGrid", nil, in, gg.BottomRight(), nil, crucible.ErrNilGrid},
		{"StartOutOfBounds", gg, out, gg.BottomRight(), nil, crucible.ErrCellOutOfBounds},
		{"GoalOutOfBounds", gg, in, out, nil, crucible.ErrCellOutOfBounds},
		{"SameEndpoints", gg, in, in, nil, crucible.ErrSameEndpoints},
		{"MinRunZero", gg, in, gg.BottomRight(), []crucible.Option{crucible.WithRunBounds(0, 3)}, crucible.ErrBadRunBounds},
		{"MinAboveMax", gg, in, gg.BottomRight(), []crucible.Option{crucible.WithRunBounds(5, 4)}, crucible.ErrBadRunBounds},
		{"NegativeMaxCost", gg, in, gg.BottomRight(), []crucible.Option{crucible.WithMaxCost(-1)}, crucible.ErrBadMaxCost},
		{"ZeroWall", gg, in, gg.BottomRight(), []crucible.Option{crucible.WithWallThreshold(0)}, crucible.ErrBadWallThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := crucible.Solve(tc.gg, tc.start, tc.goal, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
			assert.False(t, res.Reachable)
			assert.Equal(t, int64(math.MaxInt64), res.Cost)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Known answers, exercised as a suite over the shared example maps.
// ------------------------------------------------------------------------

// ExampleMapsSuite runs the heat-loss examples with both crucible kinds.
type ExampleMapsSuite struct {
	suite.Suite
	lava  *gridgraph.GridGraph
	bleak *gridgraph.GridGraph
}

func (s *ExampleMapsSuite) SetupSuite() {
	s.lava = mustDigits(s.T(), lavaMap)
	s.bleak = mustDigits(s.T(), bleakMap)
}

// TestCrucible verifies the 1..3 answer on the 13-column map.
func (s *ExampleMapsSuite) TestCrucible() {
	res, err := crucible.Solve(s.lava, s.lava.TopLeft(), s.lava.BottomRight(), crucible.Crucible())
	require.NoError(s.T(), err)
	require.True(s.T(), res.Reachable)
	require.Equal(s.T(), int64(102), res.Cost)
	require.Equal(s.T(), s.lava.BottomRight(), res.End.Cell)
	require.GreaterOrEqual(s.T(), res.End.Run, 1)
	require.LessOrEqual(s.T(), res.End.Run, 3)
}

// TestUltraCrucible verifies the 4..10 answer on the 13-column map.
func (s *ExampleMapsSuite) TestUltraCrucible() {
	res, err := crucible.Solve(s.lava, s.lava.TopLeft(), s.lava.BottomRight(), crucible.UltraCrucible())
	require.NoError(s.T(), err)
	require.True(s.T(), res.Reachable)
	require.Equal(s.T(), int64(94), res.Cost)
	require.GreaterOrEqual(s.T(), res.End.Run, 4)
}

// TestUltraCrucibleBleak verifies that a short final run is never accepted.
func (s *ExampleMapsSuite) TestUltraCrucibleBleak() {
	res, err := crucible.Solve(s.bleak, s.bleak.TopLeft(), s.bleak.BottomRight(), crucible.WithRunBounds(4, 10))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Reachable)
	require.Equal(s.T(), int64(71), res.Cost)
}

// TestIdempotent checks that repeated calls agree.
func (s *ExampleMapsSuite) TestIdempotent() {
	first, err := crucible.Solve(s.lava, s.lava.TopLeft(), s.lava.BottomRight(), crucible.UltraCrucible())
	require.NoError(s.T(), err)
	second, err := crucible.Solve(s.lava, s.lava.TopLeft(), s.lava.BottomRight(), crucible.UltraCrucible())
	require.NoError(s.T(), err)
	require.Equal(s.T(), first.Cost, second.Cost)
	require.Equal(s.T(), first.Settled, second.Settled)
}

// TestReturnPath checks the reconstructed route against the run rules and the cost.
func (s *ExampleMapsSuite) TestReturnPath() {
	for _, bounds := range [][2]int{{1, 3}, {4, 10}} {
		res, err := crucible.Solve(s.lava, s.lava.TopLeft(), s.lava.BottomRight(),
			crucible.WithRunBounds(bounds[0], bounds[1]), crucible.WithReturnPath())
		require.NoError(s.T(), err)
		assertRoute(s.T(), s.lava, res, bounds[0], bounds[1])
	}

	res, err := crucible.Solve(s.lava, s.lava.TopLeft(), s.lava.BottomRight(), crucible.Crucible())
	require.NoError(s.T(), err)
	require.Nil(s.T(), res.Path, "Path must stay nil without WithReturnPath")
}

// TestMaxCost checks that the cap hides routes that are too expensive.
func (s *ExampleMapsSuite) TestMaxCost() {
	res, err := crucible.Solve(s.lava, s.lava.TopLeft(), s.lava.BottomRight(),
		crucible.Crucible(), crucible.WithMaxCost(101))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Reachable)
	require.Equal(s.T(), int64(math.MaxInt64), res.Cost)

	res, err = crucible.Solve(s.lava, s.lava.TopLeft(), s.lava.BottomRight(),
		crucible.Crucible(), crucible.WithMaxCost(102))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Reachable)
	require.Equal(s.T(), int64(102), res.Cost)
}

func TestExampleMapsSuite(t *testing.T) {
	suite.Run(t, new(ExampleMapsSuite))
}

// assertRoute verifies adjacency, no reversal, run bounds, and that the cost
// equals the sum of entered cells.
func assertRoute(t *testing.T, gg *gridgraph.GridGraph, res crucible.Result, minRun, maxRun int) {
	t.Helper()
	require.True(t, res.Reachable)
	require.NotEmpty(t, res.Path)
	require.Equal(t, gg.TopLeft(), res.Path[0])
	require.Equal(t, gg.BottomRight(), res.Path[len(res.Path)-1])

	var sum int64
	var runs []int
	prevHeading := gridgraph.NoHeading
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		h := headingBetween(t, a, b)
		require.NotEqual(t, prevHeading.Reverse(), h, "route reverses at %v", a)
		if h == prevHeading {
			runs[len(runs)-1]++
		} else {
			runs = append(runs, 1)
		}
		prevHeading = h
		sum += int64(gg.Cost(b))
	}
	require.Equal(t, res.Cost, sum)
	for i, run := range runs {
		require.GreaterOrEqual(t, run, minRun, "run %d too short: %v", i, runs)
		require.LessOrEqual(t, run, maxRun, "run %d too long: %v", i, runs)
	}
}

func headingBetween(t *testing.T, a, b gridgraph.Cell) gridgraph.Heading {
	t.Helper()
	for _, h := range gridgraph.Headings {
		dr, dc := h.Offset()
		if a.Row+dr == b.Row && a.Col+dc == b.Col {
			return h
		}
	}
	t.Fatalf("cells %v and %v are not adjacent", a, b)

	return gridgraph.NoHeading
}

// ------------------------------------------------------------------------
// 3. Unreachable goals: a defined result, not an error.
// ------------------------------------------------------------------------

func TestSolve_UnreachableBehindWalls(t *testing.T) {
	gg := mustDigits(t, []string{
		"19",
		"91",
	})
	res, err := crucible.Solve(gg, gg.TopLeft(), gg.BottomRight(), crucible.WithWallThreshold(9))
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.Equal(t, int64(math.MaxInt64), res.Cost)
}

func TestSolve_UnreachableRunTooShort(t *testing.T) {
	// Only two blocks to travel but every run must be at least four long.
	gg := mustDigits(t, []string{"111"})
	res, err := crucible.Solve(gg, gg.TopLeft(), gg.BottomRight(), crucible.UltraCrucible())
	require.NoError(t, err)
	assert.False(t, res.Reachable)

	res, err = crucible.Solve(gg, gg.TopLeft(), gg.BottomRight(), crucible.WithRunBounds(2, 2))
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, int64(2), res.Cost)
}

func TestSolve_WallsForceDetour(t *testing.T) {
	gg := mustDigits(t, []string{
		"1111",
		"1991",
		"1111",
	})
	res, err := crucible.Solve(gg, gridgraph.Cell{Row: 1, Col: 0}, gridgraph.Cell{Row: 1, Col: 3},
		crucible.WithRunBounds(1, 3), crucible.WithWallThreshold(9), crucible.WithReturnPath())
	require.NoError(t, err)
	require.True(t, res.Reachable)
	// up, right×3, down.
	assert.Equal(t, int64(5), res.Cost)
	assert.Len(t, res.Path, 6)
}

// ------------------------------------------------------------------------
// 4. Degenerate case: unbounded runs equal plain Dijkstra.
// ------------------------------------------------------------------------

func TestSolve_UnboundedMatchesShortestPath(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		h, w := 2+r.Intn(9), 2+r.Intn(9)
		grid := make([][]int, h)
		for y := range grid {
			grid[y] = make([]int, w)
			for x := range grid[y] {
				grid[y][x] = r.Intn(10)
			}
		}
		gg, err := gridgraph.NewGridGraph(grid)
		require.NoError(t, err)

		want, err := gg.ShortestPath(gg.TopLeft(), gg.BottomRight())
		require.NoError(t, err)
		res, err := crucible.Solve(gg, gg.TopLeft(), gg.BottomRight(), crucible.WithRunBounds(1, h*w))
		require.NoError(t, err)
		require.True(t, res.Reachable)
		require.Equal(t, want, res.Cost, "trial %d grid %v", trial, grid)
	}
}

// ------------------------------------------------------------------------
// 5. Ambient behavior: cancellation and logging.
// ------------------------------------------------------------------------

func TestSolve_CancelledContext(t *testing.T) {
	gg := mustDigits(t, lavaMap)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := crucible.Solve(gg, gg.TopLeft(), gg.BottomRight(), crucible.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Reachable)
}

func TestSolve_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gg := mustDigits(t, lavaMap)

	_, err := crucible.Solve(gg, gg.TopLeft(), gg.BottomRight(), crucible.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "crucible: search started")
	assert.Contains(t, buf.String(), "crucible: search finished")
	assert.Contains(t, buf.String(), "cost=102")
}

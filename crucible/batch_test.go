package crucible_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marlinski/advent-of-code-2023/crucible"
	"github.com/Marlinski/advent-of-code-2023/gridgraph"
)

// TestSolveAll_Order runs both crucible kinds concurrently on a shared grid
// and checks that results come back in query order.
func TestSolveAll_Order(t *testing.T) {
	gg := mustDigits(t, lavaMap)
	queries := []crucible.Query{
		{Start: gg.TopLeft(), Goal: gg.BottomRight(), Options: []crucible.Option{crucible.Crucible()}},
		{Start: gg.TopLeft(), Goal: gg.BottomRight(), Options: []crucible.Option{crucible.UltraCrucible()}},
		{Start: gg.TopLeft(), Goal: gg.BottomRight(), Options: []crucible.Option{crucible.Crucible()}},
	}

	for _, limit := range []int{0, 1, 2} {
		results, err := crucible.SolveAll(context.Background(), gg, queries, limit)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, int64(102), results[0].Cost, "limit=%d", limit)
		assert.Equal(t, int64(94), results[1].Cost, "limit=%d", limit)
		assert.Equal(t, int64(102), results[2].Cost, "limit=%d", limit)
	}
}

// TestSolveAll_Error checks that one malformed query fails the batch.
func TestSolveAll_Error(t *testing.T) {
	gg := mustDigits(t, lavaMap)
	queries := []crucible.Query{
		{Start: gg.TopLeft(), Goal: gg.BottomRight()},
		{Start: gg.TopLeft(), Goal: gridgraph.Cell{Row: 99, Col: 99}},
	}

	results, err := crucible.SolveAll(context.Background(), gg, queries, 0)
	require.ErrorIs(t, err, crucible.ErrCellOutOfBounds)
	assert.Nil(t, results)

	_, err = crucible.SolveAll(context.Background(), nil, queries, 0)
	assert.ErrorIs(t, err, crucible.ErrNilGrid)
}

// TestSolveAll_Cancelled checks that a cancelled parent context stops the batch.
func TestSolveAll_Cancelled(t *testing.T) {
	gg := mustDigits(t, lavaMap)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := crucible.SolveAll(ctx, gg, []crucible.Query{{Start: gg.TopLeft(), Goal: gg.BottomRight()}}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

// TestSolveAll_Empty returns an empty result set for no queries.
func TestSolveAll_Empty(t *testing.T) {
	gg := mustDigits(t, lavaMap)
	results, err := crucible.SolveAll(context.Background(), gg, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

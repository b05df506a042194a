package crucible

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Marlinski/advent-of-code-2023/gridgraph"
)

// Query is one independent Solve request against a shared grid.
type Query struct {
	Start, Goal gridgraph.Cell
	Options     []Option
}

// SolveAll runs every query against gg concurrently and returns the results
// in query order.
//
// Each query gets its own frontier and settled set; gg is only read, so it is
// shared without locking. At most limit solves run at once (limit ≤ 0 means no
// limit). The group context is passed to every solve after the query's own
// options, so the first error cancels the remaining searches and is returned.
func SolveAll(ctx context.Context, gg *gridgraph.GridGraph, queries []Query, limit int) ([]Result, error) {
	if gg == nil {
		return nil, ErrNilGrid
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]Result, len(queries))
	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, q := range queries {
		g.Go(func() error {
			opts := append(append([]Option(nil), q.Options...), WithContext(gCtx))
			res, err := Solve(gg, q.Start, q.Goal, opts...)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

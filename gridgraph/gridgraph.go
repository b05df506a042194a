// Package gridgraph provides utilities to treat a 2D grid of integer cell costs
// as a graph. It supports:
//
//   - Validated, immutable construction from [][]int or digit rows
//   - Four-directional movement with explicit headings
//   - Plain shortest paths on entered-cell cost
//
// The cost of a cell is paid when a walker enters it, never when it starts there.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice of
// non-negative costs. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCost (wrapped with the cell) if any cost is below zero.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		for c, v := range values[r] {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell %v has cost %d", ErrNegativeCost, Cell{r, c}, v)
			}
			cells[r][c] = v
		}
	}

	return &GridGraph{
		Width:      w,
		Height:     h,
		CellValues: cells,
	}, nil
}

// FromDigits builds a GridGraph from rows of decimal digits, one digit per cell,
// e.g. []string{"2413", "3215"}. Surrounding whitespace is trimmed and blank
// rows are skipped.
// Returns ErrBadDigit (wrapped with the position) for any non-digit character,
// plus the NewGridGraph errors.
func FromDigits(rows []string) (*GridGraph, error) {
	values := make([][]int, 0, len(rows))
	for _, raw := range rows {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		row := make([]int, len(line))
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadDigit, ch, len(values), c)
			}
			row[c] = int(ch - '0')
		}
		values = append(values, row)
	}

	return NewGridGraph(values)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// Cost returns the cost of entering c. The caller must ensure InBounds(c).
func (gg *GridGraph) Cost(c Cell) int {
	return gg.CellValues[c.Row][c.Col]
}

// Step moves one cell from c in heading h.
// ok is false when the move would leave the grid or h is NoHeading.
func (gg *GridGraph) Step(c Cell, h Heading) (next Cell, ok bool) {
	if h == NoHeading {
		return c, false
	}
	dr, dc := h.Offset()
	next = Cell{Row: c.Row + dr, Col: c.Col + dc}

	return next, gg.InBounds(next)
}

// Neighbors returns the in-bounds orthogonal neighbors of c in Headings order.
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Headings))
	for _, h := range Headings {
		if n, ok := gg.Step(c, h); ok {
			out = append(out, n)
		}
	}

	return out
}

// TopLeft returns the cell (0,0).
func (gg *GridGraph) TopLeft() Cell {
	return Cell{}
}

// BottomRight returns the cell (Height-1, Width-1).
func (gg *GridGraph) BottomRight() Cell {
	return Cell{Row: gg.Height - 1, Col: gg.Width - 1}
}

// index maps c to a row‑major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) index(c Cell) int {
	return c.Row*gg.Width + c.Col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.Width, Col: idx % gg.Width}
}

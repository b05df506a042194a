// Package gridgraph defines core types for the gridgraph subpackage:
// cells, headings, and the immutable cost grid.
package gridgraph

import "fmt"

// Cell addresses a grid position by row and column, both zero-based.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Heading is a direction of travel on the grid.
// NoHeading is the zero value and marks a walker that has not moved yet.
type Heading uint8

const (
	// NoHeading is the heading of a walker standing on its start cell.
	NoHeading Heading = iota
	// Up decreases Row.
	Up
	// Down increases Row.
	Down
	// Left decreases Col.
	Left
	// Right increases Col.
	Right
)

// Headings lists the four real headings in a fixed order (Up, Down, Left, Right).
var Headings = [4]Heading{Up, Down, Left, Right}

// offsets is indexed by Heading; NoHeading does not move.
var offsets = [...][2]int{
	NoHeading: {0, 0},
	Up:        {-1, 0},
	Down:      {1, 0},
	Left:      {0, -1},
	Right:     {0, 1},
}

// Offset returns the (dRow, dCol) step of h.
func (h Heading) Offset() (dRow, dCol int) {
	if int(h) >= len(offsets) {
		return 0, 0
	}
	o := offsets[h]

	return o[0], o[1]
}

// Left returns the heading after a 90° counter-clockwise turn.
func (h Heading) Left() Heading {
	switch h {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	}

	return NoHeading
}

// Right returns the heading after a 90° clockwise turn.
func (h Heading) Right() Heading {
	switch h {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	}

	return NoHeading
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}

	return NoHeading
}

// String returns a one-letter name: U, D, L, R, or "-" for NoHeading.
func (h Heading) String() string {
	switch h {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}

	return "-"
}

// GridGraph treats a 2D grid of entry costs as a graph. It is immutable once built
// and may be shared read-only across goroutines.
// Width and Height define dimensions; CellValues[row][col] holds the cost of entering that cell.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
}
